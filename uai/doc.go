// Package uai reads and writes cost function networks in the UAI Markov
// model file format used by the UAI inference competitions
// (https://uaicompetition.github.io/uci-2022/file-formats/model-format/).
//
// Read drives an eight-state line-by-line parser over the preamble (graph
// type, variable count, domain sizes, function count, function scopes) and
// body (per-function table sizes and values), ported from
// original_source's UAIState state machine. Write is its inverse. The lg
// flag selects the LG variant of the format, where table entries are
// stored as natural logarithms of the true factor costs.
//
// Time: O(total number of table entries across every function).
// Memory: O(largest single function's table), plus the network itself.
package uai
