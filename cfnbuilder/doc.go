// Package cfnbuilder constructs synthetic cost function networks for
// tests, examples, and the CLI's --demo flag: FrustratedCycle (spec.md §8
// scenario 1, generalized to any cycle length), GridPotts (a 2D grid with
// Potts pairwise factors), and Random (random domains and tables for
// fuzz/property tests). Adapted from the teacher's builder package's
// functional-options idiom; this package builds cfn.CostFunctionNetwork
// values instead of graphs, and is scaffolding only — it is never imported
// by package srmp itself.
package cfnbuilder
