package uai

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dualgraph/srmp/cfn"
)

// state names the eight stages of the UAI preamble/body line-by-line
// state machine, ported 1:1 from original_source's UAIState enum (the
// per-state parameters that Rust carries as enum payload — the current
// function index, how many table entries have been collected, how many are
// expected — are tracked in reader fields instead, since Go enums carry no
// payload).
type state int

const (
	stateModelType state = iota
	stateNumberOfVariables
	stateDomainSizes
	stateNumberOfFunctions
	stateFunctionScopes
	stateNumberOfTableValues
	stateTableValues
	stateEndOfFile
)

// Read parses a UAI-format Markov network from r into a frozen
// cfn.CostFunctionNetwork. If lg is true, every table entry read is
// exponentiated (the file stores log-costs); grounded on
// original_source's read_uai. Where that source exponentiates every factor
// in one `map_factors_inplace(exp)` pass at the end of the read, Read
// exponentiates each function's entries before adding that factor.
func Read(r io.Reader, lg bool) (*cfn.CostFunctionNetwork, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	st := stateModelType
	lineNo := 0

	var net *cfn.CostFunctionNetwork
	var numVariables, numFunctions int
	var functionScopes [][]int
	var functionIdx int
	var entriesExpected int
	var entries []float64

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch st {
		case stateModelType:
			if line != "MARKOV" {
				return nil, fmt.Errorf("uai: line %d: %w", lineNo, ErrUnsupportedModelType)
			}
			st = stateNumberOfVariables

		case stateNumberOfVariables:
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("uai: line %d: number of variables: %w", lineNo, err)
			}
			numVariables = n
			st = stateDomainSizes

		case stateDomainSizes:
			fields := strings.Fields(line)
			if len(fields) != numVariables {
				return nil, fmt.Errorf("uai: line %d: %w", lineNo, ErrMalformedDomainSizes)
			}
			net = cfn.New()
			for _, f := range fields {
				d, err := strconv.Atoi(f)
				if err != nil {
					return nil, fmt.Errorf("uai: line %d: domain size: %w", lineNo, err)
				}
				if _, err := net.AddVariable(d); err != nil {
					return nil, fmt.Errorf("uai: line %d: %w", lineNo, err)
				}
			}
			st = stateNumberOfFunctions

		case stateNumberOfFunctions:
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("uai: line %d: number of functions: %w", lineNo, err)
			}
			numFunctions = n
			functionScopes = make([][]int, 0, numFunctions)
			if numFunctions == 0 {
				st = stateEndOfFile
			} else {
				st = stateFunctionScopes
			}

		case stateFunctionScopes:
			ints, err := parseInts(line)
			if err != nil {
				return nil, fmt.Errorf("uai: line %d: function scope: %w", lineNo, err)
			}
			if len(ints) == 0 || ints[0] != len(ints)-1 {
				return nil, fmt.Errorf("uai: line %d: %w", lineNo, ErrMalformedFunctionScope)
			}
			functionScopes = append(functionScopes, ints[1:])
			if len(functionScopes) < numFunctions {
				continue
			}
			functionIdx = 0
			st = stateNumberOfTableValues

		case stateNumberOfTableValues:
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("uai: line %d: table size: %w", lineNo, err)
			}
			entriesExpected = n
			entries = make([]float64, 0, n)
			st = stateTableValues

		case stateTableValues:
			vals, err := parseFloats(line)
			if err != nil {
				return nil, fmt.Errorf("uai: line %d: table values: %w", lineNo, err)
			}
			entries = append(entries, vals...)
			if len(entries) > entriesExpected {
				return nil, fmt.Errorf("uai: line %d: %w", lineNo, ErrTableSizeMismatch)
			}
			if len(entries) < entriesExpected {
				continue
			}

			if lg {
				for i, v := range entries {
					entries[i] = math.Exp(v)
				}
			}
			if _, err := net.AddFactor(functionScopes[functionIdx], entries); err != nil {
				return nil, fmt.Errorf("uai: function %d: %w", functionIdx, err)
			}

			functionIdx++
			if functionIdx < len(functionScopes) {
				st = stateNumberOfTableValues
			} else {
				st = stateEndOfFile
			}

		case stateEndOfFile:
			// trailing content after the last function is ignored.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if st != stateEndOfFile {
		return nil, ErrTruncatedFile
	}

	net.Freeze()
	return net, nil
}

func parseInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func parseFloats(line string) ([]float64, error) {
	fields := strings.Fields(line)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
