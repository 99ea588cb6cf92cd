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

// Write serializes net in UAI format to w. If lg is true, every table entry
// is written as its natural logarithm (the inverse of Read's lg=true
// exponentiation). Grounded on original_source's write_uai.
func Write(w io.Writer, net *cfn.CostFunctionNetwork, lg bool) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "MARKOV\n%d\n", net.NumVariables()); err != nil {
		return err
	}
	domainSizes := make([]string, net.NumVariables())
	for v := 0; v < net.NumVariables(); v++ {
		domainSizes[v] = strconv.Itoa(net.DomainSize(v))
	}
	if _, err := fmt.Fprintf(bw, "%s\n", strings.Join(domainSizes, " ")); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(bw, "%d\n", net.NumFactors()); err != nil {
		return err
	}
	for f := 0; f < net.NumFactors(); f++ {
		scope := net.Factor(f).Scope()
		parts := make([]string, len(scope))
		for i, v := range scope {
			parts[i] = strconv.Itoa(v)
		}
		if _, err := fmt.Fprintf(bw, "%d %s\n", len(scope), strings.Join(parts, " ")); err != nil {
			return err
		}
	}

	for f := 0; f < net.NumFactors(); f++ {
		table := net.Factor(f).CloneFunctionTable()
		if lg {
			for i, v := range table {
				table[i] = math.Log(v)
			}
		}
		parts := make([]string, len(table))
		for i, v := range table {
			parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if _, err := fmt.Fprintf(bw, "\n%d\n%s\n", len(table), strings.Join(parts, " ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}
