// Package report formats a solve outcome into the CLI's single-line
// JSON result contract.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Result is the CLI's solve outcome, ready to be marshaled via
// MarshalLine into the spec's single-line JSON contract.
type Result struct {
	Instance     string
	Time         float64
	ResultField  string
	Decisions    uint64
	Propagations uint64
	Solution     string
}

// Build assembles a Result. model is nil for an UNSAT outcome.
func Build(instance string, seconds float64, sat bool, model map[int]bool, decisions, propagations uint64) Result {
	r := Result{
		Instance:     instance,
		Time:         seconds,
		Decisions:    decisions,
		Propagations: propagations,
	}
	if !sat {
		r.ResultField = "UNSAT"
		return r
	}
	r.ResultField = "SAT"
	r.Solution = formatSolution(model)
	return r
}

// formatSolution renders a model as "<v1> <true|false> <v2> ..." with
// variables listed in ascending order of original variable ID.
func formatSolution(model map[int]bool) string {
	vars := make([]int, 0, len(model))
	for v := range model {
		vars = append(vars, v)
	}
	sort.Ints(vars)

	parts := make([]string, 0, len(vars)*2)
	for _, v := range vars {
		parts = append(parts, fmt.Sprintf("%d", v), boolWord(model[v]))
	}
	return strings.Join(parts, " ")
}

func boolWord(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// MarshalLine renders r as a single JSON line, newline-terminated, with
// "Result" under its spec-mandated key despite the Go field name.
func (r Result) MarshalLine() ([]byte, error) {
	raw, err := json.Marshal(resultJSON{
		Instance:     r.Instance,
		Time:         r.Time,
		Result:       r.ResultField,
		Decisions:    r.Decisions,
		Propagations: r.Propagations,
		Solution:     r.Solution,
	})
	if err != nil {
		return nil, err
	}
	return append(raw, '\n'), nil
}

type resultJSON struct {
	Instance     string  `json:"Instance"`
	Time         float64 `json:"Time"`
	Result       string  `json:"Result"`
	Decisions    uint64  `json:"Decisions"`
	Propagations uint64  `json:"Propagations"`
	Solution     string  `json:"Solution,omitempty"`
}
