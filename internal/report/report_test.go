package report

import (
	"encoding/json"
	"testing"
)

func TestBuildUnsat(t *testing.T) {
	r := Build("foo.cnf", 0.5, false, nil, 3, 10)
	line, err := r.MarshalLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(line, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["Result"] != "UNSAT" {
		t.Fatalf("expected UNSAT, got %v", decoded["Result"])
	}
	if _, ok := decoded["Solution"]; ok {
		t.Fatal("UNSAT result must not carry a Solution key")
	}
}

func TestBuildSatSolutionOrder(t *testing.T) {
	model := map[int]bool{3: true, 1: false, 2: true}
	r := Build("foo.cnf", 1.2, true, model, 1, 2)
	if r.Solution != "1 false 2 true 3 true" {
		t.Fatalf("unexpected solution string: %q", r.Solution)
	}
	line, err := r.MarshalLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(line, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["Result"] != "SAT" {
		t.Fatalf("expected SAT, got %v", decoded["Result"])
	}
}
