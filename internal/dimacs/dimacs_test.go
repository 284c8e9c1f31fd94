package dimacs

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseBasic(t *testing.T) {
	in := `c a comment
p cnf 3 2
1 -2 0
-1 2 3 0
`
	clauses, meta, err := Parse(strings.NewReader(in), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.NumVars != 3 || meta.NumClauses != 2 {
		t.Fatalf("unexpected meta: %+v", meta)
	}
	want := [][]int{{1, -2}, {-1, 2, 3}}
	if !reflect.DeepEqual(clauses, want) {
		t.Fatalf("got %v, want %v", clauses, want)
	}
}

func TestParseBlankLinesAndWhitespace(t *testing.T) {
	in := "p cnf 1 1\n\n  1 0  \n"
	clauses, _, err := Parse(strings.NewReader(in), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(clauses, [][]int{{1}}) {
		t.Fatalf("got %v", clauses)
	}
}

func TestParseMissingProblemLine(t *testing.T) {
	_, _, err := Parse(strings.NewReader("1 0\n"), Options{})
	if err == nil {
		t.Fatal("expected error for missing problem line")
	}
}

func TestParseClauseSpansMultipleLines(t *testing.T) {
	in := "p cnf 3 2\n1 -2\n3 0\n-1 2\n3\n0\n"
	clauses, _, err := Parse(strings.NewReader(in), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]int{{1, -2, 3}, {-1, 2, 3}}
	if !reflect.DeepEqual(clauses, want) {
		t.Fatalf("got %v, want %v", clauses, want)
	}
}

func TestParseMultipleClausesOnOneLine(t *testing.T) {
	in := "p cnf 2 2\n1 0 -2 0\n"
	clauses, _, err := Parse(strings.NewReader(in), Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]int{{1}, {-2}}
	if !reflect.DeepEqual(clauses, want) {
		t.Fatalf("got %v, want %v", clauses, want)
	}
}

func TestParseUnterminatedClauseAtEOF(t *testing.T) {
	_, _, err := Parse(strings.NewReader("p cnf 1 1\n1 2\n"), Options{})
	if err == nil {
		t.Fatal("expected error for a clause never terminated by 0")
	}
}

func TestParseNonPositiveHeaderCounts(t *testing.T) {
	if _, _, err := Parse(strings.NewReader("p cnf 0 1\n1 0\n"), Options{}); err == nil {
		t.Fatal("expected error for non-positive num_vars")
	}
	if _, _, err := Parse(strings.NewReader("p cnf 1 0\n1 0\n"), Options{}); err == nil {
		t.Fatal("expected error for non-positive num_clauses")
	}
}

func TestParseClauseCountMismatchUnconditional(t *testing.T) {
	in := "p cnf 2 2\n1 0\n"
	if _, _, err := Parse(strings.NewReader(in), Options{}); err == nil {
		t.Fatal("expected clause-count mismatch to be a fatal error unconditionally")
	}
}

func TestParseStrictBoundsCheck(t *testing.T) {
	in := "p cnf 2 1\n1 3 0\n"
	if _, _, err := Parse(strings.NewReader(in), Options{Strict: false}); err != nil {
		t.Fatalf("non-strict parse should accept an out-of-bounds variable: %v", err)
	}
	if _, _, err := Parse(strings.NewReader(in), Options{Strict: true}); err == nil {
		t.Fatal("expected strict parse to reject a variable exceeding declared num_vars")
	}
}

func TestParseFileNotFound(t *testing.T) {
	if _, _, err := ParseFile("/no/such/file.cnf", Options{}); err == nil {
		t.Fatal("expected error opening a missing file")
	}
}
