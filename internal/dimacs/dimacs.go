// Package dimacs reads the DIMACS CNF file format into the plain
// [][]int clause representation the solver package accepts.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ProblemMeta carries the declared problem-line counts, kept separately
// from the parsed clauses since they are only used for reporting, never
// for solver behavior.
type ProblemMeta struct {
	NumVars    int
	NumClauses int
}

// Options controls parser strictness.
type Options struct {
	// Strict rejects a clause literal whose variable magnitude exceeds
	// the declared num_vars, in the style of FabianWe/dimacscnf's
	// ParseDimacsWithBounds. When false, out-of-bounds variables are
	// accepted and folded into the dense remap, matching the teacher's
	// permissive parseDimacs.
	Strict bool
}

// ParseFile opens path and parses it as DIMACS CNF.
func ParseFile(path string, opts Options) ([][]int, ProblemMeta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ProblemMeta{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, opts)
}

// Parse reads DIMACS CNF from r. Comment lines ("c ...") and blank
// lines are ignored. The problem line ("p cnf <vars> <clauses>") is
// required before any clause. A clause is a whitespace-separated list
// of nonzero integers terminated by a literal 0, and may span multiple
// lines.
func Parse(r io.Reader, opts Options) ([][]int, ProblemMeta, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var meta ProblemMeta
	haveProblemLine := false
	var clauses [][]int
	var pending []int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, ProblemMeta{}, fmt.Errorf("malformed problem line: %q", line)
			}
			vars, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, ProblemMeta{}, fmt.Errorf("malformed problem line %q: %w", line, err)
			}
			numClauses, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, ProblemMeta{}, fmt.Errorf("malformed problem line %q: %w", line, err)
			}
			if vars <= 0 || numClauses <= 0 {
				return nil, ProblemMeta{}, fmt.Errorf("problem line counts must be positive: %q", line)
			}
			meta = ProblemMeta{NumVars: vars, NumClauses: numClauses}
			haveProblemLine = true
			continue
		}
		if !haveProblemLine {
			return nil, ProblemMeta{}, fmt.Errorf("clause line before problem line: %q", line)
		}

		closed, rest, err := appendClauseTokens(pending, line)
		if err != nil {
			return nil, ProblemMeta{}, err
		}
		pending = rest
		for _, clause := range closed {
			if opts.Strict {
				if err := checkBounds(clause, meta.NumVars); err != nil {
					return nil, ProblemMeta{}, err
				}
			}
			clauses = append(clauses, clause)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, ProblemMeta{}, fmt.Errorf("reading input: %w", err)
	}
	if !haveProblemLine {
		return nil, ProblemMeta{}, fmt.Errorf("missing problem line (\"p cnf <vars> <clauses>\")")
	}
	if len(pending) > 0 {
		return nil, ProblemMeta{}, fmt.Errorf("unterminated clause at end of input: %v", pending)
	}
	if len(clauses) != meta.NumClauses {
		return nil, ProblemMeta{}, fmt.Errorf("declared %d clauses, found %d", meta.NumClauses, len(clauses))
	}

	return clauses, meta, nil
}

// appendClauseTokens tokenizes line and folds its tokens into pending,
// the in-progress clause buffer carried across lines. Every time a
// literal 0 token closes a clause, that clause is appended to closed
// and the buffer resets, so a single line may close several clauses or
// none at all.
func appendClauseTokens(pending []int, line string) (closed [][]int, rest []int, err error) {
	for _, f := range strings.Fields(line) {
		tok, err := strconv.Atoi(f)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid literal %q in clause: %w", f, err)
		}
		if tok == 0 {
			clause := pending
			if clause == nil {
				clause = []int{}
			}
			closed = append(closed, clause)
			pending = nil
			continue
		}
		pending = append(pending, tok)
	}
	return closed, pending, nil
}

func checkBounds(clause []int, numVars int) error {
	for _, lit := range clause {
		v := lit
		if v < 0 {
			v = -v
		}
		if v > numVars {
			return fmt.Errorf("literal %d exceeds declared variable count %d", lit, numVars)
		}
	}
	return nil
}
