package solver

import "github.com/spjmurray/go-util/pkg/set"

// ClauseDB is the clause database: an immutable list of clauses over
// dense internal variables, built once at construction time and never
// mutated afterward. The database also owns the original-identifier
// mapping produced by the variable remapper, since both are fixed by
// the same construction step.
type ClauseDB struct {
	clauses  [][]Lit
	numVars  int
	idxToVar []int
}

// NewClauseDB remaps raw clauses (over arbitrary positive variable
// identifiers) to dense internal variables 1..N and drops tautological
// clauses (those containing both a literal and its negation).
func NewClauseDB(raw [][]int) *ClauseDB {
	dense, idxToVar := remap(raw)

	filtered := dense[:0]
	for _, clause := range dense {
		if !isTautology(clause) {
			filtered = append(filtered, clause)
		}
	}

	return &ClauseDB{
		clauses:  filtered,
		numVars:  len(idxToVar) - 1,
		idxToVar: idxToVar,
	}
}

func isTautology(clause []Lit) bool {
	seen := set.New[Lit]()
	for _, l := range clause {
		if seen.Contains(l.Neg()) {
			return true
		}
		seen.Add(l)
	}
	return false
}

// NumVars returns the number of dense internal variables (1..NumVars).
func (db *ClauseDB) NumVars() int { return db.numVars }

// NumClauses returns the number of stored clauses.
func (db *ClauseDB) NumClauses() int { return len(db.clauses) }

// Clause returns the literals of clause i.
func (db *ClauseDB) Clause(i int) []Lit { return db.clauses[i] }

// OriginalVar maps an internal variable back to the identifier the
// caller originally used for it.
func (db *ClauseDB) OriginalVar(v int) int { return db.idxToVar[v] }

// satisfied reports whether at least one literal of the clause
// evaluates TRUE under assign.
func satisfied(assign Assignment, clause []Lit) bool {
	for _, l := range clause {
		if assign.valueOfLit(l) == True {
			return true
		}
	}
	return false
}

// falsified reports whether every literal of the clause evaluates
// FALSE under assign. An empty clause is vacuously falsified.
func falsified(assign Assignment, clause []Lit) bool {
	for _, l := range clause {
		if assign.valueOfLit(l) != False {
			return false
		}
	}
	return true
}

// undefCount returns the number of literals of the clause that are
// currently UNDEF.
func undefCount(assign Assignment, clause []Lit) int {
	n := 0
	for _, l := range clause {
		if assign.valueOfLit(l) == Undef {
			n++
		}
	}
	return n
}
