package solver

import "github.com/k0kubun/pp"

// Solver holds all mutable search state for one DPLL run over a fixed
// ClauseDB: the current partial assignment, the watched-literals index,
// the unit-propagation worklist, tuning knobs, and running statistics.
type Solver struct {
	db      *ClauseDB
	assign  Assignment
	watches *watchIndex
	queue   []Lit
	queued  []bool
	config  Config
	stats   Stats
}

// New builds a Solver over raw clauses (arbitrary positive variable
// identifiers) with the given configuration.
func New(raw [][]int, cfg Config) *Solver {
	db := NewClauseDB(raw)
	return &Solver{
		db:      db,
		assign:  newAssignment(db.NumVars()),
		watches: newWatchIndex(db),
		queue:   make([]Lit, 0, db.NumVars()),
		queued:  make([]bool, db.NumVars()+1),
		config:  cfg,
	}
}

// Result is the outcome of a solve: whether the instance is satisfiable
// and, if so, the satisfying assignment keyed by the caller's original
// variable identifiers.
type Result struct {
	Sat   bool
	Model map[int]bool
	Stats Stats
}

// Solve runs the DPLL search to completion and, on success, verifies and
// extracts a full model over the original variable identifiers.
func (s *Solver) Solve() Result {
	if !s.solve() {
		return Result{Sat: false, Stats: s.stats}
	}

	for v := 1; v <= s.db.NumVars(); v++ {
		if s.assign[v] == Undef {
			s.assign.assign(PosLit(v))
		}
	}

	for i := 0; i < s.db.NumClauses(); i++ {
		if !satisfied(s.assign, s.db.Clause(i)) {
			// A correct implementation never reaches this: every clause
			// should already be satisfied once search reports success.
			// Downgrade to UNSAT rather than surface an internal bug.
			if s.config.Debug {
				pp.Println("post-solve verification failed", i, s.db.Clause(i), s.assign)
			}
			return Result{Sat: false, Stats: s.stats}
		}
	}

	model := make(map[int]bool, s.db.NumVars())
	for v := 1; v <= s.db.NumVars(); v++ {
		model[s.db.OriginalVar(v)] = s.assign[v] == True
	}
	return Result{Sat: true, Model: model, Stats: s.stats}
}

// solve is the recursive DPLL driver: unit-propagate, eliminate pure
// literals, check termination, and otherwise branch on a chosen variable
// trying both polarities in the heuristic's preferred order.
func (s *Solver) solve() bool {
	snap := s.assign.snapshot()

	for {
		if !s.unitPropagate() {
			s.assign.restore(snap)
			return false
		}
		if s.anyFalsified() {
			s.assign.restore(snap)
			return false
		}
		if s.allSatisfied() {
			return true
		}
		if !s.pureLiteralEliminate() {
			break
		}
		if s.anyFalsified() {
			s.assign.restore(snap)
			return false
		}
		if s.allSatisfied() {
			return true
		}
	}

	v := s.pickBranchVariable()
	if v == 0 {
		// No branchable variable remains, yet the formula is not fully
		// satisfied: report failure rather than a spurious SAT.
		s.assign.restore(snap)
		return false
	}

	first := s.pickPolarity(v)
	s.stats.Decisions++

	lit := NegLit(v)
	if first {
		lit = PosLit(v)
	}
	s.assign.assign(lit)
	if s.solve() {
		return true
	}

	s.assign.restore(snap)
	s.assign.assign(lit.Neg())
	if s.solve() {
		return true
	}

	s.assign.restore(snap)
	return false
}

// allSatisfied reports whether every clause in the database is
// satisfied under the current assignment.
func (s *Solver) allSatisfied() bool {
	for i := 0; i < s.db.NumClauses(); i++ {
		if !satisfied(s.assign, s.db.Clause(i)) {
			return false
		}
	}
	return true
}

// anyFalsified reports whether any clause in the database is falsified
// under the current assignment.
func (s *Solver) anyFalsified() bool {
	for i := 0; i < s.db.NumClauses(); i++ {
		if falsified(s.assign, s.db.Clause(i)) {
			return true
		}
	}
	return false
}

// Stats returns the running search statistics.
func (s *Solver) Stats() Stats { return s.stats }
