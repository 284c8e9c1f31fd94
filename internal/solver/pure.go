package solver

import "github.com/spjmurray/go-util/pkg/set"

// pureLiteralEliminate sweeps the currently-unsatisfied clauses and
// assigns any UNDEF variable that occurs with a single polarity among
// them. It reports whether it made any assignment.
func (s *Solver) pureLiteralEliminate() bool {
	pos := set.New[int]()
	neg := set.New[int]()

	for i := 0; i < s.db.NumClauses(); i++ {
		clause := s.db.Clause(i)
		if satisfied(s.assign, clause) {
			continue
		}
		for _, lit := range clause {
			v := lit.Var()
			if s.assign[v] != Undef {
				continue
			}
			if lit.Sign() {
				pos.Add(v)
			} else {
				neg.Add(v)
			}
		}
	}

	changed := false
	for v := 1; v <= s.db.NumVars(); v++ {
		if s.assign[v] != Undef {
			continue
		}
		hasPos, hasNeg := pos.Contains(v), neg.Contains(v)
		switch {
		case hasPos && !hasNeg:
			s.assign.assign(PosLit(v))
			changed = true
		case hasNeg && !hasPos:
			s.assign.assign(NegLit(v))
			changed = true
		}
	}
	return changed
}
