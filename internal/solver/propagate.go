package solver

import "github.com/k0kubun/pp"

// unitPropagate runs the worklist-driven unit-propagation engine. It
// seeds the worklist from every currently-assigned variable and from
// any already-forced unit clauses, then drains the worklist, moving
// watches and detecting conflicts. It returns false on conflict
// (including the propagation-cap safety rail).
func (s *Solver) unitPropagate() bool {
	s.queue = s.queue[:0]
	for i := range s.queued {
		s.queued[i] = false
	}

	for v := 1; v <= s.db.NumVars(); v++ {
		val := s.assign[v]
		if val == Undef {
			continue
		}
		lit := Lit(v)
		if val == False {
			lit = lit.Neg()
		}
		s.enqueue(lit)
	}

	for i := 0; i < s.db.NumClauses(); i++ {
		clause := s.db.Clause(i)
		if len(clause) != 1 {
			continue
		}
		lit := clause[0]
		switch s.assign.valueOfLit(lit) {
		case False:
			return false
		case Undef:
			s.assign.assign(lit)
			s.stats.Propagations++
			s.enqueue(lit)
		}
	}

	processed := 0
	for len(s.queue) > 0 {
		lit := s.queue[0]
		s.queue = s.queue[1:]

		processed++
		if processed > s.config.PropagationCap {
			if s.config.Debug {
				pp.Println("propagation cap exceeded", s.config.PropagationCap, s.assign)
			}
			return false
		}

		if !s.propagateLiteral(lit) {
			return false
		}
	}
	return true
}

// enqueue appends lit to the propagation worklist unless its variable
// is already queued.
func (s *Solver) enqueue(lit Lit) {
	v := lit.Var()
	if s.queued[v] {
		return
	}
	s.queued[v] = true
	s.queue = append(s.queue, lit)
}

// propagateLiteral processes the consequences of lit having just
// become TRUE: its negation is FALSE, so every clause watching the
// negation must be inspected. Returns false on conflict.
func (s *Solver) propagateLiteral(lit Lit) bool {
	falseLit := lit.Neg()
	list := s.watches.listFor(falseLit)
	snapshot := make([]watchEntry, len(*list))
	copy(snapshot, *list)

	for _, entry := range snapshot {
		ci := entry.clauseIdx

		other := s.watches.other(ci, falseLit)
		if s.assign.valueOfLit(other) == True {
			continue // clause already satisfied by its other watch
		}

		if newLit, ok := findNewWatch(s.db, s.assign, s.watches, ci, falseLit); ok {
			s.watches.moveWatch(ci, falseLit, newLit)
			continue
		}

		switch s.assign.valueOfLit(other) {
		case False:
			return false // both watches false: conflict
		default: // Undef: the clause is unit, other is forced
			s.assign.assign(other)
			s.stats.Propagations++
			s.enqueue(other)
		}
	}
	return true
}
