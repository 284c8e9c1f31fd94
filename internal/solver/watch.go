package solver

// watchEntry pairs a watched literal with the clause it belongs to.
type watchEntry struct {
	lit        Lit
	clauseIdx int
}

// watchPair is the pair of literals a clause currently watches.
type watchPair [2]Lit

// watchIndex is the watched-literals index: per-literal watch lists and,
// for each clause, the two literals it currently watches.
type watchIndex struct {
	posWatches [][]watchEntry // indexed by variable; watches the positive literal
	negWatches [][]watchEntry // indexed by variable; watches the negated literal
	pairs      []watchPair    // indexed by clause
}

func newWatchIndex(db *ClauseDB) *watchIndex {
	w := &watchIndex{
		posWatches: make([][]watchEntry, db.NumVars()+1),
		negWatches: make([][]watchEntry, db.NumVars()+1),
		pairs:      make([]watchPair, db.NumClauses()),
	}
	for i := 0; i < db.NumClauses(); i++ {
		clause := db.Clause(i)
		var first, second Lit
		switch {
		case len(clause) == 0:
			continue // empty clauses are never watched; caught as falsified directly
		case len(clause) == 1:
			first, second = clause[0], clause[0]
		default:
			first, second = clause[0], clause[1]
		}
		w.pairs[i] = watchPair{first, second}
		w.addWatch(first, i)
		if second != first {
			w.addWatch(second, i)
		}
	}
	return w
}

// listFor returns the watch list for literal l: the list of clauses
// that must be inspected when l becomes FALSE.
func (w *watchIndex) listFor(l Lit) *[]watchEntry {
	v := l.Var()
	if l.Sign() {
		return &w.posWatches[v]
	}
	return &w.negWatches[v]
}

// addWatch appends a new watch entry for clause ci to l's watch list.
func (w *watchIndex) addWatch(l Lit, ci int) {
	list := w.listFor(l)
	*list = append(*list, watchEntry{lit: l, clauseIdx: ci})
}

// removeWatch removes the entry for clause ci from l's watch list via
// swap-with-last.
func (w *watchIndex) removeWatch(l Lit, ci int) {
	list := w.listFor(l)
	for i, entry := range *list {
		if entry.clauseIdx == ci {
			last := len(*list) - 1
			(*list)[i] = (*list)[last]
			*list = (*list)[:last]
			return
		}
	}
}

// other returns the watched literal of clause ci other than falseLit.
func (w *watchIndex) other(ci int, falseLit Lit) Lit {
	pair := w.pairs[ci]
	if pair[0] == falseLit {
		return pair[1]
	}
	return pair[0]
}

// findNewWatch searches clause ci for a literal to replace falseLit as
// a watched literal: one that is neither falseLit nor the clause's
// other watched literal, and is not FALSE under assign. It prefers a
// TRUE literal (early satisfaction) over an UNDEF one.
func findNewWatch(db *ClauseDB, assign Assignment, w *watchIndex, ci int, falseLit Lit) (Lit, bool) {
	other := w.other(ci, falseLit)
	clause := db.Clause(ci)

	for _, l := range clause {
		if l == falseLit || l == other {
			continue
		}
		if assign.valueOfLit(l) == True {
			return l, true
		}
	}
	for _, l := range clause {
		if l == falseLit || l == other {
			continue
		}
		if assign.valueOfLit(l) == Undef {
			return l, true
		}
	}
	return 0, false
}

// moveWatch replaces falseLit with newLit as one of clause ci's two
// watched literals, updating both the pair and the per-literal lists.
func (w *watchIndex) moveWatch(ci int, falseLit, newLit Lit) {
	w.removeWatch(falseLit, ci)
	pair := &w.pairs[ci]
	if pair[0] == falseLit {
		pair[0] = newLit
	} else {
		pair[1] = newLit
	}
	w.addWatch(newLit, ci)
}
