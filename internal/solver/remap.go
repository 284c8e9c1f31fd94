package solver

import (
	"github.com/spjmurray/go-util/pkg/set"
)

// remap walks raw clauses over arbitrary positive variable identifiers
// and produces a dense clause set over internal variables 1..N, plus
// idxToVar which maps an internal variable back to the identifier the
// caller used.
//
// Variables are assigned internal indices in the order they are first
// encountered while walking the clauses, so the mapping is stable and
// reproducible for a given input.
func remap(raw [][]int) (dense [][]Lit, idxToVar []int) {
	seen := set.New[int]()
	varToIdx := map[int]int{}
	idxToVar = make([]int, 1, len(idxToVar)+1) // idxToVar[0] is unused

	nextIdx := func(v int) int {
		if !seen.Contains(v) {
			seen.Add(v)
			varToIdx[v] = len(idxToVar)
			idxToVar = append(idxToVar, v)
		}
		return varToIdx[v]
	}

	for _, clause := range raw {
		for _, lit := range clause {
			nextIdx(absInt(lit))
		}
	}

	dense = make([][]Lit, len(raw))
	for i, clause := range raw {
		rewritten := make([]Lit, len(clause))
		for j, lit := range clause {
			idx := varToIdx[absInt(lit)]
			if lit > 0 {
				rewritten[j] = Lit(idx)
			} else {
				rewritten[j] = Lit(-idx)
			}
		}
		dense[i] = rewritten
	}
	return dense, idxToVar
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
