package solver

import (
	"math/rand"
	"testing"
)

// bruteForceSat decides satisfiability of raw by exhaustive enumeration
// over all variables 1..numVars. Only fit for small n.
func bruteForceSat(raw [][]int, numVars int) bool {
	assign := make([]bool, numVars+1)
	var try func(v int) bool
	try = func(v int) bool {
		if v > numVars {
			for _, clause := range raw {
				ok := false
				for _, lit := range clause {
					av := lit
					neg := av < 0
					if neg {
						av = -av
					}
					val := assign[av]
					if neg {
						val = !val
					}
					if val {
						ok = true
						break
					}
				}
				if !ok {
					return false
				}
			}
			return true
		}
		assign[v] = true
		if try(v + 1) {
			return true
		}
		assign[v] = false
		return try(v + 1)
	}
	return try(1)
}

// TestAgreesWithBruteForce generates random small CNF instances (clauses
// of one to three literals) and
// checks the solver's verdict against exhaustive enumeration, grounded
// on the teacher repo's use of a seeded math/rand generator for
// reproducible stress coverage.
func TestAgreesWithBruteForce(t *testing.T) {
	const seed = 114514
	rng := rand.New(rand.NewSource(seed))

	for trial := 0; trial < 200; trial++ {
		numVars := 1 + rng.Intn(10)
		numClauses := 1 + rng.Intn(20)

		raw := make([][]int, numClauses)
		for i := range raw {
			width := 1 + rng.Intn(3)
			clause := make([]int, width)
			for j := range clause {
				v := 1 + rng.Intn(numVars)
				if rng.Intn(2) == 0 {
					v = -v
				}
				clause[j] = v
			}
			raw[i] = clause
		}

		want := bruteForceSat(raw, numVars)
		got := New(raw, NewConfig()).Solve()
		if got.Sat != want {
			t.Fatalf("trial %d: solver said sat=%v, brute force said sat=%v, raw=%v", trial, got.Sat, want, raw)
		}
		if got.Sat {
			checkModel(t, raw, got.Model)
		}
	}
}
