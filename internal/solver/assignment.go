package solver

// Assignment is the dense vector of variable values, indexed 1..N. Index
// 0 is unused so variable identifiers can be used directly as indices.
type Assignment []Value

func newAssignment(numVars int) Assignment {
	return make(Assignment, numVars+1)
}

// valueOfLit evaluates a literal under the current assignment.
func (a Assignment) valueOfLit(l Lit) Value {
	v := a[l.Var()]
	if v == Undef {
		return Undef
	}
	if l.Sign() {
		return v
	}
	if v == True {
		return False
	}
	return True
}

// snapshot returns a copy of the assignment suitable for later restore.
func (a Assignment) snapshot() Assignment {
	cp := make(Assignment, len(a))
	copy(cp, a)
	return cp
}

// restore overwrites a with the contents of a previously taken snapshot.
func (a Assignment) restore(snap Assignment) {
	copy(a, snap)
}

// assign sets the variable underlying l so that l evaluates TRUE.
func (a Assignment) assign(l Lit) {
	if l.Sign() {
		a[l.Var()] = True
	} else {
		a[l.Var()] = False
	}
}
