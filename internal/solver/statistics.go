package solver

// Stats tallies the search-level counters the CLI reports: Decisions
// and Propagations, in the naming the teacher repo's Statistics type
// uses.
type Stats struct {
	Decisions    uint64
	Propagations uint64
}
