package solver

// Config carries the tuning knobs of the solver. NewConfig returns one
// with every field set to its default, in the style of EricR/saturday's
// config package. A zero PropagationCap is not replaced by the default:
// it makes every propagation pass that processes a literal report a
// conflict.
type Config struct {
	// PropagationCap bounds the number of literals a single
	// unit-propagation pass will process before it is treated as a
	// conflict. This is an internal safety rail, not a tunable search
	// limit: a correct implementation should never hit it on
	// well-formed input.
	PropagationCap int

	// Debug enables pretty-printed diagnostic dumps (via
	// github.com/k0kubun/pp) on the internal-safety paths: the
	// propagation cap and the post-SAT verification check.
	Debug bool
}

// DefaultPropagationCap is the safety bound from the design (10^6).
const DefaultPropagationCap = 1_000_000

// NewConfig returns a Config with defaults applied.
func NewConfig() Config {
	return Config{
		PropagationCap: DefaultPropagationCap,
	}
}
