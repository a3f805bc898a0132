package decibench

// Intermediate is an opaque in-flight timing handle produced by
// Measurement.Start and consumed by Measurement.End. Its concrete type
// belongs to the measurement that issued it.
type Intermediate interface{}

// Value is an opaque elapsed measurement produced by Measurement.End.
// Values of the same measurement can be added together and converted
// to a float64 nanosecond count.
type Value interface{}

// Measurement is a timing strategy pluggable into a Runner. WallTime is
// the default; custom measurements wrap or replace it.
type Measurement interface {
	// Start begins a timing interval.
	Start() Intermediate
	// End finishes the interval started by Start and yields the
	// elapsed value.
	End(i Intermediate) Value
	// Add sums two elapsed values.
	Add(a, b Value) Value
	// Zero returns the additive identity for elapsed values.
	Zero() Value
	// ToFloat64 converts an elapsed value to nanoseconds.
	ToFloat64(v Value) float64
	// Formatter returns the formatter used to scale this
	// measurement's values for display.
	Formatter() ValueFormatter
}

// ValueFormatter scales batches of raw measurements into displayable
// quantities. Scaling mutates the given slice in place; the returned
// string is the unit the scaled entries are expressed in.
type ValueFormatter interface {
	// ScaleValues rescales plain timing values, picking the unit
	// from the typical value.
	ScaleValues(typical float64, values []float64) string

	// ScaleThroughputs rewrites timing values into per-second rates
	// for the declared quantity, picking the unit from the rate
	// implied by the typical value.
	ScaleThroughputs(typical float64, t Throughput, values []float64) string

	// ScaleForMachines rescales values for machine-readable output.
	ScaleForMachines(values []float64) string
}

type throughputKind int

const (
	throughputBytes throughputKind = iota
	throughputElements
)

// Throughput declares how many units a single benchmark iteration
// processes. Declared on a benchmark, it makes the report carry
// per-second rates alongside raw timings.
type Throughput struct {
	kind  throughputKind
	count uint64
}

// Bytes declares that one iteration processes n bytes.
func Bytes(n uint64) Throughput {
	return Throughput{kind: throughputBytes, count: n}
}

// Elements declares that one iteration processes n items of whatever
// the benchmark counts.
func Elements(n uint64) Throughput {
	return Throughput{kind: throughputElements, count: n}
}

// Count returns the declared number of units per iteration.
func (t Throughput) Count() uint64 {
	return t.count
}

func (t Throughput) kindString() string {
	if t.kind == throughputElements {
		return "elements"
	}
	return "bytes"
}
