package decibench

// multiple is one decimal scale step used to pick a human-readable
// unit for a per-second rate.
type multiple int

const (
	one multiple = iota
	kilo
	mega
	giga
	tera
)

var denominators = [...]float64{
	one:  1,
	kilo: 1e3,
	mega: 1e6,
	giga: 1e9,
	tera: 1e12,
}

func (m multiple) denominator() float64 {
	return denominators[m]
}

// The base-multiple labels carry a leading space so that rates line up
// in columnar output regardless of the chosen multiple.
var (
	byteLabels = [...]string{
		one:  " B/s",
		kilo: "KB/s",
		mega: "MB/s",
		giga: "GB/s",
		tera: "TB/s",
	}
	elemLabels = [...]string{
		one:  " elem/s",
		kilo: "Kelem/s",
		mega: "Melem/s",
		giga: "Gelem/s",
		tera: "Telem/s",
	}
)

// DecimalByteMeasurement is a wall-clock measurement whose throughput
// rates are reported in decimal multiple-byte units (KB/s, MB/s, ...)
// instead of the default binary ones (KiB/s, MiB/s, ...). Everything
// except throughput scaling is delegated to the wrapped WallTime.
type DecimalByteMeasurement struct {
	inner WallTime
}

// NewDecimalByteMeasurement returns a DecimalByteMeasurement, for
// attaching to an otherwise customized Runner. Use NewDecimalRunner
// when no other configuration is needed.
func NewDecimalByteMeasurement() DecimalByteMeasurement {
	return DecimalByteMeasurement{}
}

// NewDecimalRunner returns a Runner with default configuration and
// decimal throughput reporting.
func NewDecimalRunner() *Runner {
	r, err := NewRunner(DefaultRunnerConfig(), NewDecimalByteMeasurement())
	if err != nil {
		// the default config always validates, this is a bug
		panic(err)
	}
	return r
}

func (d DecimalByteMeasurement) Start() Intermediate {
	return d.inner.Start()
}

func (d DecimalByteMeasurement) End(i Intermediate) Value {
	return d.inner.End(i)
}

func (d DecimalByteMeasurement) Add(a, b Value) Value {
	return d.inner.Add(a, b)
}

func (d DecimalByteMeasurement) Zero() Value {
	return d.inner.Zero()
}

func (d DecimalByteMeasurement) ToFloat64(v Value) float64 {
	return d.inner.ToFloat64(v)
}

func (d DecimalByteMeasurement) Formatter() ValueFormatter {
	return d
}

func (d DecimalByteMeasurement) ScaleValues(
	typical float64, values []float64,
) string {
	return d.inner.Formatter().ScaleValues(typical, values)
}

// ScaleThroughputs rewrites every duration in values (nanoseconds per
// iteration) into a rate for the declared quantity, expressed in the
// decimal multiple that puts the typical rate in [1, 1000), and
// returns the matching unit label.
func (d DecimalByteMeasurement) ScaleThroughputs(
	typical float64, t Throughput, values []float64,
) string {
	count := float64(t.count)
	perSecond := count * (1e9 / typical)

	var m multiple
	switch {
	case perSecond >= 1e12:
		m = tera
	case perSecond >= 1e9:
		m = giga
	case perSecond >= 1e6:
		m = mega
	case perSecond >= 1e3:
		m = kilo
	default:
		m = one
	}
	denominator := m.denominator()

	// Each entry's rate is recomputed from its own duration; only the
	// multiple picked from the typical value is shared across the
	// batch.
	for i, v := range values {
		values[i] = count * (1e9 / v) / denominator
	}

	if t.kind == throughputElements {
		return elemLabels[m]
	}
	return byteLabels[m]
}

func (d DecimalByteMeasurement) ScaleForMachines(values []float64) string {
	return d.inner.Formatter().ScaleForMachines(values)
}
