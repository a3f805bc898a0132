package decibench

import "time"

// WallTime measures elapsed wall-clock time. It is the default
// measurement of a Runner and the strategy DecimalByteMeasurement
// delegates to.
type WallTime struct{}

func (WallTime) Start() Intermediate {
	return time.Now()
}

func (WallTime) End(i Intermediate) Value {
	return time.Since(i.(time.Time))
}

func (WallTime) Add(a, b Value) Value {
	return a.(time.Duration) + b.(time.Duration)
}

func (WallTime) Zero() Value {
	return time.Duration(0)
}

func (WallTime) ToFloat64(v Value) float64 {
	return float64(v.(time.Duration).Nanoseconds())
}

func (WallTime) Formatter() ValueFormatter {
	return wallTimeFormatter{}
}

// wallTimeFormatter scales nanosecond timings into time units and
// throughputs into binary multiple-byte units, which is the harness
// default DecimalByteMeasurement exists to override.
type wallTimeFormatter struct{}

func (wallTimeFormatter) ScaleValues(typical float64, values []float64) string {
	factor, unit := 1.0, "ns"
	switch {
	case typical < 1e3:
		// keep nanoseconds
	case typical < 1e6:
		factor, unit = 1e3, "us"
	case typical < 1e9:
		factor, unit = 1e6, "ms"
	default:
		factor, unit = 1e9, "s"
	}
	for i := range values {
		values[i] /= factor
	}
	return unit
}

func (wallTimeFormatter) ScaleThroughputs(
	typical float64, t Throughput, values []float64,
) string {
	count := float64(t.count)
	perSecond := count * (1e9 / typical)

	var denominator float64
	var unit string
	if t.kind == throughputBytes {
		switch {
		case perSecond >= 1024*1024*1024:
			denominator, unit = 1024*1024*1024, "GiB/s"
		case perSecond >= 1024*1024:
			denominator, unit = 1024*1024, "MiB/s"
		case perSecond >= 1024:
			denominator, unit = 1024, "KiB/s"
		default:
			denominator, unit = 1, "  B/s"
		}
	} else {
		switch {
		case perSecond >= 1e9:
			denominator, unit = 1e9, "Gelem/s"
		case perSecond >= 1e6:
			denominator, unit = 1e6, "Melem/s"
		case perSecond >= 1e3:
			denominator, unit = 1e3, "Kelem/s"
		default:
			denominator, unit = 1, " elem/s"
		}
	}

	for i, v := range values {
		values[i] = count * (1e9 / v) / denominator
	}
	return unit
}

func (wallTimeFormatter) ScaleForMachines(values []float64) string {
	// machine output stays in base units
	return "ns"
}
