package internal

import (
	"math"
	"time"
)

// RunInfo holds everything the output templates see about one
// benchmark run: the configuration it ran under and its results.
type RunInfo struct {
	Spec   Spec
	Result Results
}

// Spec describes how a benchmark run was configured.
type Spec struct {
	Name string

	WarmupTime  time.Duration
	SampleCount int
	SampleTime  time.Duration

	Rate *uint64

	// Declared quantity processed per iteration; Kind is empty when
	// no throughput was declared.
	ThroughputKind  string
	ThroughputCount uint64
}

// HasThroughput tells whether the benchmark declared a throughput
// quantity.
func (s Spec) HasThroughput() bool {
	return s.ThroughputKind != ""
}

// IsPaced tells whether iterations were rate-limited.
func (s Spec) IsPaced() bool {
	return s.Rate != nil
}

// RateValue returns the pace in iterations per second, 0 when unpaced.
func (s Spec) RateValue() uint64 {
	if s.Rate == nil {
		return 0
	}
	return *s.Rate
}

// TotalUnits returns the total declared quantity processed across all
// measured iterations.
func (ri RunInfo) TotalUnits() float64 {
	return float64(ri.Spec.ThroughputCount) * float64(ri.Result.Iterations)
}

// Results holds the measured outcome of a benchmark run.
type Results struct {
	ID string

	TimeTaken  time.Duration
	Iterations uint64

	// Per-sample timings scaled for display, with their unit.
	Unit          string
	ScaledSamples []float64

	// Per-sample throughput rates, empty without a declaration.
	RateUnit string
	Rates    []float64

	// Raw samples scaled for machine-readable output.
	MachineUnit    string
	MachineSamples []float64

	Latencies ReadonlyUint64Histogram
	Samples   ReadonlyFloat64Histogram
}

// SampleStats contains statistical information about the scaled
// per-sample timings.
type SampleStats struct {
	Mean   float64
	Stddev float64
	Max    float64

	// map[0.0 <= p <= 1.0 (percentile)]sample value
	Percentiles map[float64]float64
}

// SampleStats performs statistical calculations on the recorded
// samples. Returns nil when there is not enough data.
func (r Results) SampleStats(percentiles []float64) *SampleStats {
	a, err := newFloat64Aggregates(r.Samples)
	if err != nil {
		return nil
	}

	percentilesMap := a.percentilesMap(percentiles)

	mean := a.Sum / float64(a.Count)
	sumOfSquares := float64(0)
	r.Samples.VisitAll(func(f float64, c uint64) bool {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return true
		}
		sumOfSquares += math.Pow(f-mean, 2) * float64(c)
		return true
	})
	stddev := 0.0
	if a.Count > 2 {
		stddev = math.Sqrt(sumOfSquares / float64(a.Count))
	}
	return &SampleStats{
		Mean:   mean,
		Stddev: stddev,
		Max:    a.Max,

		Percentiles: percentilesMap,
	}
}

// RateStats performs statistical calculations on the scaled
// throughput rates. Returns nil when no throughput was declared.
func (r Results) RateStats() *SampleStats {
	if len(r.Rates) == 0 {
		return nil
	}
	mean := 0.0
	max := 0.0
	for _, v := range r.Rates {
		mean += v
		if v > max {
			max = v
		}
	}
	mean /= float64(len(r.Rates))
	sumOfSquares := float64(0)
	for _, v := range r.Rates {
		sumOfSquares += math.Pow(v-mean, 2)
	}
	stddev := 0.0
	if len(r.Rates) > 2 {
		stddev = math.Sqrt(sumOfSquares / float64(len(r.Rates)))
	}
	return &SampleStats{
		Mean:   mean,
		Stddev: stddev,
		Max:    max,
	}
}

// LatencyStats contains statistical information about per-iteration
// latencies, in microseconds.
type LatencyStats struct {
	Mean   float64
	Stddev float64
	Max    float64

	// map[0.0 <= p <= 1.0 (percentile)]microseconds
	Percentiles map[float64]uint64
}

// LatencyStats performs statistical calculations on per-iteration
// latencies. Returns nil when there is not enough data.
func (r Results) LatencyStats(percentiles []float64) *LatencyStats {
	a, err := newUint64Aggregates(r.Latencies)
	if err != nil {
		return nil
	}

	percentilesMap := a.percentilesMap(percentiles)

	mean := float64(a.Sum) / float64(a.Count)
	sumOfSquares := float64(0)
	r.Latencies.VisitAll(func(f uint64, c uint64) bool {
		sumOfSquares += math.Pow(float64(f)-mean, 2) * float64(c)
		return true
	})
	stddev := 0.0
	if a.Count > 2 {
		stddev = math.Sqrt(sumOfSquares / float64(a.Count))
	}
	return &LatencyStats{
		Mean:   mean,
		Stddev: stddev,
		Max:    float64(a.Max),

		Percentiles: percentilesMap,
	}
}
