package decibench

import (
	"errors"
	"io"
	"math"
	"os"
	"time"

	"github.com/cheggaaa/pb"
	fhist "github.com/codesenberg/concurrent/float64/histogram"
	uhist "github.com/codesenberg/concurrent/uint64/histogram"
)

const paceInterval = 10 * time.Millisecond

var (
	defaultWarmupTime  = 1 * time.Second
	defaultSampleCount = 100
	defaultSampleTime  = 50 * time.Millisecond

	errInvalidWarmupTime  = errors.New("warm-up time must be positive")
	errInvalidSampleCount = errors.New("sample count must be at least 2")
	errInvalidSampleTime  = errors.New("sample time must be positive")
	errZeroRate           = errors.New("rate can't be less than 1")
	errNilMeasurement     = errors.New("measurement can't be nil")
)

// RunnerConfig controls how a Runner warms up and samples benchmark
// functions.
type RunnerConfig struct {
	// WarmupTime is how long to run the benchmark before sampling
	// starts, to settle caches and estimate the iteration cost.
	WarmupTime time.Duration
	// SampleCount is the number of timing samples collected.
	SampleCount int
	// SampleTime is the target wall time of a single sample; the
	// iterations per sample are derived from it.
	SampleTime time.Duration

	// Rate paces iterations to at most this many per second.
	// Unpaced when nil.
	Rate *uint64

	PrintProgress bool
	Out           io.Writer
}

// DefaultRunnerConfig returns the configuration used by
// NewDecimalRunner.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		WarmupTime:  defaultWarmupTime,
		SampleCount: defaultSampleCount,
		SampleTime:  defaultSampleTime,
	}
}

func (c *RunnerConfig) checkArgs() error {
	if c.WarmupTime <= 0 {
		return errInvalidWarmupTime
	}
	if c.SampleCount < 2 {
		return errInvalidSampleCount
	}
	if c.SampleTime <= 0 {
		return errInvalidSampleTime
	}
	if c.Rate != nil && *c.Rate < 1 {
		return errZeroRate
	}
	return nil
}

// Runner runs benchmark functions against a measurement strategy and
// produces reports with formatter-scaled results. Benchmarks run
// sequentially in the calling goroutine; a Runner must not be shared
// between goroutines mid-run.
type Runner struct {
	conf  RunnerConfig
	m     Measurement
	pacer limiter

	out io.Writer
}

// NewRunner returns a Runner with the given configuration and
// measurement strategy.
func NewRunner(c RunnerConfig, m Measurement) (*Runner, error) {
	if m == nil {
		return nil, errNilMeasurement
	}
	if err := c.checkArgs(); err != nil {
		return nil, err
	}
	r := &Runner{conf: c, m: m}
	r.out = c.Out
	if r.out == nil {
		r.out = os.Stdout
	}
	if c.Rate != nil {
		r.pacer = newBucketLimiter(*c.Rate)
	} else {
		r.pacer = &nooplimiter{}
	}
	return r, nil
}

// Benchmark measures fn and reports per-iteration timings.
func (r *Runner) Benchmark(name string, fn func()) *Report {
	return r.run(name, nil, fn)
}

// BenchmarkThroughput is Benchmark with a declared per-iteration
// quantity, so the report also carries per-second rates in the units
// picked by the measurement's formatter.
func (r *Runner) BenchmarkThroughput(
	name string, t Throughput, fn func(),
) *Report {
	return r.run(name, &t, fn)
}

func (r *Runner) run(name string, t *Throughput, fn func()) *Report {
	perIter := r.warmup(fn)
	if r.conf.Rate != nil {
		// paced iterations can't run faster than the pace allows
		paced := float64(oneSecond.Nanoseconds()) / float64(*r.conf.Rate)
		if paced > perIter {
			perIter = paced
		}
	}
	itersPerSample := round(float64(r.conf.SampleTime.Nanoseconds()) / perIter)
	if itersPerSample < 1 {
		itersPerSample = 1
	}

	samples := make([]float64, r.conf.SampleCount)
	latencies := uhist.Default()
	sampleHist := fhist.Default()

	bar := r.newBar()
	bar.Start()
	begin := time.Now()
	for i := range samples {
		elapsed := r.measureSample(fn, itersPerSample, latencies)
		samples[i] = elapsed / float64(itersPerSample)
		sampleHist.Increment(samples[i])
		bar.Set64(int64(i + 1))
		bar.Update()
	}
	timeTaken := time.Since(begin)
	bar.Finish()

	return r.newReport(reportParams{
		name:       name,
		throughput: t,
		samples:    samples,
		iterations: itersPerSample * uint64(r.conf.SampleCount),
		timeTaken:  timeTaken,
		latencies:  latencies,
		sampleHist: sampleHist,
	})
}

// warmup runs fn in doubling batches for roughly conf.WarmupTime and
// returns the estimated cost of one iteration in nanoseconds.
func (r *Runner) warmup(fn func()) float64 {
	var (
		iters      uint64 = 1
		totalIters uint64
	)
	elapsed := r.m.Zero()
	budget := float64(r.conf.WarmupTime.Nanoseconds())
	for {
		start := r.m.Start()
		for i := uint64(0); i < iters; i++ {
			fn()
		}
		elapsed = r.m.Add(elapsed, r.m.End(start))
		totalIters += iters
		if spent := r.m.ToFloat64(elapsed); spent >= budget {
			return spent / float64(totalIters)
		}
		iters *= 2
	}
}

// measureSample times iters runs of fn with the measurement strategy
// and returns the total elapsed nanoseconds. Per-iteration latencies
// are recorded in microseconds.
func (r *Runner) measureSample(
	fn func(), iters uint64, latencies *uhist.Histogram,
) float64 {
	total := r.m.Zero()
	for i := uint64(0); i < iters; i++ {
		if r.pacer.pace(nil) == brk {
			break
		}
		start := r.m.Start()
		fn()
		elapsed := r.m.End(start)
		total = r.m.Add(total, elapsed)
		latencies.Increment(uint64(r.m.ToFloat64(elapsed)) / 1000)
	}
	return r.m.ToFloat64(total)
}

func (r *Runner) newBar() *pb.ProgressBar {
	bar := pb.New64(int64(r.conf.SampleCount))
	bar.ManualUpdate = true
	bar.Output = r.out
	if !r.conf.PrintProgress {
		bar.Output = io.Discard
		bar.NotPrint = true
	}
	return bar
}

func round(f float64) uint64 {
	if math.Abs(f) < 0.5 {
		return 0.0
	}
	return uint64(f + math.Copysign(0.5, f))
}
