/*
Package decibench is a small benchmarking harness whose throughput
rates are reported in decimal multiple-byte units (KB/s, MB/s, GB/s,
TB/s) instead of the binary ones (KiB/s, MiB/s, ...) most harnesses
default to.

The pieces compose the way a pluggable harness expects: a Measurement
times iterations, its ValueFormatter scales raw samples for display,
and a Runner drives warm-up, sampling and reporting. WallTime is the
plain wall-clock measurement; DecimalByteMeasurement wraps it and
overrides only throughput scaling.

For the common case, construct a ready-to-use runner:

	r := decibench.NewDecimalRunner()
	rep := r.BenchmarkThroughput("copy-1mb", decibench.Bytes(1_000_000), func() {
		copy(dst, src)
	})
	rep.Print(os.Stdout, "plain-text", false)

To customize warm-up or sampling, attach the measurement yourself:

	conf := decibench.DefaultRunnerConfig()
	conf.WarmupTime = 5 * time.Second
	r, err := decibench.NewRunner(conf, decibench.NewDecimalByteMeasurement())

Declaring a throughput with Bytes or Elements makes reports carry
per-second rates; without one, reports carry per-iteration timings
only.
*/
package decibench
