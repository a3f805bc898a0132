// Command httpbench benchmarks GET round-trips against a single URL
// and reports throughput in decimal multiple-byte units.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/alecthomas/kingpin"
	"github.com/goware/urlx"
	"github.com/valyala/fasthttp"

	"decibench"
)

const exitFailure = 1

var version = "unspecified"

var (
	app = kingpin.New("httpbench",
		"HTTP throughput benchmark with decimal units").
		Version("httpbench version " + version + " " + runtime.GOOS + "/" +
			runtime.GOARCH)

	warmup = app.Flag("warmup", "Warm-up time before sampling").
		Default("1s").
		Short('w').
		Duration()
	samples = app.Flag("samples", "Number of timing samples").
		Default("100").
		Short('s').
		Int()
	sampleTime = app.Flag("sample-time", "Target wall time per sample").
			Default("50ms").
			Duration()
	rate = app.Flag("rate", "Rate limit in requests per second").
		Short('r').
		Uint64()
	timeout = app.Flag("timeout", "Socket/request timeout").
		Default("2s").
		Short('t').
		Duration()
	latencies = app.Flag("latencies", "Print latency distribution").
			Short('l').
			Bool()
	noProgress = app.Flag("no-progress", "Don't draw the progress bar").
			Bool()
	outputFormat = app.Flag("format",
		"Output format: 'plain-text' (short: 'pt'), 'json' (short: 'j'), "+
			"or 'path:' followed by a template file").
		Default("plain-text").
		Short('o').
		String()

	target = app.Arg("url", "Target's URL").Required().String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	u, err := urlx.Parse(*target)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitFailure)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		fmt.Println("unsupported scheme:", u.Scheme)
		os.Exit(exitFailure)
	}

	client := &fasthttp.Client{
		ReadTimeout:  *timeout,
		WriteTimeout: *timeout,
	}
	get := func() (int, error) {
		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		req.SetRequestURI(u.String())
		err := client.Do(req, resp)
		size := len(resp.Body())
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
		return size, err
	}

	// One probe request to learn the response size for the
	// throughput declaration.
	size, err := get()
	if err != nil {
		fmt.Println(err)
		os.Exit(exitFailure)
	}

	conf := decibench.DefaultRunnerConfig()
	conf.WarmupTime = *warmup
	conf.SampleCount = *samples
	conf.SampleTime = *sampleTime
	conf.PrintProgress = !*noProgress
	if *rate > 0 {
		conf.Rate = rate
	}

	runner, err := decibench.NewRunner(conf, decibench.NewDecimalByteMeasurement())
	if err != nil {
		fmt.Println(err)
		os.Exit(exitFailure)
	}

	fmt.Printf("Benchmarking %v (%v bytes per response)\n", u, size)
	// failed requests keep their slot; their timing reflects the
	// failure path
	rep := runner.BenchmarkThroughput(
		u.Host, decibench.Bytes(uint64(size)),
		func() {
			_, _ = get()
		})

	if err := rep.Print(os.Stdout, *outputFormat, *latencies); err != nil {
		fmt.Println(err)
		os.Exit(exitFailure)
	}
}
