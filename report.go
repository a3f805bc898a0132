package decibench

import (
	"fmt"
	"io"
	"time"

	uuid "github.com/satori/go.uuid"

	"decibench/internal"
)

// Report is the outcome of one benchmark run. All sample slices have
// one entry per collected sample, in collection order.
type Report struct {
	// ID uniquely identifies the run in machine-readable output.
	ID   string
	Name string

	// Samples are raw per-iteration durations in nanoseconds;
	// Typical is their mean and drives unit selection.
	Samples []float64
	Typical float64

	// Scaled are Samples scaled for display, expressed in Unit.
	Scaled []float64
	Unit   string

	// Rates are per-second throughput rates in RateUnit; empty when
	// the benchmark declared no throughput.
	Rates    []float64
	RateUnit string

	Iterations uint64
	TimeTaken  time.Duration

	info internal.RunInfo
}

type reportParams struct {
	name       string
	throughput *Throughput
	samples    []float64
	iterations uint64
	timeTaken  time.Duration
	latencies  internal.ReadonlyUint64Histogram
	sampleHist internal.ReadonlyFloat64Histogram
}

func (r *Runner) newReport(p reportParams) *Report {
	f := r.m.Formatter()

	typical := 0.0
	for _, s := range p.samples {
		typical += s
	}
	if len(p.samples) > 0 {
		typical /= float64(len(p.samples))
	}

	scaled := append([]float64(nil), p.samples...)
	unit := f.ScaleValues(typical, scaled)

	machine := append([]float64(nil), p.samples...)
	machineUnit := f.ScaleForMachines(machine)

	var rates []float64
	rateUnit := ""
	if p.throughput != nil {
		rates = append([]float64(nil), p.samples...)
		rateUnit = f.ScaleThroughputs(typical, *p.throughput, rates)
	}

	rep := &Report{
		ID:   uuid.NewV4().String(),
		Name: p.name,

		Samples: p.samples,
		Typical: typical,

		Scaled: scaled,
		Unit:   unit,

		Rates:    rates,
		RateUnit: rateUnit,

		Iterations: p.iterations,
		TimeTaken:  p.timeTaken,
	}

	spec := internal.Spec{
		Name: p.name,

		WarmupTime:  r.conf.WarmupTime,
		SampleCount: r.conf.SampleCount,
		SampleTime:  r.conf.SampleTime,

		Rate: r.conf.Rate,
	}
	if p.throughput != nil {
		spec.ThroughputKind = p.throughput.kindString()
		spec.ThroughputCount = p.throughput.count
	}

	rep.info = internal.RunInfo{
		Spec: spec,
		Result: internal.Results{
			ID: rep.ID,

			TimeTaken:  p.timeTaken,
			Iterations: p.iterations,

			Unit:          unit,
			ScaledSamples: scaled,

			RateUnit: rateUnit,
			Rates:    rates,

			MachineUnit:    machineUnit,
			MachineSamples: machine,

			Latencies: p.latencies,
			Samples:   p.sampleHist,
		},
	}
	return rep
}

// Print renders the report to w. formatSpec is either a known format
// name understood by formatFromString ("plain-text"/"pt", "json"/"j")
// or "path:" followed by a template file in text/template syntax.
// printLatencies additionally renders the latency distribution.
func (rep *Report) Print(w io.Writer, formatSpec string, printLatencies bool) error {
	f := formatFromString(formatSpec)
	if f == nil {
		return fmt.Errorf("unknown format spec %q", formatSpec)
	}
	tmpl, err := compileTemplate(f, printLatencies)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, rep.info)
}
