package decibench

import (
	"testing"
	"time"
)

func TestWallTimeMeasurement(t *testing.T) {
	m := WallTime{}
	if m.ToFloat64(m.Zero()) != 0 {
		t.Error("zero value should convert to 0 ns")
	}
	if m.ToFloat64(time.Second) != 1e9 {
		t.Error("a second should convert to 1e9 ns")
	}
	sum := m.Add(2*time.Millisecond, 3*time.Millisecond)
	if sum.(time.Duration) != 5*time.Millisecond {
		t.Errorf("Expected \"%v\", but got \"%v\"", 5*time.Millisecond, sum)
	}
	start := m.Start()
	time.Sleep(time.Millisecond)
	elapsed := m.End(start)
	if elapsed.(time.Duration) < time.Millisecond {
		t.Errorf("Expected at least 1ms, but got %v", elapsed)
	}
}

func TestWallTimeScaleValues(t *testing.T) {
	f := WallTime{}.Formatter()
	expectations := []struct {
		typical float64
		in      []float64
		out     []float64
		unit    string
	}{
		{500, []float64{100, 999}, []float64{100, 999}, "ns"},
		{1.5e3, []float64{1e3, 2e3}, []float64{1, 2}, "us"},
		{2.5e6, []float64{1e6, 5e6}, []float64{1, 5}, "ms"},
		{3e9, []float64{1e9, 2e9}, []float64{1, 2}, "s"},
	}
	for _, e := range expectations {
		values := append([]float64(nil), e.in...)
		unit := f.ScaleValues(e.typical, values)
		if unit != e.unit {
			t.Errorf("Expected \"%v\", but got \"%v\"", e.unit, unit)
		}
		for i := range values {
			if values[i] != e.out[i] {
				t.Errorf("values[%v]: expected %v, but got %v",
					i, e.out[i], values[i])
			}
		}
	}
}

func TestWallTimeScaleThroughputsUsesBinaryUnits(t *testing.T) {
	f := WallTime{}.Formatter()
	expectations := []struct {
		typical    float64
		throughput Throughput
		unit       string
	}{
		{1e9, Bytes(1023), "  B/s"},
		{1e9, Bytes(1024), "KiB/s"},
		{1e9, Bytes(1024 * 1024), "MiB/s"},
		{1e9, Bytes(1024 * 1024 * 1024), "GiB/s"},
		{1e9, Elements(999), " elem/s"},
		{1e9, Elements(1000), "Kelem/s"},
		{1e9, Elements(1000000), "Melem/s"},
		{1e9, Elements(1000000000), "Gelem/s"},
	}
	for _, e := range expectations {
		unit := f.ScaleThroughputs(e.typical, e.throughput, nil)
		if unit != e.unit {
			t.Errorf("Expected \"%v\", but got \"%v\"", e.unit, unit)
		}
	}
}

func TestWallTimeScaleThroughputsRescalesBatch(t *testing.T) {
	f := WallTime{}.Formatter()
	values := []float64{1e9, 5e8}
	unit := f.ScaleThroughputs(1e9, Bytes(2048), values)
	if unit != "KiB/s" {
		t.Errorf("Expected \"KiB/s\", but got \"%v\"", unit)
	}
	expected := []float64{2, 4}
	for i := range values {
		if values[i] != expected[i] {
			t.Errorf("values[%v]: expected %v, but got %v",
				i, expected[i], values[i])
		}
	}
}

func TestWallTimeScaleForMachines(t *testing.T) {
	f := WallTime{}.Formatter()
	values := []float64{123, 456}
	unit := f.ScaleForMachines(values)
	if unit != "ns" {
		t.Errorf("Expected \"ns\", but got \"%v\"", unit)
	}
	if values[0] != 123 || values[1] != 456 {
		t.Error("machine scaling should leave values untouched")
	}
}
