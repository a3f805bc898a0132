package internal

import (
	"errors"
	"math"
	"sort"
)

var errNotEnoughValues = errors.New("not enough values")

// ReadonlyFloat64Histogram is a readonly histogram with float64 keys.
// Per-sample timings are recorded into one.
type ReadonlyFloat64Histogram interface {
	Get(float64) uint64
	VisitAll(func(float64, uint64) bool)
	Count() uint64
}

// ReadonlyUint64Histogram is a readonly histogram with uint64 keys.
// Per-iteration latencies (in microseconds) are recorded into one.
type ReadonlyUint64Histogram interface {
	Get(uint64) uint64
	VisitAll(func(uint64, uint64) bool)
	Count() uint64
}

// float64Aggregates holds sums and the sorted key set of a float64
// histogram, as needed for means and percentile extraction.
type float64Aggregates struct {
	Sum   float64
	Count uint64
	Max   float64
	Pairs []struct {
		k float64
		v uint64
	}
}

func newFloat64Aggregates(h ReadonlyFloat64Histogram) (*float64Aggregates, error) {
	a := new(float64Aggregates)
	a.Pairs = make([]struct {
		k float64
		v uint64
	}, 0, h.Count())
	h.VisitAll(func(f float64, c uint64) bool {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return true
		}
		if f > a.Max {
			a.Max = f
		}
		a.Sum += f * float64(c)
		a.Count += c
		a.Pairs = append(a.Pairs, struct {
			k float64
			v uint64
		}{f, c})
		return true
	})
	if a.Count < 1 {
		return nil, errNotEnoughValues
	}
	sort.Slice(a.Pairs, func(i, j int) bool {
		return a.Pairs[i].k < a.Pairs[j].k
	})
	return a, nil
}

func (a *float64Aggregates) percentilesMap(percentiles []float64) map[float64]float64 {
	m := map[float64]float64{}
	for _, pc := range percentiles {
		if _, calculated := m[pc]; calculated {
			continue
		}
		if pc < 0 || pc > 1 {
			continue
		}
		rank := uint64(pc*float64(a.Count) + 0.5)
		total := uint64(0)
		for _, p := range a.Pairs {
			total += p.v
			if total >= rank {
				m[pc] = p.k
				break
			}
		}
	}
	return m
}

// uint64Aggregates is the uint64-keyed counterpart of
// float64Aggregates.
type uint64Aggregates struct {
	Sum   uint64
	Count uint64
	Max   uint64
	Pairs []struct {
		k uint64
		v uint64
	}
}

func newUint64Aggregates(h ReadonlyUint64Histogram) (*uint64Aggregates, error) {
	a := new(uint64Aggregates)
	a.Pairs = make([]struct {
		k uint64
		v uint64
	}, 0, h.Count())
	h.VisitAll(func(f uint64, c uint64) bool {
		if f > a.Max {
			a.Max = f
		}
		a.Sum += f * c
		a.Count += c
		a.Pairs = append(a.Pairs, struct{ k, v uint64 }{f, c})
		return true
	})
	if a.Count < 1 {
		return nil, errNotEnoughValues
	}
	sort.Slice(a.Pairs, func(i, j int) bool {
		return a.Pairs[i].k < a.Pairs[j].k
	})
	return a, nil
}

func (a *uint64Aggregates) percentilesMap(percentiles []float64) map[float64]uint64 {
	m := map[float64]uint64{}
	for _, pc := range percentiles {
		if _, calculated := m[pc]; calculated {
			continue
		}
		if pc < 0 || pc > 1 {
			continue
		}
		rank := uint64(pc*float64(a.Count) + 0.5)
		total := uint64(0)
		for _, p := range a.Pairs {
			total += p.v
			if total >= rank {
				m[pc] = p.k
				break
			}
		}
	}
	return m
}
