package montecarlo

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/montanaflynn/stats"
	"github.com/philipparndt/circles/pkg/geometry"
)

// Histogram tallies how many point sets produced each number of valid
// circles, keeping the first observed point set for every count.
type Histogram struct {
	Trials   int
	Counts   map[int]int
	Examples map[int][]geometry.Point

	// trial index each example was drawn in, used to keep merges stable
	exampleTrial map[int]int
}

// NewHistogram creates an empty histogram
func NewHistogram() *Histogram {
	return &Histogram{
		Counts:       make(map[int]int),
		Examples:     make(map[int][]geometry.Point),
		exampleTrial: make(map[int]int),
	}
}

// Record adds the outcome of one trial
func (h *Histogram) Record(trial, count int, points []geometry.Point) {
	h.ensure()
	h.Trials++
	h.Counts[count]++
	if prev, ok := h.exampleTrial[count]; !ok || trial < prev {
		h.Examples[count] = geometry.ClonePoints(points)
		h.exampleTrial[count] = trial
	}
}

// Merge folds other into h. Counts are summed per key; for examples the
// one drawn in the earliest trial wins.
func (h *Histogram) Merge(other *Histogram) {
	if other == nil {
		return
	}
	h.ensure()
	h.Trials += other.Trials
	for count, freq := range other.Counts {
		h.Counts[count] += freq
	}
	for count, pts := range other.Examples {
		trial, ok := other.exampleTrial[count]
		if !ok {
			trial = math.MaxInt
		}
		if _, exists := h.Examples[count]; exists {
			prev, ok := h.exampleTrial[count]
			if !ok || trial >= prev {
				continue
			}
		}
		h.Examples[count] = geometry.ClonePoints(pts)
		h.exampleTrial[count] = trial
	}
}

func (h *Histogram) ensure() {
	if h.Counts == nil {
		h.Counts = make(map[int]int)
	}
	if h.Examples == nil {
		h.Examples = make(map[int][]geometry.Point)
	}
	if h.exampleTrial == nil {
		h.exampleTrial = make(map[int]int)
	}
}

// Total returns the sum of all frequencies
func (h *Histogram) Total() int {
	total := 0
	for _, freq := range h.Counts {
		total += freq
	}
	return total
}

// Keys returns the observed valid-circle counts in ascending order
func (h *Histogram) Keys() []int {
	keys := make([]int, 0, len(h.Counts))
	for k := range h.Counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Summary describes the distribution of valid-circle counts
type Summary struct {
	Mean   float64
	Median float64
	StdDev float64
	Mode   []float64
	Min    float64
	Max    float64
}

// Summary computes distribution statistics over all recorded trials
func (h *Histogram) Summary() (Summary, error) {
	data := make(stats.Float64Data, 0, h.Total())
	for _, k := range h.Keys() {
		for i := 0; i < h.Counts[k]; i++ {
			data = append(data, float64(k))
		}
	}
	if len(data) == 0 {
		return Summary{}, errors.New("histogram is empty")
	}

	var s Summary
	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, errors.Wrap(err, "mean")
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, errors.Wrap(err, "median")
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, errors.Wrap(err, "standard deviation")
	}
	if s.Mode, err = stats.Mode(data); err != nil {
		return Summary{}, errors.Wrap(err, "mode")
	}
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, errors.Wrap(err, "min")
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, errors.Wrap(err, "max")
	}
	return s, nil
}
