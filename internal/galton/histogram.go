package galton

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Histogram holds the number of balls that landed in each lane. Counts only
// ever grow.
type Histogram struct {
	counts []int
	total  int
}

func NewHistogram(lanes int) *Histogram {
	if lanes < 0 {
		lanes = 0
	}
	return &Histogram{counts: make([]int, lanes)}
}

func (h *Histogram) Lanes() int { return len(h.counts) }

// Count returns the count for lane, or 0 for lanes outside the histogram.
func (h *Histogram) Count(lane int) int {
	if lane < 0 || lane >= len(h.counts) {
		return 0
	}
	return h.counts[lane]
}

func (h *Histogram) Total() int { return h.total }

// Max returns the largest lane count.
func (h *Histogram) Max() int {
	m := 0
	for _, c := range h.counts {
		if c > m {
			m = c
		}
	}
	return m
}

// Counts returns a copy of the per-lane counts.
func (h *Histogram) Counts() []int {
	out := make([]int, len(h.counts))
	copy(out, h.counts)
	return out
}

func (h *Histogram) increment(lane int) {
	h.counts[lane]++
	h.total++
}

// WriteCSV writes one row per lane: lane index, lane centre, observed count
// and expected count from the given probabilities scaled to the current total.
func (h *Histogram) WriteCSV(w io.Writer, g Geometry, expected []float64) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"lane", "x", "count", "expected"}); err != nil {
		return err
	}
	for i, c := range h.counts {
		exp := 0.0
		if i < len(expected) {
			exp = expected[i] * float64(h.total)
		}
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(g.LaneX(i), 'f', -1, 64),
			strconv.Itoa(c),
			strconv.FormatFloat(exp, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
