// Package report turns a finished (or paused) board into something a person
// can read: a CSV file or a table for the terminal.
package report

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/iburimskiy/galton-board/internal/galton"
)

const barWidth = 30

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	barStyle    = cellStyle.Foreground(lipgloss.Color("12"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// ExportCSV writes the histogram of sim to path.
func ExportCSV(path string, sim *galton.Simulation, expected []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sim.Histogram().WriteCSV(f, sim.Geometry(), expected); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("[EXPORT] wrote %d lanes (%d balls) to %s", sim.Histogram().Lanes(), sim.Histogram().Total(), path)
	return nil
}

// ChiSquare is Pearson's statistic of the observed counts against the
// expected probabilities. Lanes with zero expectation are skipped.
func ChiSquare(counts []int, probs []float64) float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	var chi float64
	for i, c := range counts {
		if i >= len(probs) {
			break
		}
		e := probs[i] * float64(total)
		if e <= 0 {
			continue
		}
		d := float64(c) - e
		chi += d * d / e
	}
	return chi
}

// Table renders one row per lane with the observed count, the expected count
// and a bar scaled to the fullest lane.
func Table(sim *galton.Simulation, probs []float64) string {
	h := sim.Histogram()
	g := sim.Geometry()
	peak := h.Max()

	rows := make([][]string, 0, h.Lanes())
	for i := 0; i < h.Lanes(); i++ {
		c := h.Count(i)
		exp := "-"
		if i < len(probs) {
			exp = strconv.FormatFloat(probs[i]*float64(h.Total()), 'f', 1, 64)
		}
		n := 0
		if peak > 0 {
			n = c * barWidth / peak
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.FormatFloat(g.LaneX(i), 'f', -1, 64),
			strconv.Itoa(c),
			exp,
			strings.Repeat("█", n),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("LANE", "X", "COUNT", "EXPECTED", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 4:
				return barStyle
			default:
				return cellStyle
			}
		})
	return t.Render()
}

// Summary is the headless run report: the lane table followed by totals.
func Summary(sim *galton.Simulation, mode string, probs []float64) string {
	var b strings.Builder
	b.WriteString(Table(sim, probs))
	b.WriteString("\n")
	fmt.Fprintf(&b, "mode %s, %d frames, %d/%d balls landed, %d falling\n",
		mode, sim.FrameNumber(), sim.Histogram().Total(), sim.Spawned(), sim.ActiveCount())
	if len(probs) > 0 && sim.Histogram().Total() > 0 {
		fmt.Fprintf(&b, "chi-square %.2f over %d lanes\n", ChiSquare(sim.Histogram().Counts(), probs), len(probs))
	}
	return b.String()
}
