package game

import (
	"errors"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/galton-board/internal/report"
)

func (g *Game) exportFileDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Export Histogram"),
		zenity.Filename("galton.csv"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "CSV",
			Patterns: []string{"*.csv"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return report.ExportCSV(filename, g.sim, g.opts.Expected)
}
