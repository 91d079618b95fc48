// Package render draws a Galton board onto any drawing surface. Every
// function here reads simulation state and issues draw calls; none of them
// mutate the simulation.
package render

import "image/color"

// Surface is the set of drawing primitives a host runtime provides.
// Coordinates are in board units.
type Surface interface {
	Fill(c color.Color)
	// Circle draws a filled circle of the given diameter.
	Circle(x, y, diameter float64, c color.Color)
	// Line draws a stroke of the given width. Round caps extend the stroke by
	// half its width at both ends.
	Line(x1, y1, x2, y2, width float64, c color.Color, round bool)
}
