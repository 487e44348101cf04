/*
DESCRIPTION
  plot.go renders a timeline of counted wave events to an image file for
  visual sanity checking of counter tuning.

AUTHORS
  Russell Stanley <russell@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package counter

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePlot writes a scatter plot of cumulative wave count against video time
// to the given path. The image format is derived from the file extension as
// understood by gonum plot, e.g. .png or .svg.
func (r *Report) SavePlot(path string) error {
	p := plot.New()
	p.Title.Text = "Wave events"
	p.X.Label.Text = "video time (s)"
	p.Y.Label.Text = "wave count"

	pts := make(plotter.XYs, len(r.Events))
	for i, t := range r.Events {
		pts[i] = plotter.XY{X: t, Y: float64(i + 1)}
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("could not create scatter plot: %w", err)
	}
	p.Add(s)

	err = p.Save(16*vg.Centimeter, 10*vg.Centimeter, path)
	if err != nil {
		return fmt.Errorf("could not save plot: %w", err)
	}
	return nil
}
