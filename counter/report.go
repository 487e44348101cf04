/*
DESCRIPTION
  report.go provides the Report type summarising a completed analysis,
  including simple statistics over the intervals between counted waves.

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

import "gonum.org/v1/gonum/stat"

// Report summarises a completed analysis. Count is the pipeline's output;
// Events records the video time in seconds at which each wave was counted.
type Report struct {
	Count  int       // Number of wave events counted.
	Events []float64 // Video time of each counted event, seconds.
	Frames int       // Frames processed.
	FPS    float64   // Frame rate used for video time calculations.
	Width  int       // Source frame width, pixels.
	Height int       // Source frame height, pixels.
}

// Intervals returns the gaps in seconds between successive counted events.
func (r *Report) Intervals() []float64 {
	if len(r.Events) < 2 {
		return nil
	}
	iv := make([]float64, len(r.Events)-1)
	for i := range iv {
		iv[i] = r.Events[i+1] - r.Events[i]
	}
	return iv
}

// IntervalStats returns the mean and standard deviation of the gaps between
// counted events, giving a rough wave period for the footage. Both are zero
// when fewer than two waves were counted.
func (r *Report) IntervalStats() (mean, std float64) {
	iv := r.Intervals()
	if len(iv) == 0 {
		return 0, 0
	}
	mean = stat.Mean(iv, nil)
	if len(iv) < 2 {
		return mean, 0
	}
	return mean, stat.StdDev(iv, nil)
}
