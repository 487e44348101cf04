/*
DESCRIPTION
  detector.go provides the debounced two-state machine that converts the
  noisy per-frame "wave front in counting zone" signal into discrete wave
  counts.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package counter

import "math"

// Detector phases. A detector is waiting when no wave is being tracked, and
// counting while one occupies the zone.
type detectorPhase int

const (
	phaseWaiting detectorPhase = iota
	phaseCounting
)

// detector consumes one boolean signal per frame, in frame order, and emits
// wave count increments under cooldown and debounce constraints. The
// cooldown suppresses re-triggering on fast successive detections of the
// same physical wave; the frame-count debounce tolerates brief flicker of
// the foreground signal without closing the wave's counting window.
//
// Time is the video's own clock, i.e. frame index over frame rate, so two
// runs over the same file give the same count regardless of how fast the
// frames are decoded.
type detector struct {
	cooldown float64 // Minimum video seconds between counted events.
	debounce int     // Signal-free frames before a wave is considered finished.

	phase     detectorPhase
	count     int
	lastEvent float64   // Video time of the last counted event.
	gap       int       // Consecutive signal-free frames while counting.
	events    []float64 // Video time of each counted event.
}

func newDetector(cooldown float64, debounce int) *detector {
	// lastEvent starts at -Inf so the cooldown never suppresses the first wave.
	return &detector{cooldown: cooldown, debounce: debounce, lastEvent: math.Inf(-1)}
}

// observe consumes one frame's signal at video time t in seconds. It returns
// true when a new wave is counted. At most one phase change occurs per call,
// and the count never decreases.
func (d *detector) observe(signal bool, t float64) bool {
	switch d.phase {
	case phaseWaiting:
		if signal && t-d.lastEvent > d.cooldown {
			d.count++
			d.lastEvent = t
			d.gap = 0
			d.phase = phaseCounting
			d.events = append(d.events, t)
			return true
		}
	case phaseCounting:
		if signal {
			d.gap = 0
			break
		}
		d.gap++
		if d.gap >= d.debounce {
			d.phase = phaseWaiting
		}
	}
	return false
}

// waves returns the number of wave events counted so far.
func (d *detector) waves() int { return d.count }
