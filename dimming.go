package main

// Ambient dimming feed: one exponential moving average over the light
// sensor channel, mapped linearly onto the renderer's off-count. Bright
// room, long on-time; dark room, digits barely lit.

type dimmingFeed struct {
	smoothed    int
	smoothCount int
	primed      bool
}

func newDimmingFeed(smoothCount int) *dimmingFeed {
	if smoothCount < 1 {
		smoothCount = 1
	}
	return &dimmingFeed{smoothCount: smoothCount}
}

// update blends in a raw sensor reading and returns the off-count the
// renderer should use this impression.
func (d *dimmingFeed) update(raw int) int {
	if !d.primed {
		d.smoothed = raw
		d.primed = true
	} else {
		d.smoothed += (raw - d.smoothed) / d.smoothCount
	}
	return d.offCount()
}

func (d *dimmingFeed) offCount() int {
	span := digitDisplayOff - digitDisplayMinDim
	oc := digitDisplayMinDim + d.smoothed*span/(adcFullScale-1)
	return clampInt(oc, digitDisplayMinDim, digitDisplayOff)
}
