package main

import (
	"testing"

	"gotest.tools/assert"
)

func TestDimmingMapsSensorRange(t *testing.T) {
	d := newDimmingFeed(1)

	// full sun, full brightness
	assert.Equal(t, digitDisplayOff, d.update(adcFullScale-1))
	// darkness lands on the floor, never fully off
	assert.Equal(t, digitDisplayMinDim, d.update(0))
}

func TestDimmingSmoothsStepChanges(t *testing.T) {
	d := newDimmingFeed(4)

	assert.Equal(t, digitDisplayMinDim, d.update(0))

	// lights on: the off-count ramps, it doesn't jump
	prev := digitDisplayMinDim
	for i := 0; i < 60; i++ {
		cur := d.update(adcFullScale - 1)
		assert.Assert(t, cur >= prev)
		assert.Assert(t, cur <= digitDisplayOff)
		prev = cur
	}
	// integer EMA settles within its truncation band of full
	assert.Assert(t, prev > digitDisplayOff-20)
}

func TestDimmingStaysInBounds(t *testing.T) {
	d := newDimmingFeed(1)

	for _, raw := range []int{0, 1, 511, 1022, 1023} {
		oc := d.update(raw)
		assert.Assert(t, oc >= digitDisplayMinDim)
		assert.Assert(t, oc <= digitDisplayOff)
	}
}
