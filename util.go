// shared runtime plumbing
package main

import (
	"sync"

	"github.com/jonboulle/clockwork"
)

var wg sync.WaitGroup

type commChannels struct {
	quit    chan struct{}
	buttons chan buttonEvent
	lamps   chan lampEffect
}

func initCommChannels() commChannels {
	return commChannels{
		quit:    make(chan struct{}, 1),
		buttons: make(chan buttonEvent, 4),
		lamps:   make(chan lampEffect, 4),
	}
}

// runtimeConfig carries every external the workers need, so tests can
// stand up a fully fake device.
type runtimeConfig struct {
	comms    commChannels
	settings configSettings
	clock    clockwork.Clock
	rtc      timeSource
	digits   digitDriver
	pwm      pwmDriver
	adc      adcReader
	lamps    lamps
	buttons  buttons
	board    *statusBoard
	logger   flogger
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
