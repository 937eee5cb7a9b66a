package main

import (
	"time"

	"github.com/stianeikeland/go-rpio/v4"
)

// digitDriver is the low-level signal sink for the render loop: anode
// selection, BCD decoder value, and the HV gate. Implementations must not
// block; the renderer calls these at every on/switch/off step.
type digitDriver interface {
	selectDigit(pos int, on bool)
	setDecoderValue(digit int)
	setHVEnabled(on bool)
}

// pwmDriver owns the boost converter timer registers.
type pwmDriver interface {
	setPWMPeriod(ticks int)
	setPWMPulseWidth(ticks int)
}

// adcReader samples one channel of the feedback/ambient ADC.
type adcReader interface {
	read(channel int) int
}

// timeSource abstracts the RTC chip (or the system clock when no RTC
// responds on the bus).
type timeSource interface {
	now() time.Time
	setTime(t time.Time) error
}

type lamps interface {
	init() error
	set(pin int, on bool)
	on(pin int)
	off(pin int)
}

type buttons interface {
	initButtons(settings configSettings) error
	setupButtons(pins map[string]buttonMap, rt runtimeConfig) error
	readButtons(rt runtimeConfig) (map[string]rpio.State, error)
	getButtons() *map[string]button
	closeButtons()
}
