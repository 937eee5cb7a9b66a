package main

import "github.com/stianeikeland/go-rpio/v4"

// rpioLamps drives the colon neons through transistor switches on plain
// GPIO pins.
type rpioLamps struct{}

func (rl *rpioLamps) init() error {
	for _, pin := range []int{pinColonHigh, pinColonLow} {
		p := rpio.Pin(pin)
		p.Output()
		p.Low()
	}
	return nil
}

func (rl *rpioLamps) set(pin int, on bool) {
	p := rpio.Pin(pin)
	if on {
		p.High()
	} else {
		p.Low()
	}
}

func (rl *rpioLamps) on(pin int) {
	rl.set(pin, true)
}

func (rl *rpioLamps) off(pin int) {
	rl.set(pin, false)
}
