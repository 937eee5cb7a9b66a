package main

import (
	"errors"

	"github.com/stianeikeland/go-rpio/v4"
)

type rpioButtons struct {
	buttons map[string]button
}

func (rb *rpioButtons) getButtons() *map[string]button {
	return &rb.buttons
}

func (rb *rpioButtons) initButtons(settings configSettings) error {
	// rpio.Open is done once in main for all GPIO users
	return nil
}

func (rb *rpioButtons) setupButtons(pins map[string]buttonMap, rt runtimeConfig) error {
	rb.buttons = make(map[string]button)
	now := rt.clock.Now()

	for k, v := range pins {
		var btn button
		btn.button = v
		btn.rpin = rpio.Pin(v.pin)
		btn.rpin.Input()
		if v.pullup {
			btn.rpin.PullUp()
		} else {
			btn.rpin.PullDown()
		}
		btn.state = pressState{pressed: false, start: now}
		rb.buttons[k] = btn
	}
	return nil
}

func (rb *rpioButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	if rb.buttons == nil {
		return nil, errors.New("buttons not set up")
	}
	ret := make(map[string]rpio.State)
	for k, v := range rb.buttons {
		ret[k] = v.rpin.Read()
	}
	return ret, nil
}

func (rb *rpioButtons) closeButtons() {
}
