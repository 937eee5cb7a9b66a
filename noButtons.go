package main

import (
	"errors"

	"github.com/stianeikeland/go-rpio/v4"
)

var errFailRead = errors.New("simulated read failure")

// noButtons is the test double: feed it states, it reports them.
type noButtons struct {
	buttons map[string]button
	states  map[string]rpio.State
	fail    bool
}

func (nb *noButtons) getButtons() *map[string]button {
	return &nb.buttons
}

func (nb *noButtons) initButtons(settings configSettings) error {
	return nil
}

func (nb *noButtons) setupButtons(pins map[string]buttonMap, rt runtimeConfig) error {
	nb.buttons = make(map[string]button)
	nb.states = make(map[string]rpio.State)
	now := rt.clock.Now()

	for k, v := range pins {
		var btn button
		btn.button = v
		btn.state = pressState{pressed: false, start: now}
		nb.buttons[k] = btn
		// pullup wiring: high is released
		nb.states[k] = rpio.High
	}
	return nil
}

func (nb *noButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	if nb.fail {
		return nil, errFailRead
	}
	ret := make(map[string]rpio.State)
	for k, v := range nb.states {
		ret[k] = v
	}
	return ret, nil
}

func (nb *noButtons) press(name string) {
	nb.states[name] = rpio.Low
}

func (nb *noButtons) release(name string) {
	nb.states[name] = rpio.High
}

func (nb *noButtons) closeButtons() {
}
