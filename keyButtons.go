package main

import (
	"errors"
	"time"

	// keyboard for sim mode
	"github.com/nsf/termbox-go"
	"github.com/stianeikeland/go-rpio/v4"
)

// keyButtons fakes the pushbutton with the keyboard when no GPIO exists:
// holding the mapped key reads as a grounded pin.
type keyButtons struct {
	buttons map[string]button
	downAt  map[string]time.Time
}

func (kb *keyButtons) getButtons() *map[string]button {
	return &kb.buttons
}

func (kb *keyButtons) initButtons(settings configSettings) error {
	return termbox.Init()
}

func (kb *keyButtons) setupButtons(pins map[string]buttonMap, rt runtimeConfig) error {
	kb.buttons = make(map[string]button)
	kb.downAt = make(map[string]time.Time)
	now := rt.clock.Now()

	for k, v := range pins {
		var btn button
		btn.button = v
		btn.state = pressState{pressed: false, start: now}
		kb.buttons[k] = btn
	}
	return nil
}

func (kb *keyButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	// poll with a quick timeout; no key means "no change"
	go func() {
		rt.clock.Sleep(50 * time.Millisecond)
		termbox.Interrupt()
	}()

	var pressedKey rune
	waitForInterrupt := true
	for waitForInterrupt {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventKey:
			if ev.Key == termbox.KeyCtrlC {
				return nil, errors.New("exit termbox loop")
			}
			pressedKey = ev.Ch
		default:
			waitForInterrupt = false
		}
	}

	now := rt.clock.Now()
	ret := make(map[string]rpio.State)
	for k, v := range kb.buttons {
		if pressedKey == v.button.key {
			kb.downAt[k] = now
		}
		// a key repeat within the hold window counts as still pressed
		if down, ok := kb.downAt[k]; ok && now.Sub(down) < 250*time.Millisecond {
			ret[k] = rpio.Low // pullup wiring: low is pressed
		} else {
			ret[k] = rpio.High
		}
	}
	return ret, nil
}

func (kb *keyButtons) closeButtons() {
	termbox.Close()
}
