package main

import (
	"time"

	"github.com/stianeikeland/go-rpio/v4"
)

// check the press state, and return the press state
type pressState struct {
	pressed bool      // is it pressed?
	start   time.Time // when did this state start?
	count   int       // # of whole seconds since it started
	changed bool      // did the above data change at all?
}

type buttonMap struct {
	pin    int
	key    rune // key for the simulated button
	pullup bool
}

type button struct {
	button buttonMap
	rpin   rpio.Pin
	state  pressState
}

const (
	btnDown = 0
	btnUp   = 1
)

// checkButtons debounces the raw pin reads into pressState changes.
func checkButtons(rt runtimeConfig) (map[string]button, error) {
	now := rt.clock.Now()
	ret := make(map[string]button)

	btns := rt.buttons.getButtons()
	results, err := rt.buttons.readButtons(rt)
	if err != nil {
		return ret, err
	}

	for k, v := range *btns {
		res := results[k]
		btn := v
		btn.state.changed = false

		// interpret high/low into up/down based on the pullup wiring
		var btnState int
		if v.button.pullup {
			// grounded when pressed
			if res == rpio.High {
				btnState = btnUp
			} else {
				btnState = btnDown
			}
		} else {
			if res == rpio.High {
				btnState = btnDown
			} else {
				btnState = btnUp
			}
		}

		if btnState == btnDown {
			if btn.state.pressed {
				// still held, update the whole-second count
				btn.state.count = int(now.Sub(btn.state.start) / time.Second)
				if (*btns)[k].state.count != btn.state.count {
					btn.state.changed = true
				}
			} else {
				// just noticed the press
				btn.state = pressState{pressed: true, start: now, count: 0, changed: true}
			}
		} else {
			if btn.state.pressed {
				// just noticed the release; keep start so the caller can
				// compute the hold duration
				btn.state = pressState{pressed: false, start: btn.state.start, count: 0, changed: true}
			}
		}
		(*btns)[k] = btn
		ret[k] = btn
	}

	return ret, nil
}

func defaultButtonPins() map[string]buttonMap {
	return map[string]buttonMap{
		"main": {pin: pinButton, key: 'm', pullup: true},
	}
}

func runWatchButtons(rt runtimeConfig) {
	defer wg.Done()
	logger := &ThreadLogger{name: "Buttons"}
	defer logger.Println("exiting runWatchButtons")

	if err := rt.buttons.initButtons(rt.settings); err != nil {
		logger.Println(err.Error())
		return
	}
	defer rt.buttons.closeButtons()

	if err := rt.buttons.setupButtons(defaultButtonPins(), rt); err != nil {
		logger.Println(err.Error())
		return
	}

	for {
		select {
		case <-rt.comms.quit:
			logger.Println("quit from runWatchButtons")
			return
		default:
		}

		newButtons, err := checkButtons(rt)
		if err != nil {
			logger.Println(err.Error())
			close(rt.comms.quit)
			return
		}

		now := rt.clock.Now()
		for _, btn := range newButtons {
			if !btn.state.changed {
				continue
			}
			held := now.Sub(btn.state.start)
			var ev buttonEvent
			if btn.state.pressed && btn.state.count == 0 {
				ev = buttonEvent{pressed: true}
			} else if !btn.state.pressed {
				logger.Printf("button released after %v", held)
				ev = buttonEvent{pressed: false, held: held}
			} else {
				continue
			}
			// never block on a full channel past shutdown
			select {
			case rt.comms.buttons <- ev:
			case <-rt.comms.quit:
				logger.Println("quit from runWatchButtons")
				return
			}
		}

		rt.clock.Sleep(dButtonSleep)
	}
}
