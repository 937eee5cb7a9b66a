package main

// Display presets stamp a per-slot mode layout for a UI state. Changing a
// slot's mode discontinuously resets its transition so a half-finished
// fade never leaks into the next screen.

func setSlotMode(s *digitSlot, mode int) {
	if s.mode != mode {
		s.mode = mode
		s.fadeState = 0
	}
}

// presetAllMode gives every slot the same mode.
func presetAllMode(slots *[numDigits]digitSlot, mode int) {
	for i := range slots {
		setSlotMode(&slots[i], mode)
	}
}

// presetTime is the normal clock face: every digit fades between values.
func presetTime(slots *[numDigits]digitSlot) {
	presetAllMode(slots, modeFade)
}

// presetAllBlanked turns the whole display off (day blanking).
func presetAllBlanked(slots *[numDigits]digitSlot) {
	presetAllMode(slots, modeBlanked)
}

// presetEditPair highlights the digit pair being edited in the menu: the
// pair blinks, everything else dims. pair is 0 (hours), 1 (minutes) or
// 2 (seconds) position in the six-digit layout.
func presetEditPair(slots *[numDigits]digitSlot, pair int) {
	for i := range slots {
		if i/2 == pair {
			setSlotMode(&slots[i], modeBlink)
		} else {
			setSlotMode(&slots[i], modeDimmed)
		}
	}
}

// presetMenu shows a menu item: item number bright on the left pair, the
// blinking value on the remaining four digits.
func presetMenu(slots *[numDigits]digitSlot) {
	setSlotMode(&slots[0], modeBright)
	setSlotMode(&slots[1], modeBright)
	for i := 2; i < numDigits; i++ {
		setSlotMode(&slots[i], modeBlink)
	}
}

// presetCalibration lights every tube with an 8 at full brightness so the
// HV calibration sees a representative worst-case load (and the operator
// sees that calibration is running).
func presetCalibration(slots *[numDigits]digitSlot) {
	for i := range slots {
		setSlotMode(&slots[i], modeBright)
		slots[i].target = 8
		slots[i].current = 8
	}
}
