package main

import (
	"log"
	"time"
)

// day blanking modes: when (if ever) the tubes go dark on a schedule to
// stretch their life.
type blankMode int

const (
	blankNever blankMode = iota
	blankNightly
	blankWeekends
	blankWeekdays
)

var warnedBlankMode = false

// shouldBlank decides whether the display is in its blanking window.
// Unrecognized modes behave as blankNever and are logged once rather than
// falling off the end of the switch.
func shouldBlank(t time.Time, mode blankMode, startHour, endHour int) bool {
	switch mode {
	case blankNever:
		return false
	case blankNightly:
		return hourInWindow(t.Hour(), startHour, endHour)
	case blankWeekends:
		wd := t.Weekday()
		return (wd == time.Saturday || wd == time.Sunday) &&
			hourInWindow(t.Hour(), startHour, endHour)
	case blankWeekdays:
		wd := t.Weekday()
		return wd != time.Saturday && wd != time.Sunday &&
			hourInWindow(t.Hour(), startHour, endHour)
	default:
		if !warnedBlankMode {
			log.Printf("Unknown day blanking mode %d, treating as never", mode)
			warnedBlankMode = true
		}
		return false
	}
}

// hourInWindow handles windows that wrap midnight (22 -> 7).
func hourInWindow(hour, start, end int) bool {
	if start == end {
		return false
	}
	if start < end {
		return hour >= start && hour < end
	}
	return hour >= start || hour < end
}

// stampPair writes a two-digit value into a slot pair.
func stampPair(slots *[numDigits]digitSlot, pair, value int) {
	slots[pair*2].target = value / 10 % 10
	slots[pair*2+1].target = value % 10
}

// stampTime sets the six targets to HH MM SS, honoring the 12/24 hour
// setting. With leading-zero blanking, a morning "09" shows as " 9".
func stampTime(slots *[numDigits]digitSlot, t time.Time, use24h, blankZero bool) {
	hour := t.Hour()
	if !use24h {
		hour = hour % 12
		if hour == 0 {
			hour = 12
		}
	}
	stampPair(slots, 0, hour)
	stampPair(slots, 1, t.Minute())
	stampPair(slots, 2, t.Second())

	if blankZero && hour < 10 {
		setSlotMode(&slots[0], modeBlanked)
	} else if slots[0].mode == modeBlanked {
		// the preset layer owns modes otherwise; only undo our own blank
		setSlotMode(&slots[0], slots[1].mode)
	}
}

// stampDate sets DD MM YY.
func stampDate(slots *[numDigits]digitSlot, t time.Time) {
	stampPair(slots, 0, t.Day())
	stampPair(slots, 1, int(t.Month()))
	stampPair(slots, 2, t.Year()%100)
}

// stampValue shows a bare number on the right-hand pair (menu values).
func stampValue(slots *[numDigits]digitSlot, item, value int) {
	stampPair(slots, 0, item)
	stampPair(slots, 1, value/100)
	stampPair(slots, 2, value%100)
}
