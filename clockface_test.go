package main

import (
	"testing"
	"time"

	"gotest.tools/assert"
)

func slotTargets(slots *[numDigits]digitSlot) [numDigits]int {
	var out [numDigits]int
	for i := range slots {
		out[i] = slots[i].target
	}
	return out
}

func TestStampTime24Hour(t *testing.T) {
	var slots [numDigits]digitSlot
	at := time.Date(2026, 8, 27, 23, 7, 45, 0, time.UTC)

	stampTime(&slots, at, true, false)

	assert.Equal(t, [numDigits]int{2, 3, 0, 7, 4, 5}, slotTargets(&slots))
}

func TestStampTime12Hour(t *testing.T) {
	var slots [numDigits]digitSlot

	stampTime(&slots, time.Date(2026, 8, 27, 23, 7, 45, 0, time.UTC), false, false)
	assert.Equal(t, [numDigits]int{1, 1, 0, 7, 4, 5}, slotTargets(&slots))

	// midnight is 12, never 0
	stampTime(&slots, time.Date(2026, 8, 27, 0, 30, 0, 0, time.UTC), false, false)
	assert.Equal(t, [numDigits]int{1, 2, 3, 0, 0, 0}, slotTargets(&slots))
}

func TestStampTimeLeadingZeroBlank(t *testing.T) {
	var slots [numDigits]digitSlot
	presetTime(&slots)

	stampTime(&slots, time.Date(2026, 8, 27, 9, 15, 0, 0, time.UTC), true, true)
	assert.Equal(t, modeBlanked, slots[0].mode)

	// two-digit hour restores the slot to the face mode
	stampTime(&slots, time.Date(2026, 8, 27, 10, 15, 0, 0, time.UTC), true, true)
	assert.Equal(t, modeFade, slots[0].mode)
}

func TestStampDate(t *testing.T) {
	var slots [numDigits]digitSlot

	stampDate(&slots, time.Date(2026, 8, 27, 9, 15, 0, 0, time.UTC))

	assert.Equal(t, [numDigits]int{2, 7, 0, 8, 2, 6}, slotTargets(&slots))
}

func TestStampValue(t *testing.T) {
	var slots [numDigits]digitSlot

	stampValue(&slots, 4, 150)

	assert.Equal(t, [numDigits]int{0, 4, 0, 1, 5, 0}, slotTargets(&slots))
}

func TestHourInWindow(t *testing.T) {
	// plain window
	assert.Assert(t, hourInWindow(3, 0, 7))
	assert.Assert(t, !hourInWindow(7, 0, 7))

	// wrapping window (22 -> 7)
	assert.Assert(t, hourInWindow(23, 22, 7))
	assert.Assert(t, hourInWindow(3, 22, 7))
	assert.Assert(t, hourInWindow(22, 22, 7))
	assert.Assert(t, !hourInWindow(7, 22, 7))
	assert.Assert(t, !hourInWindow(12, 22, 7))

	// degenerate window never blanks
	assert.Assert(t, !hourInWindow(5, 5, 5))
}

func TestShouldBlank(t *testing.T) {
	saturday := time.Date(2026, 1, 3, 23, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 1, 5, 23, 0, 0, 0, time.UTC)

	assert.Assert(t, !shouldBlank(saturday, blankNever, 22, 7))

	assert.Assert(t, shouldBlank(saturday, blankNightly, 22, 7))
	assert.Assert(t, shouldBlank(monday, blankNightly, 22, 7))

	assert.Assert(t, shouldBlank(saturday, blankWeekends, 22, 7))
	assert.Assert(t, !shouldBlank(monday, blankWeekends, 22, 7))

	assert.Assert(t, !shouldBlank(saturday, blankWeekdays, 22, 7))
	assert.Assert(t, shouldBlank(monday, blankWeekdays, 22, 7))

	// outside the window nothing blanks
	noon := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	assert.Assert(t, !shouldBlank(noon, blankNightly, 22, 7))

	// unknown modes behave as never
	assert.Assert(t, !shouldBlank(saturday, blankMode(42), 22, 7))
}
