package main

import (
	"time"
)

// Single-button UI. Short press flips between clock and date (date shows
// for a few seconds and falls back). A long press enters the menu; inside
// it a short press steps the current item's value and a long press moves
// to the next item, wrapping out of the menu with a save.

type uiState int

const (
	uiClock uiState = iota
	uiDate
	uiMenu
)

const (
	longPress   = 2 * time.Second
	dateTimeout = 4 * time.Second
)

type buttonEvent struct {
	pressed bool
	held    time.Duration
}

type menuItem struct {
	key    string
	min    int
	max    int
	step   int
	isBool bool
	isHour bool
}

// menu order matches the item number shown on the left pair (1-based).
var menuItems = []menuItem{
	{key: s24Hour, isBool: true},
	{key: sBlankZero, isBool: true},
	{key: sScrollback, isBool: true},
	{key: sFadeSteps, min: fadeStepsMin, max: fadeStepsMax, step: 10},
	{key: sScrollSteps, min: scrollStepsMin, max: scrollStepsMax, step: 1},
	{key: sDayBlanking, min: 0, max: 3, step: 1},
	{key: sBlankStart, min: 0, max: 23, step: 1, isHour: true},
	{key: sBlankEnd, min: 0, max: 23, step: 1, isHour: true},
	{key: sHVTarget, min: hvTargetMin, max: hvTargetMax, step: hvTargetStep},
	{key: sNeedsCal, isBool: true}, // arm recalibration on next boot/exit
}

type menuController struct {
	settings  configSettings
	logger    flogger
	state     uiState
	item      int
	dateUntil time.Time
}

func newMenuController(settings configSettings) *menuController {
	return &menuController{
		settings: settings,
		logger:   &ThreadLogger{name: "Menu"},
	}
}

// handleButton consumes debounced press/release events. All actions fire
// on release so the hold duration is known.
func (m *menuController) handleButton(ev buttonEvent, now time.Time) {
	if ev.pressed {
		return
	}
	if ev.held >= longPress {
		m.longPress()
		return
	}
	m.shortPress(now)
}

func (m *menuController) shortPress(now time.Time) {
	switch m.state {
	case uiClock:
		m.state = uiDate
		m.dateUntil = now.Add(dateTimeout)
	case uiDate:
		m.state = uiClock
	case uiMenu:
		m.stepValue()
	}
}

func (m *menuController) longPress() {
	switch m.state {
	case uiClock, uiDate:
		m.state = uiMenu
		m.item = 0
		m.logger.Println("entering menu")
	case uiMenu:
		m.item++
		if m.item >= len(menuItems) {
			m.exitMenu()
		}
	}
}

// stepValue advances the current item, wrapping at its bound.
func (m *menuController) stepValue() {
	it := menuItems[m.item]
	if it.isBool {
		m.settings.SetBool(it.key, !m.settings.GetBool(it.key))
		return
	}
	v := m.settings.GetInt(it.key) + it.step
	if v > it.max {
		v = it.min
	}
	m.settings.SetInt(it.key, v)
}

func (m *menuController) exitMenu() {
	m.state = uiClock
	m.item = 0
	if err := m.settings.saveState(); err != nil {
		m.logger.Printf("failed to persist settings: %v", err)
	}
	m.logger.Println("menu saved")
}

// itemValue is what the menu face shows for the current item.
func (m *menuController) itemValue() int {
	it := menuItems[m.item]
	if it.isBool {
		if m.settings.GetBool(it.key) {
			return 1
		}
		return 0
	}
	return m.settings.GetInt(it.key)
}

// stamp drives the preset layer and digit targets for the current state.
// It returns whether the global blank flag should be set this impression.
func (m *menuController) stamp(slots *[numDigits]digitSlot, now time.Time) bool {
	switch m.state {
	case uiDate:
		if now.After(m.dateUntil) {
			m.state = uiClock
			return m.stamp(slots, now)
		}
		presetAllMode(slots, modeNormal)
		stampDate(slots, now)
		return false
	case uiMenu:
		if menuItems[m.item].isHour {
			// hour-of-day items edit the seconds pair in place
			presetEditPair(slots, 2)
		} else {
			presetMenu(slots)
		}
		stampValue(slots, m.item+1, m.itemValue())
		return false
	default:
		presetTime(slots)
		stampTime(slots, now, m.settings.GetBool(s24Hour), m.settings.GetBool(sBlankZero))
		return shouldBlank(now,
			blankMode(m.settings.GetInt(sDayBlanking)),
			m.settings.GetInt(sBlankStart),
			m.settings.GetInt(sBlankEnd))
	}
}
