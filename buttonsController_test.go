package main

import (
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestCheckButtonsDebounce(t *testing.T) {
	rt, clock := testRuntime(t)
	nb := rt.buttons.(*noButtons)
	assert.NilError(t, nb.setupButtons(defaultButtonPins(), rt))

	// idle scan: nothing changes
	ret, err := checkButtons(rt)
	assert.NilError(t, err)
	assert.Assert(t, !ret["main"].state.changed)

	nb.press("main")
	ret, err = checkButtons(rt)
	assert.NilError(t, err)
	assert.Assert(t, ret["main"].state.pressed)
	assert.Assert(t, ret["main"].state.changed)
	assert.Equal(t, 0, ret["main"].state.count)

	// held: the whole-second count ticks up
	clock.Advance(time.Second)
	ret, err = checkButtons(rt)
	assert.NilError(t, err)
	assert.Equal(t, 1, ret["main"].state.count)
	assert.Assert(t, ret["main"].state.changed)

	// released: start is preserved so the hold duration survives
	pressStart := ret["main"].state.start
	nb.release("main")
	ret, err = checkButtons(rt)
	assert.NilError(t, err)
	assert.Assert(t, !ret["main"].state.pressed)
	assert.Assert(t, ret["main"].state.changed)
	assert.Equal(t, pressStart, ret["main"].state.start)
}

func TestCheckButtonsReadError(t *testing.T) {
	rt, _ := testRuntime(t)
	nb := rt.buttons.(*noButtons)
	assert.NilError(t, nb.setupButtons(defaultButtonPins(), rt))
	nb.fail = true

	_, err := checkButtons(rt)
	assert.Error(t, err, errFailRead.Error())
}

func TestRunWatchButtonsEmitsEvents(t *testing.T) {
	rt, clock := testRuntime(t)
	nb := rt.buttons.(*noButtons)

	wg.Add(1)
	go runWatchButtons(rt)

	// worker is parked on its scan sleep before we touch the pins
	clock.BlockUntil(1)
	nb.press("main")
	clock.Advance(dButtonSleep)

	ev := buttonEventRead(t, rt.comms.buttons)
	assert.Assert(t, ev.pressed)

	// hold past the long-press threshold; held updates emit nothing
	for i := 0; i < 3; i++ {
		clock.BlockUntil(1)
		clock.Advance(time.Second)
	}

	clock.BlockUntil(1)
	nb.release("main")
	clock.Advance(dButtonSleep)

	ev = buttonEventRead(t, rt.comms.buttons)
	assert.Assert(t, !ev.pressed)
	assert.Assert(t, ev.held >= longPress)

	clock.BlockUntil(1)
	testQuit(rt)
	clock.Advance(dButtonSleep)
	wg.Wait()
}

func TestRunWatchButtonsShutsDownWithFullChannel(t *testing.T) {
	rt, clock := testRuntime(t)
	nb := rt.buttons.(*noButtons)

	wg.Add(1)
	go runWatchButtons(rt)
	clock.BlockUntil(1)

	// two unread press/release cycles fill the event buffer
	for i := 0; i < 2; i++ {
		nb.press("main")
		clock.Advance(dButtonSleep)
		clock.BlockUntil(1)
		nb.release("main")
		clock.Advance(dButtonSleep)
		clock.BlockUntil(1)
	}

	// the next event has nowhere to go; the worker must still honor quit
	// instead of wedging on the send
	nb.press("main")
	clock.Advance(dButtonSleep)
	// let the scan reach the blocked send before pulling the plug
	time.Sleep(10 * time.Millisecond)
	testQuit(rt)
	wg.Wait()
}

func TestRunWatchButtonsQuitsOnReadFailure(t *testing.T) {
	rt, _ := testRuntime(t)
	rt.buttons.(*noButtons).fail = true

	wg.Add(1)
	go runWatchButtons(rt)
	wg.Wait()

	// a dead button bus takes the whole device down for a restart
	select {
	case <-rt.comms.quit:
	default:
		t.Fatal("quit channel not closed after read failure")
	}
}
