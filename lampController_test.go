package main

import (
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestLampOnOff(t *testing.T) {
	rt, clock := testRuntime(t)
	ll := rt.lamps.(*logLamps)
	ll.disableLog = true

	// queued before launch so the first drain picks it up
	rt.comms.lamps <- lampMessage(pinColonHigh, lampOn)

	wg.Add(1)
	go runLampController(rt)

	clock.BlockUntil(1)
	assert.Assert(t, ll.lamps[pinColonHigh])

	rt.comms.lamps <- lampMessage(pinColonHigh, lampOff)
	clock.Advance(dLampSleep)
	clock.BlockUntil(1)
	assert.Assert(t, !ll.lamps[pinColonHigh])

	testQuit(rt)
	clock.Advance(dLampSleep)
	wg.Wait()
}

func TestLampBlinkToggles(t *testing.T) {
	rt, clock := testRuntime(t)
	ll := rt.lamps.(*logLamps)
	ll.disableLog = true

	rt.comms.lamps <- lampMessage(pinColonLow, lampBlink)

	wg.Add(1)
	go runLampController(rt)

	// blink starts lit
	clock.BlockUntil(1)
	assert.Assert(t, ll.lamps[pinColonLow])

	// half a second later it goes dark, half a second after that lit again
	clock.Advance(500 * time.Millisecond)
	clock.BlockUntil(1)
	assert.Assert(t, !ll.lamps[pinColonLow])

	clock.Advance(500 * time.Millisecond)
	clock.BlockUntil(1)
	assert.Assert(t, ll.lamps[pinColonLow])

	testQuit(rt)
	clock.Advance(dLampSleep)
	wg.Wait()
}

func TestLampsOffOnQuit(t *testing.T) {
	rt, clock := testRuntime(t)
	ll := rt.lamps.(*logLamps)
	ll.disableLog = true

	rt.comms.lamps <- lampMessage(pinColonHigh, lampOn)
	rt.comms.lamps <- lampMessage(pinColonLow, lampOn)

	wg.Add(1)
	go runLampController(rt)

	clock.BlockUntil(1)
	assert.Assert(t, ll.lamps[pinColonHigh])
	assert.Assert(t, ll.lamps[pinColonLow])

	testQuit(rt)
	clock.Advance(dLampSleep)
	wg.Wait()

	assert.Assert(t, !ll.lamps[pinColonHigh])
	assert.Assert(t, !ll.lamps[pinColonLow])
}
