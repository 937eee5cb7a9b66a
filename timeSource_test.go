package main

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"gotest.tools/assert"
)

// recordingTimeSource ticks along with the fake clock at a fixed offset,
// like a real RTC that drifted and then keeps time again.
type recordingTimeSource struct {
	clock  clockwork.Clock
	offset time.Duration
	dead   bool
	writes []time.Time
}

func (r *recordingTimeSource) now() time.Time {
	if r.dead {
		return time.Time{}
	}
	return r.clock.Now().Add(r.offset)
}

func (r *recordingTimeSource) setTime(t time.Time) error {
	r.writes = append(r.writes, t)
	r.offset = t.Sub(r.clock.Now())
	return nil
}

func TestWallClock(t *testing.T) {
	_, clock := testRuntime(t)

	w := &wallClock{clock: clock}
	assert.Equal(t, clock.Now(), w.now())
	// the system clock is not ours to set
	assert.NilError(t, w.setTime(clock.Now()))
}

func TestOpenTimeSourceSimulatedBus(t *testing.T) {
	rt, clock := testRuntime(t)

	// the simulated i2c bus answers, so the RTC wins over the system clock
	src := openTimeSource(rt.settings, clock, rt.logger)
	_, ok := src.(*rtcClock)
	assert.Assert(t, ok)
}

func TestRunTimeSyncRewritesDriftedRTC(t *testing.T) {
	rt, clock := testRuntime(t)
	rtc := &recordingTimeSource{clock: clock, offset: -5 * time.Second}
	rt.rtc = rtc

	wg.Add(1)
	go runTimeSync(rt)

	// first check: 5s of drift gets rewritten from the system clock
	clock.BlockUntil(1)
	assert.Equal(t, 1, len(rtc.writes))
	assert.Equal(t, clock.Now(), rtc.writes[0])

	// in sync now: the hourly check leaves it alone
	clock.Advance(dRTCSyncSleep)
	clock.BlockUntil(1)
	assert.Equal(t, 1, len(rtc.writes))

	testQuit(rt)
	clock.Advance(dRTCSyncSleep)
	wg.Wait()
}

func TestRunTimeSyncSkipsDeadRTC(t *testing.T) {
	rt, clock := testRuntime(t)
	rtc := &recordingTimeSource{clock: clock, dead: true}
	rt.rtc = rtc

	wg.Add(1)
	go runTimeSync(rt)

	clock.BlockUntil(1)
	assert.Equal(t, 0, len(rtc.writes))

	testQuit(rt)
	clock.Advance(dRTCSyncSleep)
	wg.Wait()
}
