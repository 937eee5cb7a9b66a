package main

import (
	"time"

	"github.com/jonboulle/clockwork"

	"nixie6/ds3231"
	"nixie6/i2c"
)

// wallClock serves time from the (NTP-disciplined) system clock; used
// when no RTC answers on the bus, and in tests via a fake clockwork.
type wallClock struct {
	clock clockwork.Clock
}

func (w *wallClock) now() time.Time {
	return w.clock.Now()
}

func (w *wallClock) setTime(t time.Time) error {
	// can't (and shouldn't) set the system clock from here
	return nil
}

// rtcClock serves time from the DS3231.
type rtcClock struct {
	dev *ds3231.Device
}

func (r *rtcClock) now() time.Time {
	t, err := r.dev.ReadTime()
	if err != nil {
		// transient bus noise: better a stale-looking read than a panic
		return time.Time{}
	}
	return t
}

func (r *rtcClock) setTime(t time.Time) error {
	return r.dev.SetTime(t)
}

// openTimeSource probes the RTC and falls back to the system clock.
func openTimeSource(settings configSettings, clock clockwork.Clock, logger flogger) timeSource {
	bus, err := i2c.Open(
		uint8(settings.GetInt(sRTCAddress)),
		settings.GetInt(sI2CBus),
		settings.GetBool(sSimulated))
	if err != nil {
		logger.Printf("no i2c bus (%v), using system clock", err)
		return &wallClock{clock: clock}
	}
	rtc := &rtcClock{dev: ds3231.New(bus)}
	if _, err := rtc.dev.ReadTime(); err != nil {
		logger.Printf("RTC not responding (%v), using system clock", err)
		return &wallClock{clock: clock}
	}
	return rtc
}

// runTimeSync re-writes the RTC from the system clock once an hour when
// the drift has grown past tolerance. If the system clock itself is
// unsynced this is a no-op wash; the RTC stays authoritative for display.
func runTimeSync(rt runtimeConfig) {
	defer wg.Done()
	logger := &ThreadLogger{name: "TimeSync"}
	defer logger.Println("exiting runTimeSync")

	for {
		select {
		case <-rt.comms.quit:
			logger.Println("quit from runTimeSync")
			return
		default:
		}

		sysNow := rt.clock.Now()
		rtcNow := rt.rtc.now()
		diff := sysNow.Sub(rtcNow)
		if diff < 0 {
			diff = -diff
		}
		if !rtcNow.IsZero() && diff > dRTCDriftMax {
			logger.Printf("RTC drifted %v, rewriting", diff)
			if err := rt.rtc.setTime(sysNow); err != nil {
				logger.Printf("RTC write failed: %v", err)
			}
		}

		rt.clock.Sleep(dRTCSyncSleep)
	}
}
