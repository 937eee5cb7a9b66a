package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

// testRuntime stands up a fully fake device: recording drivers, scripted
// ADC, fake clock. Calibration is marked done so tests opt in explicitly.
func testRuntime(t *testing.T) (runtimeConfig, clockwork.FakeClock) {
	settings := defaultSettings()
	settings.SetBool(sDevMode, true)
	settings.SetBool(sNeedsCal, false)
	settings.mu.Lock()
	settings.settings[sStateFile] = filepath.Join(t.TempDir(), "state.json")
	settings.mu.Unlock()

	clock := clockwork.NewFakeClock()
	adc := newFakeADC()
	adc.setChannel(adcChanHV, rawThresholdFor(settings.GetInt(sHVTarget)))
	adc.setChannel(adcChanAmbient, adcFullScale-1)

	rt := runtimeConfig{
		comms:    initCommChannels(),
		settings: settings,
		clock:    clock,
		rtc:      &wallClock{clock: clock},
		digits:   newLogDigits(),
		pwm:      &logPwm{},
		adc:      adc,
		lamps:    &logLamps{},
		buttons:  &noButtons{},
		board:    newStatusBoard(),
		logger:   &ThreadLogger{name: "Test"},
	}
	return rt, clock
}

func testQuit(rt runtimeConfig) {
	close(rt.comms.quit)
}

func buttonEventRead(t *testing.T, c chan buttonEvent) buttonEvent {
	select {
	case e := <-c:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("nothing to read from button channel")
	}
	return buttonEvent{}
}
