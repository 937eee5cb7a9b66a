package main

import "time"

// display geometry
const numDigits = 6

// inner timing loop. each digit gets digitDisplayCount logical steps of
// drive time plus a ghost margin where everything is released, so the
// previous tube's ionization decays before the next anode is selected.
const (
	digitDisplayCount  = 1000
	digitDisplayOff    = 1000 // max off-count: digit lit for the full range
	digitDisplayMinDim = 120  // floor for the ambient dimming feed
	digitDisplayDimmed = 100  // fixed off-step for modeDimmed
	digitGhostCount    = 50
)

// stepNever suppresses a render event entirely (blanked digits, the off
// phase of blink).
const stepNever = -1

// shared blink toggle: one flip every blinkCountMax digit impressions.
const blinkCountMax = 25

// config bounds, enforced at the settings boundary so the render math
// never divides by zero.
const (
	fadeStepsMin   = 20
	fadeStepsMax   = 200
	scrollStepsMin = 1
	scrollStepsMax = 40
)

// HV boost converter PWM limits, in timer ticks. The off-time margin is a
// hard hardware invariant: on-time may never come within pwmOffMin of the
// period or the switch stays closed and the inductor cooks.
const (
	pwmTopMin    = 100
	pwmTopMax    = 500
	pwmPulseMin  = 50
	pwmPulseMax  = 400
	pwmOffMin    = 30
	pwmOnDefault = 150
)

// HV target voltage range (volts on the tube anode supply).
const (
	hvTargetMin  = 150
	hvTargetMax  = 200
	hvTargetStep = 5
)

// feedback divider: 4.7k against 470k, sampled by a 10-bit ADC at 5V ref.
const (
	hvDividerLow  = 4.7
	hvDividerHigh = 470.0
	adcFullScale  = 1024
	adcRefVolts   = 5.0
)

// calibration: four fixed-budget passes, on-time nudged every 8th
// impression during the search passes, pass 3 starts 50 ticks above the
// pass 2 result.
const (
	calPassBudget   = 768
	calStepInterval = 8
	calTopHeadroom  = 50
	calOvershoot    = 5 // volts of threshold margin for passes 1 and 4
)

// ADC channels on the MCP3008
const (
	adcChanHV      = 0
	adcChanAmbient = 1
)

// settings keys
const (
	sFadeSteps   = "fadeSteps"
	sScrollSteps = "scrollSteps"
	sScrollback  = "scrollback"
	s24Hour      = "24hour"
	sBlankZero   = "blankLeadingZero"
	sDayBlanking = "dayBlanking"
	sBlankStart  = "blankHourStart"
	sBlankEnd    = "blankHourEnd"
	sHVTarget    = "hvVoltage"
	sHVSmooth    = "hvSmoothCount"
	sDimSmooth   = "dimSmoothCount"
	sNeedsCal    = "needsCalibration"
	sCalCheck    = "calibrationCheck"
	sPWMOnTime   = "pwmOnTime"
	sPWMTopTime  = "pwmTopTime"
	sSimulated   = "gpio_simulated"
	sButtonSim   = "button_simulated"
	sI2CBus      = "i2c_bus"
	sRTCAddress  = "rtc_address"
	sLogFile     = "logFile"
	sDevMode     = "devMode"
	sStateFile   = "statePath"
	sListen      = "listen"
	sSkipHTTP    = "skipHttp"
)

// worker loop pacing
const (
	dButtonSleep   = 10 * time.Millisecond
	dLampSleep     = 100 * time.Millisecond
	dImpressionGap = 2 * time.Millisecond
	dRTCSyncSleep  = time.Hour
)

// RTC sync tolerance: re-write the DS3231 when it drifts past this.
const dRTCDriftMax = 2 * time.Second

// GPIO pin assignment (BCM numbering)
const (
	pinDecoderA  = 17
	pinDecoderB  = 27
	pinDecoderC  = 22
	pinDecoderD  = 23
	pinHVEnable  = 13
	pinPWM       = 18 // hardware PWM0, drives the boost converter switch
	pinColonHigh = 5
	pinColonLow  = 6
	pinButton    = 25
)

// anode driver pins, one per digit position, left to right
var pinAnodes = [numDigits]int{4, 12, 16, 20, 21, 26}
