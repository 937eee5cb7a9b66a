package main

// HV boost converter regulation. The PWM timer free-runs in hardware; the
// software loop only nudges the period by one tick per impression based on
// the smoothed feedback reading. On-time is fixed (found by calibration),
// so lowering the frequency lowers the average power and the voltage sags
// toward target. The loop never converges to a fixed point, it hunts ±1
// tick around the operating period.

type hvState struct {
	pwmTopTime   int
	pwmOnTime    int
	rawThreshold int
	smoothed     int
}

type hvRegulator struct {
	pwm         pwmDriver
	hv          hvState
	smoothCount int
	primed      bool
}

func newHVRegulator(pwm pwmDriver, smoothCount int, targetVolts int) *hvRegulator {
	if smoothCount < 1 {
		smoothCount = 1
	}
	h := &hvRegulator{pwm: pwm, smoothCount: smoothCount}
	h.hv.pwmOnTime = pwmOnDefault
	h.hv.pwmTopTime = pwmOnDefault + pwmOffMin
	h.setTargetVoltage(targetVolts)
	h.apply()
	return h
}

// rawThresholdFor converts a target tube voltage into the ADC comparison
// value seen through the feedback divider. Integer-truncated, computed
// once per target change.
func rawThresholdFor(volts int) int {
	ratio := hvDividerLow / (hvDividerLow + hvDividerHigh)
	return int(float64(volts) * ratio * adcFullScale / adcRefVolts)
}

// setTargetVoltage recomputes the comparison threshold. The caller clamps
// the configured voltage at the settings boundary; calibration passes a
// deliberate overshoot so no clamping happens here.
func (h *hvRegulator) setTargetVoltage(volts int) {
	h.hv.rawThreshold = rawThresholdFor(volts)
}

// smooth folds one raw ADC reading into the moving average.
func (h *hvRegulator) smooth(raw int) int {
	if !h.primed {
		h.hv.smoothed = raw
		h.primed = true
		return raw
	}
	h.hv.smoothed += (raw - h.hv.smoothed) / h.smoothCount
	return h.hv.smoothed
}

// regulateStep runs once per outer loop iteration: read, compare, nudge
// the period one tick, clamp, apply.
func (h *hvRegulator) regulateStep(raw int) {
	if h.smooth(raw) > h.hv.rawThreshold {
		// voltage high: stretch the period, less power
		h.setPWMTopTime(h.hv.pwmTopTime + 1)
	} else {
		h.setPWMTopTime(h.hv.pwmTopTime - 1)
	}
}

// setPWMTopTime clamps and applies the PWM period. The period may never
// close to within pwmOffMin of the on-time; that invariant is enforced on
// every write, not checked after the fact.
func (h *hvRegulator) setPWMTopTime(ticks int) {
	ticks = clampInt(ticks, pwmTopMin, pwmTopMax)
	if ticks < h.hv.pwmOnTime+pwmOffMin {
		ticks = h.hv.pwmOnTime + pwmOffMin
	}
	h.hv.pwmTopTime = ticks
	h.pwm.setPWMPeriod(ticks)
}

// setPWMOnTime clamps and applies the pulse width, symmetric to the
// period clamp. Idempotent: writing the current value changes nothing.
func (h *hvRegulator) setPWMOnTime(ticks int) {
	ticks = clampInt(ticks, pwmPulseMin, minInt(pwmPulseMax, h.hv.pwmTopTime-pwmOffMin))
	h.hv.pwmOnTime = ticks
	h.pwm.setPWMPulseWidth(ticks)
}

// apply rewrites both timer registers from current state.
func (h *hvRegulator) apply() {
	h.pwm.setPWMPeriod(h.hv.pwmTopTime)
	h.pwm.setPWMPulseWidth(h.hv.pwmOnTime)
}

// restore loads a persisted operating point, clamped through the same
// invariant-preserving setters.
func (h *hvRegulator) restore(onTime, topTime int) {
	h.setPWMTopTime(topTime)
	h.setPWMOnTime(onTime)
}
