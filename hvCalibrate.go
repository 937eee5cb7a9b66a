package main

import "log"

// HV self-calibration: discover workable PWM on-time bounds for an
// unknown tube/supply pairing. Four passes, each a fixed 768-impression
// budget -- bounded cycles, not bounded error. If the supply never reaches
// target the passes still run out and the clamped result is accepted;
// the optional convergence check only logs, it never changes the result.

type calibrationResult struct {
	bottomOnValue int
	topOnValue    int
	pwmOnTime     int
	pwmTopTime    int
}

// runCalibration drives the whole procedure. impress must render one
// impression of the all-8s-bright pattern so the HV load is
// representative; the PWM keeps free-running underneath it.
func (h *hvRegulator) runCalibration(volts int, adc adcReader, impress func()) calibrationResult {
	var res calibrationResult

	// pass 1: settle the period at the default on-time, against an
	// overshot threshold so pass 2 starts from above target
	h.setTargetVoltage(volts + calOvershoot)
	h.setPWMOnTime(pwmOnDefault)
	for i := 0; i < calPassBudget; i++ {
		impress()
		h.regulateStep(adc.read(adcChanHV))
	}

	// pass 2: walk the on-time up from its floor until the smoothed
	// reading reaches the exact target; that is the cheapest pulse that
	// still gets there
	h.setTargetVoltage(volts)
	h.setPWMOnTime(pwmPulseMin)
	for i := 0; i < calPassBudget; i++ {
		impress()
		h.smooth(adc.read(adcChanHV))
		if (i+1)%calStepInterval == 0 && h.hv.smoothed < h.hv.rawThreshold {
			h.setPWMOnTime(h.hv.pwmOnTime + 1)
		}
	}
	res.bottomOnValue = h.hv.pwmOnTime

	// pass 3: start well above the bottom bound and walk back down while
	// the reading stays above target; that is the widest viable pulse
	h.setPWMOnTime(res.bottomOnValue + calTopHeadroom)
	for i := 0; i < calPassBudget; i++ {
		impress()
		h.smooth(adc.read(adcChanHV))
		if (i+1)%calStepInterval == 0 && h.hv.smoothed > h.hv.rawThreshold {
			h.setPWMOnTime(h.hv.pwmOnTime - 1)
		}
	}
	res.topOnValue = h.hv.pwmOnTime

	// split the difference and freeze the on-time
	h.setPWMOnTime((res.bottomOnValue + res.topOnValue) / 2)

	// pass 4: re-settle the period at the final on-time
	h.setTargetVoltage(volts + calOvershoot)
	for i := 0; i < calPassBudget; i++ {
		impress()
		h.regulateStep(adc.read(adcChanHV))
	}

	// hand the loop back regulating at the real target, not the overshoot
	h.setTargetVoltage(volts)

	res.pwmOnTime = h.hv.pwmOnTime
	res.pwmTopTime = h.hv.pwmTopTime
	return res
}

// checkConvergence reports whether the smoothed reading ended up near the
// threshold. Advisory only; the fixed-budget result stands either way.
func (h *hvRegulator) checkConvergence(volts int) bool {
	want := rawThresholdFor(volts)
	diff := h.hv.smoothed - want
	if diff < 0 {
		diff = -diff
	}
	if diff > want/10 {
		log.Printf("HV calibration did not converge: smoothed %d, threshold %d", h.hv.smoothed, want)
		return false
	}
	return true
}
