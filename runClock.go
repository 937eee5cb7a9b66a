package main

// The real-time owner. One goroutine runs the renderer, the HV regulator,
// the dimming feed and the menu; nothing else touches slot or HV state.
// The PWM hardware free-runs between corrections, so there is nothing to
// synchronize against.

func runClockLoop(rt runtimeConfig) {
	defer wg.Done()
	logger := &ThreadLogger{name: "Clock"}
	defer logger.Println("exiting runClockLoop")

	settings := rt.settings
	r := newRenderer(rt.digits)
	reg := newHVRegulator(rt.pwm, settings.GetInt(sHVSmooth), settings.GetInt(sHVTarget))
	dim := newDimmingFeed(settings.GetInt(sDimSmooth))
	menu := newMenuController(settings)

	var slots [numDigits]digitSlot
	var impressions uint64
	hvTarget := settings.GetInt(sHVTarget)

	params := func(offCount int, blanked bool) renderParams {
		return renderParams{
			offCount:    offCount,
			fadeSteps:   settings.GetInt(sFadeSteps),
			scrollSteps: settings.GetInt(sScrollSteps),
			scrollback:  settings.GetBool(sScrollback),
			blanked:     blanked,
		}
	}

	calibrate := func() {
		logger.Println("starting HV calibration")
		rt.board.publish(statusSnapshot{Calibrating: true})
		presetCalibration(&slots)
		volts := settings.GetInt(sHVTarget)
		res := reg.runCalibration(volts, rt.adc, func() {
			r.renderImpression(&slots, params(digitDisplayOff, false))
		})
		if settings.GetBool(sCalCheck) {
			reg.checkConvergence(volts)
		}
		hvTarget = volts
		settings.SetInt(sPWMOnTime, res.pwmOnTime)
		settings.SetInt(sPWMTopTime, res.pwmTopTime)
		settings.SetBool(sNeedsCal, false)
		if err := settings.saveState(); err != nil {
			logger.Printf("failed to persist calibration: %v", err)
		}
		logger.Printf("calibration done: on %d (bottom %d, top %d), top %d",
			res.pwmOnTime, res.bottomOnValue, res.topOnValue, res.pwmTopTime)
		// force the presets back onto the clock face
		presetTime(&slots)
	}

	if settings.GetBool(sNeedsCal) {
		calibrate()
	} else {
		reg.restore(settings.GetInt(sPWMOnTime), settings.GetInt(sPWMTopTime))
	}

	for {
		select {
		case <-rt.comms.quit:
			logger.Println("quit from runClockLoop")
			// release every anode before cutting the supply
			presetAllBlanked(&slots)
			r.renderImpression(&slots, params(digitDisplayOff, true))
			rt.digits.setHVEnabled(false)
			return
		case ev := <-rt.comms.buttons:
			menu.handleButton(ev, rt.rtc.now())
			if !ev.pressed && settings.GetBool(sNeedsCal) {
				// recalibration armed from the menu: run it right away
				calibrate()
			}
		default:
		}

		now := rt.rtc.now()
		blanked := menu.stamp(&slots, now)
		offCount := dim.update(rt.adc.read(adcChanAmbient))

		// threshold recomputed only when the target moves
		if v := settings.GetInt(sHVTarget); v != hvTarget {
			logger.Printf("HV target now %dV", v)
			hvTarget = v
			reg.setTargetVoltage(v)
		}

		r.renderImpression(&slots, params(offCount, blanked))
		reg.regulateStep(rt.adc.read(adcChanHV))
		impressions++

		rt.board.publish(statusSnapshot{
			Time:        now,
			PWMOnTime:   reg.hv.pwmOnTime,
			PWMTopTime:  reg.hv.pwmTopTime,
			HVSmoothed:  reg.hv.smoothed,
			OffCount:    offCount,
			Impressions: impressions,
		})

		// the inner step loops are logical ticks; pace the outer
		// iteration so a hosted build doesn't spin a core flat out
		rt.clock.Sleep(dImpressionGap)
	}
}
