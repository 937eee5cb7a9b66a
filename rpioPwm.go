package main

import "github.com/stianeikeland/go-rpio/v4"

// One period is the tick count over the cycle clock; at 1MHz the
// calibrated periods land the converter in the tens-of-kHz range the
// inductor was sized for.
const pwmClockHz = 1000000

// rpioPwm maps the regulator's tick registers onto the Pi's hardware PWM.
type rpioPwm struct {
	pin   rpio.Pin
	top   int
	pulse int
}

func newRpioPwm() *rpioPwm {
	p := &rpioPwm{pin: rpio.Pin(pinPWM), top: pwmTopMin, pulse: 0}
	p.pin.Mode(rpio.Pwm)
	p.pin.Freq(pwmClockHz)
	return p
}

func (p *rpioPwm) setPWMPeriod(ticks int) {
	p.top = ticks
	p.pin.DutyCycle(uint32(p.pulse), uint32(p.top))
}

func (p *rpioPwm) setPWMPulseWidth(ticks int) {
	p.pulse = ticks
	p.pin.DutyCycle(uint32(p.pulse), uint32(p.top))
}
