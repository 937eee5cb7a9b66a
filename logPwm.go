package main

// logPwm records every register write for tests.
type logPwm struct {
	top    int
	pulse  int
	writes []string
	tops   []int
	pulses []int
}

func (p *logPwm) setPWMPeriod(ticks int) {
	p.top = ticks
	p.tops = append(p.tops, ticks)
	p.writes = append(p.writes, "period")
}

func (p *logPwm) setPWMPulseWidth(ticks int) {
	p.pulse = ticks
	p.pulses = append(p.pulses, ticks)
	p.writes = append(p.writes, "pulse")
}
