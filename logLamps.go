package main

import "fmt"

type logLamps struct {
	lamps      map[int]bool
	audit      []string
	disableLog bool
	logger     flogger
}

func (ll *logLamps) init() error {
	ll.lamps = make(map[int]bool)
	ll.audit = make([]string, 0)
	ll.logger = &ThreadLogger{name: "Lamps"}
	return nil
}

func (ll *logLamps) set(pin int, on bool) {
	ll.lamps[pin] = on
	if !ll.disableLog {
		ll.logger.Printf("Set lamp %v to %v", pin, on)
	}
	ll.audit = append(ll.audit, fmt.Sprintf("Set lamp %v to %v", pin, on))
}

func (ll *logLamps) on(pin int) {
	ll.set(pin, true)
}

func (ll *logLamps) off(pin int) {
	ll.set(pin, false)
}
