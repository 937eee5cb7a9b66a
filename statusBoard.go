package main

import (
	"sync"
	"time"
)

// statusBoard is the one crack in the single-owner rule: the clock loop
// publishes a snapshot here and the HTTP service reads it, so telemetry
// never touches live render or HV state.
type statusBoard struct {
	mu sync.RWMutex
	s  statusSnapshot
}

type statusSnapshot struct {
	Time        time.Time `json:"time"`
	PWMOnTime   int       `json:"pwmOnTime"`
	PWMTopTime  int       `json:"pwmTopTime"`
	HVSmoothed  int       `json:"hvSmoothed"`
	OffCount    int       `json:"offCount"`
	Impressions uint64    `json:"impressions"`
	Calibrating bool      `json:"calibrating"`
}

func newStatusBoard() *statusBoard {
	return &statusBoard{}
}

func (b *statusBoard) publish(s statusSnapshot) {
	b.mu.Lock()
	b.s = s
	b.mu.Unlock()
}

func (b *statusBoard) snapshot() statusSnapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.s
}
