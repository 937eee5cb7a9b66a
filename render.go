package main

// Per-impression display rendering. Six digit slots share one BCD decoder
// and one HV supply; each slot in turn gets a fixed busy-counted window of
// digitDisplayCount+digitGhostCount logical steps. All timing is step
// counts, never wall clock, so the anti-ghost ordering is exact.

// display modes, per slot
const (
	modeBlanked = iota
	modeDimmed
	modeFade
	modeNormal
	modeBlink
	modeScroll
	modeBright
)

// decoder value that blanks the tube: the K155ID1 turns all cathodes off
// for BCD codes above 9.
const blankDigit = 10

// digitSlot is the per-position render state. fadeState counts down the
// remaining impressions of an active fade or scroll, 0 when idle, and hits
// 0 exactly when current converges on target.
type digitSlot struct {
	target    int
	current   int
	mode      int
	fadeState int
}

// renderParams are the global knobs read fresh every impression.
type renderParams struct {
	offCount    int
	fadeSteps   int
	scrollSteps int
	scrollback  bool
	blanked     bool
}

// renderTiming holds the step indices for one slot's impression.
// onStep < switchStep whenever onStep fires at all.
type renderTiming struct {
	onStep     int
	switchStep int
	offStep    int
}

type renderer struct {
	digits     digitDriver
	blinkCount int
	blinkOn    bool
}

func newRenderer(digits digitDriver) *renderer {
	return &renderer{digits: digits}
}

// renderImpression renders each of the six slots once and advances their
// transition state. The blink toggle is shared: it flips once every
// blinkCountMax slot impressions so all blinking digits stay in phase.
func (r *renderer) renderImpression(slots *[numDigits]digitSlot, p renderParams) {
	for i := range slots {
		r.renderSlot(i, &slots[i], p)
		r.blinkCount++
	}
	if r.blinkCount >= blinkCountMax {
		r.blinkCount -= blinkCountMax
		r.blinkOn = !r.blinkOn
	}
}

// effectiveMode resolves the mode actually rendered this impression: the
// global blank flag wins, then the scroll-to-zero override.
func (r *renderer) effectiveMode(s *digitSlot, p renderParams) int {
	if p.blanked {
		return modeBlanked
	}
	if p.scrollback && s.target == 0 && s.current != s.target {
		return modeScroll
	}
	return s.mode
}

// slotTiming computes the on/off steps for a mode. Unknown modes get the
// full-range snap treatment, the safe default.
func (r *renderer) slotTiming(mode int, p renderParams) renderTiming {
	t := renderTiming{onStep: 0, switchStep: digitDisplayCount, offStep: p.offCount}
	switch mode {
	case modeBlanked:
		t.onStep = stepNever
		t.offStep = 0
	case modeDimmed:
		t.offStep = digitDisplayDimmed
	case modeBright:
		t.offStep = digitDisplayCount
	case modeBlink:
		if r.blinkOn {
			t.offStep = digitDisplayCount
		} else {
			t.onStep = stepNever
			t.offStep = 0
		}
	case modeFade, modeNormal, modeScroll:
		// lit for the ambient off-count
	default:
		// fall through to full-range snap
	}
	return t
}

// advanceSlot applies the transition state machine: scroll counts the
// digit down one step every scrollSteps impressions, fade walks the
// decoder switch point from the far end of the range down to one fade
// step, everything else snaps.
func advanceSlot(s *digitSlot, mode int, p renderParams, t *renderTiming) {
	switch {
	case mode == modeScroll && s.current != s.target:
		// the new value is never shown mid-impression; the roll effect is
		// each impression showing one digit lower
		t.switchStep = digitDisplayCount
		if s.fadeState == 0 {
			s.fadeState = p.scrollSteps
		}
		if s.fadeState == 1 {
			s.current--
			if s.current < 0 {
				s.current = 9
			}
			s.fadeState = 0
		} else {
			s.fadeState--
		}
	case mode == modeFade && s.current != s.target:
		if s.fadeState == 0 {
			s.fadeState = p.fadeSteps
		}
		// fadeSteps has a non-zero floor at the settings boundary, but a
		// deeply dimmed offCount can still undercut it; keep the switch
		// point past the on edge
		fadeStep := p.offCount / p.fadeSteps
		if fadeStep < 1 {
			fadeStep = 1
		}
		t.switchStep = s.fadeState * fadeStep
		if s.fadeState == 1 {
			s.current = s.target
			s.fadeState = 0
		} else {
			s.fadeState--
		}
	default:
		t.switchStep = digitDisplayCount
		s.current = s.target
		s.fadeState = 0
	}
}

// renderSlot performs one impression for one slot: compute the step
// thresholds, advance the transition, then busy-count through the fixed
// range firing the drive events at their steps. The extra ghost-margin
// steps after offStep let the tube bleed off before the next anode.
func (r *renderer) renderSlot(pos int, s *digitSlot, p renderParams) renderTiming {
	mode := r.effectiveMode(s, p)
	t := r.slotTiming(mode, p)
	advanceSlot(s, mode, p, &t)

	// post-advance current is this impression's face; mid-fade it is
	// still the old digit and the decoder blends over at switchStep
	from, to := s.current, s.target

	for step := 0; step <= digitDisplayCount+digitGhostCount; step++ {
		if step == t.onStep {
			r.digits.setDecoderValue(from)
			r.digits.selectDigit(pos, true)
			r.digits.setHVEnabled(true)
		}
		if step == t.switchStep && from != to {
			r.digits.setDecoderValue(to)
		}
		if step == t.offStep {
			r.digits.setHVEnabled(false)
			r.digits.selectDigit(pos, false)
		}
	}
	return t
}
