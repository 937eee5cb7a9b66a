package main

import "fmt"

// sigEvent records one driver call with the step-order it arrived in;
// tests replay the audit to check on/switch/off sequencing.
type sigEvent struct {
	kind  string // "select", "decode", "hv"
	pos   int
	value int
	on    bool
}

// logDigits is the recording digitDriver used in tests and sim mode.
type logDigits struct {
	decoderValue int
	hvOn         bool
	selected     [numDigits]bool
	audit        []sigEvent
	// decoded values seen while the slot's anode was selected, per slot
	litValues [numDigits][]int
}

func newLogDigits() *logDigits {
	return &logDigits{decoderValue: -1}
}

func (ld *logDigits) selectDigit(pos int, on bool) {
	if pos < 0 || pos >= numDigits {
		return
	}
	ld.selected[pos] = on
	ld.audit = append(ld.audit, sigEvent{kind: "select", pos: pos, on: on})
	if on {
		// the decoder is latched before the anode closes
		ld.litValues[pos] = append(ld.litValues[pos], ld.decoderValue)
	}
}

func (ld *logDigits) setDecoderValue(digit int) {
	ld.decoderValue = digit
	ld.audit = append(ld.audit, sigEvent{kind: "decode", value: digit})
	for pos := 0; pos < numDigits; pos++ {
		if ld.selected[pos] {
			ld.litValues[pos] = append(ld.litValues[pos], digit)
		}
	}
}

func (ld *logDigits) setHVEnabled(on bool) {
	ld.hvOn = on
	ld.audit = append(ld.audit, sigEvent{kind: "hv", on: on})
}

func (ld *logDigits) reset() {
	ld.audit = nil
	for i := range ld.litValues {
		ld.litValues[i] = nil
	}
}

func (ld *logDigits) String() string {
	return fmt.Sprintf("decoder=%d hv=%v selected=%v", ld.decoderValue, ld.hvOn, ld.selected)
}
