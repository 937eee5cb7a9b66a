// Package k155id1 drives a K155ID1 (74141) high-voltage BCD-to-decimal
// decoder through four GPIO lines. The chip sinks one of ten nixie
// cathodes for BCD codes 0-9 and leaves all of them off for codes 10-15,
// which is how the display blanks a digit without cutting anode drive.
package k155id1

import "log"

// Blank is the lowest input code that turns every cathode off.
const Blank = 10

// Pin is the single GPIO line the decoder needs from the host; rpio.Pin
// satisfies it directly.
type Pin interface {
	High()
	Low()
}

type Decoder struct {
	// BCD inputs A (LSB) through D (MSB)
	pins [4]Pin
	last int
	dump bool
}

func New(a, b, c, d Pin) *Decoder {
	return &Decoder{pins: [4]Pin{a, b, c, d}, last: -1}
}

// DebugDump logs every value change; handy when watching a simulated run.
func (d *Decoder) DebugDump(on bool) {
	d.dump = on
}

// Set latches a BCD value onto the input pins. Values outside 0-9 (Blank
// included) blank the tube; they are clipped to 4 bits like the real
// inputs would be.
func (d *Decoder) Set(value int) {
	value &= 0x0F
	if value == d.last {
		return
	}
	d.last = value
	for i, p := range d.pins {
		if value&(1<<uint(i)) != 0 {
			p.High()
		} else {
			p.Low()
		}
	}
	if d.dump {
		log.Printf("k155id1: set %d", value)
	}
}

// Last reports the value currently latched, -1 before the first Set.
func (d *Decoder) Last() int {
	return d.last
}
