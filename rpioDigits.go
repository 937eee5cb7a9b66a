package main

import (
	"github.com/stianeikeland/go-rpio/v4"

	"nixie6/k155id1"
)

// rpioDigits is the hardware digitDriver: six anode switches, the BCD
// decoder, and the HV gate, all on GPIO.
type rpioDigits struct {
	decoder *k155id1.Decoder
	anodes  [numDigits]rpio.Pin
	hvGate  rpio.Pin
}

func newRpioDigits() *rpioDigits {
	d := &rpioDigits{
		decoder: k155id1.New(
			rpio.Pin(pinDecoderA),
			rpio.Pin(pinDecoderB),
			rpio.Pin(pinDecoderC),
			rpio.Pin(pinDecoderD)),
		hvGate: rpio.Pin(pinHVEnable),
	}
	for _, pin := range []int{pinDecoderA, pinDecoderB, pinDecoderC, pinDecoderD} {
		rpio.Pin(pin).Output()
	}
	for i, pin := range pinAnodes {
		d.anodes[i] = rpio.Pin(pin)
		d.anodes[i].Output()
		d.anodes[i].Low()
	}
	d.hvGate.Output()
	d.hvGate.Low()
	return d
}

func (d *rpioDigits) selectDigit(pos int, on bool) {
	if pos < 0 || pos >= numDigits {
		return
	}
	if on {
		d.anodes[pos].High()
	} else {
		d.anodes[pos].Low()
	}
}

func (d *rpioDigits) setDecoderValue(digit int) {
	if digit < 0 || digit > 9 {
		digit = k155id1.Blank
	}
	d.decoder.Set(digit)
}

func (d *rpioDigits) setHVEnabled(on bool) {
	if on {
		d.hvGate.High()
	} else {
		d.hvGate.Low()
	}
}
