package main

import "github.com/stianeikeland/go-rpio/v4"

// mcp3008 reads the 10-bit SPI ADC carrying the HV feedback divider on
// channel 0 and the ambient photocell on channel 1.
type mcp3008 struct{}

func newMCP3008() (*mcp3008, error) {
	if err := rpio.SpiBegin(rpio.Spi0); err != nil {
		return nil, err
	}
	rpio.SpiSpeed(1350000)
	rpio.SpiChipSelect(0)
	return &mcp3008{}, nil
}

func (m *mcp3008) read(channel int) int {
	if channel < 0 || channel > 7 {
		return 0
	}
	// start bit, single-ended + channel, one clocking byte
	buf := []byte{0x01, byte(0x80 | channel<<4), 0x00}
	rpio.SpiExchange(buf)
	return int(buf[1]&0x03)<<8 | int(buf[2])
}

func (m *mcp3008) close() {
	rpio.SpiEnd(rpio.Spi0)
}

// fakeADC plays back scripted per-channel readings; the last value
// repeats once a script runs out. Used in tests and simulated mode.
type fakeADC struct {
	values map[int][]int
	idx    map[int]int
}

func newFakeADC() *fakeADC {
	return &fakeADC{values: make(map[int][]int), idx: make(map[int]int)}
}

func (f *fakeADC) setChannel(channel int, values ...int) {
	f.values[channel] = values
	f.idx[channel] = 0
}

func (f *fakeADC) read(channel int) int {
	vals := f.values[channel]
	if len(vals) == 0 {
		return 0
	}
	i := f.idx[channel]
	if i >= len(vals) {
		return vals[len(vals)-1]
	}
	f.idx[channel] = i + 1
	return vals[i]
}
