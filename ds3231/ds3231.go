// Package ds3231 reads and sets a DS3231 real-time clock over i2c. The
// chip keeps BCD-coded time registers and a signed temperature register;
// both are exposed here, conversions included.
package ds3231

import (
	"time"

	"nixie6/i2c"
)

const (
	regSeconds = 0x00
	regTemp    = 0x11
)

type Device struct {
	bus *i2c.I2C
}

func New(bus *i2c.I2C) *Device {
	return &Device{bus: bus}
}

func bcdToDec(b byte) int {
	return int(b>>4)*10 + int(b&0x0F)
}

func decToBCD(d int) byte {
	return byte(d/10)<<4 | byte(d%10)
}

// ReadTime returns the chip's idea of now in the local zone.
func (d *Device) ReadTime() (time.Time, error) {
	var buf [7]byte
	if err := d.bus.ReadReg(regSeconds, buf[:]); err != nil {
		return time.Time{}, err
	}
	sec := bcdToDec(buf[0] & 0x7F)
	min := bcdToDec(buf[1] & 0x7F)
	hour := bcdToDec(buf[2] & 0x3F) // 24h mode
	day := bcdToDec(buf[4] & 0x3F)
	month := bcdToDec(buf[5] & 0x1F)
	year := 2000 + bcdToDec(buf[6])

	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.Local), nil
}

// SetTime writes all seven clock registers in one burst, forcing 24h
// mode. Sub-second phase is lost; the chip restarts its divider on the
// seconds write.
func (d *Device) SetTime(t time.Time) error {
	buf := []byte{
		regSeconds,
		decToBCD(t.Second()),
		decToBCD(t.Minute()),
		decToBCD(t.Hour()),
		byte(int(t.Weekday()) + 1),
		decToBCD(t.Day()),
		decToBCD(int(t.Month())),
		decToBCD(t.Year() % 100),
	}
	_, err := d.bus.Write(buf)
	return err
}

// Temperature returns the die temperature in quarter-degrees C; the tube
// enclosure runs warm and the menu can show it.
func (d *Device) Temperature() (float64, error) {
	var buf [2]byte
	if err := d.bus.ReadReg(regTemp, buf[:]); err != nil {
		return 0, err
	}
	whole := int(int8(buf[0]))
	frac := int(buf[1] >> 6)
	return float64(whole) + float64(frac)*0.25, nil
}
