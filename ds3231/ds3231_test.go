package ds3231

import (
	"testing"
	"time"

	"gotest.tools/assert"

	"nixie6/i2c"
)

func TestTimeRoundTrip(t *testing.T) {
	bus, err := i2c.Open(0x68, 1, true)
	assert.NilError(t, err)
	dev := New(bus)

	want := time.Date(2020, time.November, 3, 21, 45, 9, 0, time.Local)
	assert.NilError(t, dev.SetTime(want))

	got, err := dev.ReadTime()
	assert.NilError(t, err)
	assert.Equal(t, got, want)
}

func TestBCDConversions(t *testing.T) {
	for d := 0; d < 100; d++ {
		assert.Equal(t, bcdToDec(decToBCD(d)), d)
	}
	assert.Equal(t, decToBCD(59), byte(0x59))
	assert.Equal(t, bcdToDec(0x23), 23)
}
