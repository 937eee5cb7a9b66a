// Package i2c is a minimal /dev/i2c-N wrapper: line select via ioctl,
// plain reads and writes, and a simulated mode that just logs traffic.
package i2c

import (
	"fmt"
	"log"
	"os"
	"syscall"
)

type I2C struct {
	fd      *os.File
	address uint8
	sim     bool
	simRegs [256]byte
}

const i2cSlave = 0x0703

// Open connects to an i2c device, or fakes one when simulated.
func Open(address uint8, bus int, simulated bool) (*I2C, error) {
	if simulated {
		return &I2C{sim: true, address: address}, nil
	}
	f, err := os.OpenFile(fmt.Sprintf("/dev/i2c-%d", bus), os.O_RDWR, 0600)
	if err != nil {
		return nil, err
	}
	if err := ioctl(f.Fd(), i2cSlave, uintptr(address)); err != nil {
		f.Close()
		return nil, err
	}
	return &I2C{fd: f, address: address}, nil
}

func (d *I2C) Close() error {
	if d.sim {
		log.Printf("i2c: close 0x%02x", d.address)
		return nil
	}
	return d.fd.Close()
}

// Write sends a register address followed by payload bytes.
func (d *I2C) Write(buf []uint8) (int, error) {
	if err := d.selectLine(); err != nil {
		return 0, err
	}
	if d.sim {
		if len(buf) > 1 {
			copy(d.simRegs[buf[0]:], buf[1:])
		}
		log.Printf("i2c: write % 02x", buf)
		return len(buf), nil
	}
	return d.fd.Write(buf)
}

// ReadReg points at a register then reads len(buf) bytes back.
func (d *I2C) ReadReg(reg byte, buf []byte) error {
	if err := d.selectLine(); err != nil {
		return err
	}
	if d.sim {
		copy(buf, d.simRegs[reg:])
		return nil
	}
	if _, err := d.fd.Write([]byte{reg}); err != nil {
		return err
	}
	_, err := d.fd.Read(buf)
	return err
}

func (d *I2C) selectLine() error {
	if d.sim {
		return nil
	}
	return ioctl(d.fd.Fd(), i2cSlave, uintptr(d.address))
}

func ioctl(fd, cmd, arg uintptr) error {
	_, _, err := syscall.Syscall6(syscall.SYS_IOCTL, fd, cmd, arg, 0, 0, 0)
	if err != 0 {
		return err
	}
	return nil
}
