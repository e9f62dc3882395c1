package gpio

import (
	"fmt"

	rpio "github.com/stianeikeland/go-rpio"

	"github.com/xanderflood/relayctl/pkg/logging"
	"github.com/xanderflood/relayctl/pkg/parport"
)

//Width the number of pins a Bank drives, one per data bit
const Width = 8

//Setup initialize memory buffers for GPIO
func Setup() error {
	return rpio.Open()
}

//Teardown unmap the GPIO memory
func Teardown() error {
	return rpio.Close()
}

//OutputPin minimal interface for a GPIO pin
//go:generate counterfeiter . OutputPin
type OutputPin interface {
	Output()
	High()
	Low()
}

//Set sets the state of the pin
func Set(pin OutputPin, high bool) {
	pin.Output()
	if high {
		pin.High()
	} else {
		pin.Low()
	}
}

//Bank drives a relay board wired to GPIO pins instead of a parallel port.
//It implements parport.Port: pin i follows bit i of every byte written.
type Bank struct {
	pins []OutputPin

	setup    func() error
	teardown func() error
	mapped   bool
}

//NewBank a bank over pins that need no memory mapping
func NewBank(pins ...OutputPin) *Bank {
	return &Bank{pins: pins}
}

//Opener returns a parport.Opener for a bank on the given BCM pin numbers,
//lowest data bit first. The device path is ignored; the pins identify the
//hardware.
func Opener(bcm []int) parport.Opener {
	return func(string) (parport.Port, error) {
		if len(bcm) != Width {
			return nil, fmt.Errorf("gpio bank needs %d pins, got %d", Width, len(bcm))
		}

		pins := make([]OutputPin, len(bcm))
		for i, n := range bcm {
			pins[i] = rpio.Pin(n)
		}
		return &Bank{pins: pins, setup: Setup, teardown: Teardown}, nil
	}
}

//Claim maps GPIO memory and switches every pin to output
func (b *Bank) Claim() error {
	if b.setup != nil {
		if err := b.setup(); err != nil {
			return fmt.Errorf("failed mapping gpio memory: %w", err)
		}
		b.mapped = true
	}
	for _, p := range b.pins {
		p.Output()
	}
	return nil
}

//WriteData sets pin i high iff bit i of data is set
func (b *Bank) WriteData(data byte) error {
	if len(b.pins) > Width {
		return fmt.Errorf("gpio bank has %d pins, at most %d fit in a byte", len(b.pins), Width)
	}

	for i, p := range b.pins {
		Set(p, data&(1<<uint(i)) != 0)
	}
	logging.Debug(logging.ComponentGPIO, "set gpio bank", "value", data, "pins", len(b.pins))
	return nil
}

//Release nothing to give back; GPIO has no claim
func (b *Bank) Release() error { return nil }

//Close unmaps GPIO memory if Claim mapped it. Pin levels are left as
//written.
func (b *Bank) Close() error {
	if !b.mapped || b.teardown == nil {
		return nil
	}
	b.mapped = false
	return b.teardown()
}
