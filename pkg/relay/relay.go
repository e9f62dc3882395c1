package relay

import (
	"errors"
	"fmt"
	"strconv"

	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/physic"
)

const (
	//Min lowest relay number on the board
	Min = 1

	//Max highest relay number on the board; one bit per relay in a Mask
	Max = 8
)

//Mask the state of the whole relay bank, as written to the port data
//register. Bit n is set iff relay n+1 is on.
type Mask uint8

//Has reports whether relay n is on
func (m Mask) Has(n int) bool {
	if n < Min || n > Max {
		return false
	}
	return m&(1<<uint(n-1)) != 0
}

//Level the periph output level of relay n
func (m Mask) Level(n int) gpio.Level {
	return gpio.Level(m.Has(n))
}

//Relays lists the relays that are on, in ascending order
func (m Mask) Relays() []int {
	var on []int
	for n := Min; n <= Max; n++ {
		if m.Has(n) {
			on = append(on, n)
		}
	}
	return on
}

func (m Mask) String() string {
	return fmt.Sprintf("0x%02x", uint8(m))
}

//Pin returns relay n as a periph output pin backed by a single bit of m.
//Driving the pin high turns the relay on in the mask; nothing touches the
//hardware until the mask is written to a port.
func (m *Mask) Pin(n int) gpio.PinOut {
	return &pin{mask: m, number: n}
}

type pin struct {
	mask   *Mask
	number int
}

func (p *pin) String() string { return p.Name() }

func (p *pin) Halt() error { return nil }

func (p *pin) Name() string { return "RELAY" + strconv.Itoa(p.number) }

func (p *pin) Number() int { return p.number }

func (p *pin) Function() string {
	return "Out/" + p.mask.Level(p.number).String()
}

func (p *pin) Out(l gpio.Level) error {
	if p.number < Min || p.number > Max {
		return &OutOfRangeError{Value: int64(p.number), Min: Min, Max: Max}
	}

	bit := Mask(1) << uint(p.number-1)
	if l == gpio.High {
		*p.mask |= bit
	} else {
		*p.mask &^= bit
	}
	return nil
}

func (p *pin) PWM(gpio.Duty, physic.Frequency) error {
	return errors.New("relay: PWM is not supported on a latched output")
}
