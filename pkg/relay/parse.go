package relay

import (
	"errors"
	"fmt"
	"math"

	"periph.io/x/periph/conn/gpio"
)

//ErrInvalidArgument is wrapped by every token validation error
var ErrInvalidArgument = errors.New("invalid argument")

//InvalidTokenError a token with no leading number, or one that reads as 0.
//The two cases cannot be told apart.
type InvalidTokenError struct {
	Token string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("unknown argument '%s'", e.Token)
}

func (e *InvalidTokenError) Unwrap() error { return ErrInvalidArgument }

//OutOfRangeError a relay number outside [Min, Max]
type OutOfRangeError struct {
	Value int64
	Min   int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("out-of-bounds argument '%d' (expected between %d and %d)", e.Value, e.Min, e.Max)
}

func (e *OutOfRangeError) Unwrap() error { return ErrInvalidArgument }

//Parse builds the mask for the given relay numbers. Only the listed relays
//are on; any bad token fails the whole call with a zero mask.
func Parse(tokens []string) (Mask, error) {
	var m Mask
	for _, tok := range tokens {
		n, err := ParseRelay(tok)
		if err != nil {
			return 0, err
		}
		if err := m.Pin(n).Out(gpio.High); err != nil {
			return 0, err
		}
	}
	return m, nil
}

//ParseRelay parses a single relay number
func ParseRelay(tok string) (int, error) {
	v, _ := parseLong(tok)
	if v == 0 {
		return 0, &InvalidTokenError{Token: tok}
	}
	if v < Min || v > Max {
		return 0, &OutOfRangeError{Value: v, Min: Min, Max: Max}
	}
	return int(v), nil
}

// parseLong reads a base-10 integer the way strtol does: leading
// whitespace, an optional sign, then as many digits as follow. Anything
// after the digits is ignored and overflow saturates. ok is false when no
// digits were found, in which case the value is 0.
func parseLong(s string) (v int64, ok bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	var acc uint64
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	overflow := false
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		ok = true
		if overflow {
			continue
		}
		d := uint64(s[i] - '0')
		if acc > (limit-d)/10 {
			overflow = true
			continue
		}
		acc = acc*10 + d
	}

	if overflow {
		acc = limit
	}
	if neg {
		return -int64(acc - 1) - 1, ok
	}
	return int64(acc), ok
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
