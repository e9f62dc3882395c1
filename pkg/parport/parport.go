// Package parport gives one-shot, exclusive access to a parallel port data
// register.
//
// A Session brackets a single write: Acquire opens and claims the port,
// Write sets the eight data lines, and Release gives the port back to the
// driver and closes it. With runs that bracket around a function so the
// release happens on every exit path.
package parport

import (
	"fmt"
	"os"

	"github.com/xanderflood/relayctl/pkg/logging"
)

//Port the driver operations a session needs
//go:generate counterfeiter . Port
type Port interface {
	Claim() error
	WriteData(b byte) error
	Release() error
	Close() error
}

//Opener opens the port named by path for reading and writing
type Opener func(path string) (Port, error)

//Session a claimed port. A Session is owned by one caller and is never
//reused after Release.
type Session struct {
	path     string
	port     Port
	released bool
}

//Acquire opens and claims the port. If the claim fails the port is closed
//before returning, so a failed Acquire never leaves a handle open.
func Acquire(open Opener, path string) (*Session, error) {
	port, err := open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	if err := port.Claim(); err != nil {
		if cerr := port.Close(); cerr != nil {
			logging.Warn(logging.ComponentSession, "failed closing port after claim failure",
				"path", path, "error", cerr)
		}
		return nil, &ClaimError{Path: path, Err: err}
	}

	logging.Debug(logging.ComponentSession, "claimed port", "path", path)
	return &Session{path: path, port: port}, nil
}

//Write sets the data register. The previous register value is not read
//first; all eight lines take their state from b.
func (s *Session) Write(b byte) error {
	if s.released {
		return &WriteError{Path: s.path, Value: b, Err: os.ErrClosed}
	}

	if err := s.port.WriteData(b); err != nil {
		return &WriteError{Path: s.path, Value: b, Err: err}
	}

	logging.Debug(logging.ComponentSession, "wrote data", "path", s.path, "value", b)
	return nil
}

//Release gives the port back to the driver, then closes it even if the
//release failed. Any failure comes back as a *ReleaseWarning. Calls after
//the first do nothing.
func (s *Session) Release() error {
	if s.released {
		return nil
	}
	s.released = true

	rerr := s.port.Release()
	cerr := s.port.Close()
	if rerr != nil || cerr != nil {
		return &ReleaseWarning{Path: s.path, Release: rerr, Close: cerr}
	}

	logging.Debug(logging.ComponentSession, "released port", "path", s.path)
	return nil
}

//Path the device path the session was acquired on
func (s *Session) Path() string { return s.path }

func (s *Session) String() string {
	return fmt.Sprintf("parport(%s)", s.path)
}

//Halt implements periph's conn.Resource by releasing the port
func (s *Session) Halt() error {
	return s.Release()
}

//With acquires the port, runs fn and releases the port however fn returns.
//The result is fn's error, or the acquisition error if fn never ran. A
//failed release is logged as a warning and does not change the result.
func With(open Opener, path string, fn func(*Session) error) error {
	s, err := Acquire(open, path)
	if err != nil {
		return err
	}
	defer func() {
		if werr := s.Release(); werr != nil {
			logging.Warn(logging.ComponentSession, "Warning: "+werr.Error(), "path", path)
		}
	}()

	return fn(s)
}
