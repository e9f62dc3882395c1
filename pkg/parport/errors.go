package parport

import (
	"errors"
	"fmt"
)

//ErrUnsupported returned by Open on platforms without ppdev
var ErrUnsupported = errors.New("parallel port access is not supported on this platform")

//OpenError the device node could not be opened
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open the given port %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

//ClaimError the driver refused exclusive access, usually because another
//process holds the port
type ClaimError struct {
	Path string
	Err  error
}

func (e *ClaimError) Error() string {
	return fmt.Sprintf("failed to claim the port %s: %v", e.Path, e.Err)
}

func (e *ClaimError) Unwrap() error { return e.Err }

//WriteError the data register write failed
type WriteError struct {
	Path  string
	Value byte
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write data %d to %s: %v", e.Value, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

//ReleaseWarning teardown failed. It is diagnostic only and never replaces
//the result of the write.
type ReleaseWarning struct {
	Path    string
	Release error
	Close   error
}

func (e *ReleaseWarning) Error() string {
	switch {
	case e.Release != nil && e.Close != nil:
		return fmt.Sprintf("failed to release the port %s: %v (close: %v)", e.Path, e.Release, e.Close)
	case e.Release != nil:
		return fmt.Sprintf("failed to release the port %s: %v", e.Path, e.Release)
	default:
		return fmt.Sprintf("failed to close the port %s: %v", e.Path, e.Close)
	}
}

func (e *ReleaseWarning) Unwrap() []error {
	var errs []error
	for _, err := range []error{e.Release, e.Close} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
