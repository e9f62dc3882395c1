//go:build !linux

package parport

//Open always fails outside Linux
func Open(path string) (Port, error) {
	return nil, ErrUnsupported
}
