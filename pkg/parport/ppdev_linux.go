//go:build linux

package parport

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ppdev ioctl type character and command numbers, from linux/ppdev.h.
const (
	ppdevType = 'p'

	ppWData   = 0x86
	ppClaim   = 0x8b
	ppRelease = 0x8c
)

var (
	ioctlPPClaim   = ioctlNone(ppdevType, ppClaim)
	ioctlPPRelease = ioctlNone(ppdevType, ppRelease)
	ioctlPPWData   = iow(ppdevType, ppWData, 1) // unsigned char
)

//Open opens a ppdev character device such as /dev/parport0
func Open(path string) (Port, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return &ppdev{file: f}, nil
}

type ppdev struct {
	file *os.File
}

func (p *ppdev) Claim() error {
	return p.ioctl(ioctlPPClaim, nil)
}

func (p *ppdev) WriteData(b byte) error {
	return p.ioctl(ioctlPPWData, unsafe.Pointer(&b))
}

func (p *ppdev) Release() error {
	return p.ioctl(ioctlPPRelease, nil)
}

func (p *ppdev) Close() error {
	return p.file.Close()
}

func (p *ppdev) ioctl(req uintptr, arg unsafe.Pointer) error {
	conn, err := p.file.SyscallConn()
	if err != nil {
		return err
	}

	var errno unix.Errno
	if err := conn.Control(func(fd uintptr) {
		_, _, errno = unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(arg))
	}); err != nil {
		return err
	}
	if errno != 0 {
		return errno
	}
	return nil
}
