//go:build linux && (mips || mipsle || mips64 || mips64le || ppc64 || ppc64le)

package parport

// mips and powerpc use a 13-bit size field and 3 direction bits, with
// "none" and "write" encoded differently from the other ports.
const (
	iocNone  = 1
	iocWrite = 4

	iocNRShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 29
)

func ioc(dir, typ, nr, size uintptr) uintptr {
	return (dir << iocDirShift) | (typ << iocTypeShift) | (nr << iocNRShift) | (size << iocSizeShift)
}

func ioctlNone(typ, nr uintptr) uintptr {
	return ioc(iocNone, typ, nr, 0)
}

func iow(typ, nr, size uintptr) uintptr {
	return ioc(iocWrite, typ, nr, size)
}
