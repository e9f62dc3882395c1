//go:build linux && (386 || amd64 || arm || arm64 || riscv64)

package parport

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ppdev", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "parport")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("uses the linux/ppdev.h request numbers", func() {
		Expect(ioctlPPClaim).To(Equal(uintptr(0x708b)))
		Expect(ioctlPPRelease).To(Equal(uintptr(0x708c)))
		Expect(ioctlPPWData).To(Equal(uintptr(0x40017086)))
	})

	It("fails to open a missing device", func() {
		_, err := Open(filepath.Join(dir, "parport9"))
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})

	It("cannot claim something that is not a parallel port", func() {
		path := filepath.Join(dir, "plain")
		Expect(os.WriteFile(path, nil, 0o600)).To(Succeed())

		p, err := Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer p.Close()

		Expect(errors.Is(p.Claim(), syscall.ENOTTY)).To(BeTrue())
	})
})
