package config_test

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/xanderflood/relayctl/pkg/config"
)

var _ = Describe("Load", func() {
	var dir string

	write := func(body string) string {
		path := filepath.Join(dir, "relayctl.yaml")
		Expect(os.WriteFile(path, []byte(body), 0o600)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "relayctl-config")
		Expect(err).NotTo(HaveOccurred())

		for _, k := range []string{"RELAYCTL_DEVICE", "RELAYCTL_DRIVER", "RELAYCTL_LOG_LEVEL", "RELAYCTL_LOG_FILE", "RELAYCTL_LOG_MAX_SIZE_MB"} {
			Expect(os.Unsetenv(k)).To(Succeed())
		}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	It("reads a YAML file over the defaults", func() {
		cfg, err := config.Load(write("device: /dev/parport1\nlog_level: debug\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Device).To(Equal("/dev/parport1"))
		Expect(cfg.Driver).To(Equal(config.DriverPPDev))
		Expect(cfg.LogLevel).To(Equal("debug"))
		Expect(cfg.LogMaxSizeMB).To(Equal(10))
	})

	It("lets the environment override the file", func() {
		path := write("device: /dev/parport1\n")
		Expect(os.Setenv("RELAYCTL_DEVICE", "/dev/parport2")).To(Succeed())
		defer os.Unsetenv("RELAYCTL_DEVICE")

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Device).To(Equal("/dev/parport2"))
	})

	It("fails when a named file is missing", func() {
		_, err := config.Load(filepath.Join(dir, "nope.yaml"))
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})

	It("rejects malformed YAML", func() {
		_, err := config.Load(write("device: [\n"))
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unknown driver", func() {
		_, err := config.Load(write("driver: serial\n"))
		Expect(err).To(MatchError(ContainSubstring("unknown driver `serial`")))
	})

	It("requires eight pins for the rpio driver", func() {
		_, err := config.Load(write("driver: rpio\npins: [17, 18]\n"))
		Expect(err).To(MatchError(ContainSubstring("needs exactly 8 pins")))

		cfg, err := config.Load(write("driver: rpio\npins: [4, 17, 18, 27, 22, 23, 24, 25]\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Pins).To(HaveLen(8))
	})

	It("rejects a bad size override", func() {
		Expect(os.Setenv("RELAYCTL_LOG_MAX_SIZE_MB", "lots")).To(Succeed())
		defer os.Unsetenv("RELAYCTL_LOG_MAX_SIZE_MB")

		_, err := config.Load(write(""))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Default", func() {
	It("points at the first parallel port", func() {
		cfg := config.Default()
		Expect(cfg.Device).To(Equal("/dev/parport0"))
		Expect(cfg.Validate()).To(Succeed())
	})
})
