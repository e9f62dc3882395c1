package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	//DefaultDevice the first ppdev port on Linux
	DefaultDevice = "/dev/parport0"

	//DefaultFile read when no config file is named; it may be absent
	DefaultFile = "/etc/relayctl.yaml"

	DriverPPDev = "ppdev"
	DriverRPIO  = "rpio"
)

//Config everything an invocation needs besides the relay numbers
type Config struct {
	Device       string `yaml:"device"`
	Driver       string `yaml:"driver"`
	Pins         []int  `yaml:"pins"`
	LogLevel     string `yaml:"log_level"`
	LogFile      string `yaml:"log_file"`
	LogMaxSizeMB int    `yaml:"log_max_size_mb"`
}

//Default the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Device:       DefaultDevice,
		Driver:       DriverPPDev,
		LogLevel:     "warn",
		LogMaxSizeMB: 10,
	}
}

//Load builds the configuration from defaults, then the YAML file at path,
//then RELAYCTL_* environment variables. An empty path means DefaultFile,
//which is skipped if it does not exist; a named file must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	required := path != ""
	if !required {
		path = DefaultFile
	}
	if err := loadFromFile(cfg, path); err != nil {
		if required || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed loading config from %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("RELAYCTL_DEVICE"); v != "" {
		cfg.Device = v
	}
	if v := os.Getenv("RELAYCTL_DRIVER"); v != "" {
		cfg.Driver = v
	}
	if v := os.Getenv("RELAYCTL_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("RELAYCTL_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("RELAYCTL_LOG_MAX_SIZE_MB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RELAYCTL_LOG_MAX_SIZE_MB: %w", err)
		}
		cfg.LogMaxSizeMB = n
	}
	return nil
}

//Validate checks the fields that have a fixed set of legal values
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverPPDev:
		if c.Device == "" {
			return errors.New("device must not be empty")
		}
	case DriverRPIO:
		if len(c.Pins) != 8 {
			return fmt.Errorf("driver %s needs exactly 8 pins, got %d", DriverRPIO, len(c.Pins))
		}
	default:
		return fmt.Errorf("unknown driver `%s`", c.Driver)
	}

	if c.LogMaxSizeMB < 0 {
		return errors.New("log_max_size_mb must not be negative")
	}
	return nil
}
