// Package cli is the relayctl command: it turns arguments into a relay mask
// and writes it to the port in a single claimed session.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/xanderflood/relayctl/pkg/config"
	"github.com/xanderflood/relayctl/pkg/gpio"
	"github.com/xanderflood/relayctl/pkg/logging"
	"github.com/xanderflood/relayctl/pkg/parport"
	"github.com/xanderflood/relayctl/pkg/relay"
)

const (
	Name    = "relayctl"
	Version = "0.1.0"

	usage = "Usage: relayctl [(-f|--file) <file>] [-h|--help] [-v|--version] [number ...]"
)

//App one invocation of relayctl. The zero value of Open and LoadConfig
//select the real driver and config.Load.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	Open       parport.Opener
	LoadConfig func(path string) (*config.Config, error)
}

//Main runs relayctl against the real hardware and returns the exit status
func Main(args []string) int {
	app := &App{Stdout: os.Stdout, Stderr: os.Stderr}
	return app.Run(args)
}

type options struct {
	file    string
	config  string
	help    bool
	version bool
	verbose bool
	relays  []string
}

// valueFlags take the next token as their value when no "=" is given.
var valueFlags = map[string]bool{
	"-f": true, "--file": true,
	"-c": true, "--config": true,
}

// splitArgs walks args in order. The first -h or -v wins outright, the
// token after -f or -c stays with its flag, and "--", bare words and
// negative numbers go to the relay list so the encoder reports them.
func splitArgs(args []string, opts *options) (flags, relays []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return flags, append(relays, args[i+1:]...)
		case arg == "-h" || arg == "--help":
			opts.help = true
			return nil, nil
		case arg == "-v" || arg == "--version":
			opts.version = true
			return nil, nil
		case valueFlags[arg]:
			flags = append(flags, arg)
			if i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		case len(arg) < 2 || arg[0] != '-' || (arg[1] >= '0' && arg[1] <= '9'):
			relays = append(relays, arg)
		default:
			flags = append(flags, arg)
		}
	}
	return flags, relays
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}

	flags, relays := splitArgs(args, opts)
	if opts.help || opts.version {
		return opts, nil
	}

	fs := pflag.NewFlagSet(Name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVarP(&opts.file, "file", "f", "", "parallel port device to write to")
	fs.StringVarP(&opts.config, "config", "c", "", "configuration file")
	fs.BoolVarP(&opts.help, "help", "h", false, "print usage and exit")
	fs.BoolVarP(&opts.version, "version", "v", false, "print version and exit")
	fs.BoolVar(&opts.verbose, "verbose", false, "log every port operation")

	if err := fs.Parse(flags); err != nil {
		return nil, fmt.Errorf("%w: %v", relay.ErrInvalidArgument, err)
	}
	opts.relays = append(fs.Args(), relays...)
	return opts, nil
}

//Run parses args, then encodes the relays, claims the port, writes the
//mask once and releases the port. The port is released on every path
//after a successful claim; a failed release is only a warning.
func (a *App) Run(args []string) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(a.Stderr, err)
		fmt.Fprintln(a.Stderr, usage)
		return ExitStatus(err)
	}

	switch {
	case opts.help:
		fmt.Fprintln(a.Stdout, usage)
		return 0
	case opts.version:
		fmt.Fprintf(a.Stdout, "%s version %s\n", Name, Version)
		return 0
	}

	load := a.LoadConfig
	if load == nil {
		load = config.Load
	}
	cfg, err := load(opts.config)
	if err != nil {
		fmt.Fprintln(a.Stderr, err)
		return ExitStatus(err)
	}
	if opts.file != "" {
		cfg.Device = opts.file
	}

	if err := a.setupLogging(cfg, opts.verbose); err != nil {
		fmt.Fprintln(a.Stderr, err)
		return ExitStatus(err)
	}
	defer logging.Close()
	logging.Debug(logging.ComponentConfig, "loaded configuration",
		"path", opts.config, "device", cfg.Device, "driver", cfg.Driver)

	mask, err := relay.Parse(opts.relays)
	if err != nil {
		fmt.Fprintln(a.Stderr, err)
		return ExitStatus(err)
	}

	open := a.Open
	if open == nil {
		open = opener(cfg)
	}

	fmt.Fprintf(a.Stdout, "Writing data %d to %s...\n", uint8(mask), cfg.Device)
	logging.Info(logging.ComponentCLI, "writing relay mask",
		"device", cfg.Device, "mask", mask.String(), "relays", mask.Relays())

	err = parport.With(open, cfg.Device, func(s *parport.Session) error {
		return s.Write(byte(mask))
	})
	if err != nil {
		fmt.Fprintln(a.Stderr, err)
		return ExitStatus(err)
	}
	return 0
}

func (a *App) setupLogging(cfg *config.Config, verbose bool) error {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: log_level: %v", relay.ErrInvalidArgument, err)
	}
	if verbose {
		level = slog.LevelDebug
	}

	logging.Setup(a.Stderr, logging.Options{
		Level:     level,
		File:      cfg.LogFile,
		MaxSizeMB: cfg.LogMaxSizeMB,
	})
	return nil
}

func opener(cfg *config.Config) parport.Opener {
	if cfg.Driver == config.DriverRPIO {
		return gpio.Opener(cfg.Pins)
	}
	return parport.Open
}

//ExitStatus maps an error onto a process exit status: 0 for nil, the errno
//of the underlying system call when there is one, EINVAL for bad
//arguments and 1 for anything else
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}
	if errors.Is(err, relay.ErrInvalidArgument) {
		return int(syscall.EINVAL)
	}
	return 1
}
