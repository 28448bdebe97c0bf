// Command medaq acquires an optoNCDT sensor, applies a profile, opens the
// channel, polls samples and prints them, releasing the sensor on every
// exit path.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/axondata/go-medaq"
	"github.com/axondata/go-medaq/capture"
	"github.com/axondata/go-medaq/fake"
	"github.com/axondata/go-medaq/medaqlib"
	"github.com/axondata/go-medaq/profile"
)

type config struct {
	profilePath string
	port        string
	baud        int
	iface       string
	count       int
	dll         string
	simulate    bool
	capturePath string
	watch       bool
}

func main() {
	var (
		cfg         config
		logLevel    = flag.String("log-level", "info", "Log level: debug, info, warn, error")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.StringVar(&cfg.profilePath, "profile", "", "Sensor profile YAML file (default: built-in ILD1220 profile)")
	flag.StringVar(&cfg.port, "port", "", "Override the Port parameter")
	flag.IntVar(&cfg.baud, "baud", 0, "Override the BaudRate parameter")
	flag.StringVar(&cfg.iface, "interface", "", "Override the Interface parameter")
	flag.IntVar(&cfg.count, "count", 0, "Samples per poll (default: profile capacity)")
	flag.StringVar(&cfg.dll, "dll", medaqlib.DefaultLibraryName, "Path to the MEDAQLib DLL")
	flag.BoolVar(&cfg.simulate, "simulate", false, "Use a simulated sensor instead of MEDAQLib")
	flag.StringVar(&cfg.capturePath, "capture", "", "Write polled samples to this CBOR file")
	flag.BoolVar(&cfg.watch, "watch", false, "Measure again whenever -profile changes, until interrupted")
	flag.Parse()

	if *showVersion {
		v := medaq.GetVersion()
		fmt.Printf("medaq %s (%s)\n", v.Version, v.Library)
		return
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q\n", *logLevel)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Error("measurement failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, out io.Writer, logger *slog.Logger) error {
	drv, err := openDriver(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.watch {
		return watch(ctx, cfg, drv, out, logger)
	}

	p := profile.Default()
	if cfg.profilePath != "" {
		if p, err = profile.Load(cfg.profilePath); err != nil {
			return err
		}
	}
	return measure(drv, cfg.override(p), cfg.capturePath, out, logger)
}

func openDriver(cfg config, logger *slog.Logger) (medaq.Driver, error) {
	if cfg.simulate {
		logger.Info("using simulated sensor")
		return fake.New(), nil
	}

	lib, err := medaqlib.Load(cfg.dll)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", cfg.dll, err)
	}
	logger.Debug("loaded vendor library", "path", lib.Path())
	return lib, nil
}

// override applies the command-line parameter overrides to p
func (cfg config) override(p *profile.Profile) *profile.Profile {
	if cfg.port != "" {
		p.Set(medaq.ParamPort, medaq.StringValue(cfg.port))
	}
	if cfg.baud != 0 {
		p.Set(medaq.ParamBaudRate, medaq.IntValue(int32(cfg.baud)))
	}
	if cfg.iface != "" {
		p.Set(medaq.ParamInterface, medaq.StringValue(cfg.iface))
	}
	if cfg.count > 0 {
		p.Capacity = cfg.count
	}
	return p
}

func measure(drv medaq.Driver, p *profile.Profile, capturePath string, out io.Writer, logger *slog.Logger) error {
	logger = logger.With("profile", p.Name)

	err := medaq.With(drv, p.Sensor, func(s *medaq.Session) error {
		if err := s.Apply(p.Parameters); err != nil {
			return err
		}
		if err := s.Open(); err != nil {
			return err
		}

		samples, err := s.Poll(p.Capacity)
		if err != nil {
			return err
		}
		for _, smp := range samples {
			fmt.Fprintf(out, "Raw Data: %d | Scaled Data: %g mm\n", smp.Raw, smp.Scaled)
		}

		if capturePath != "" {
			rec := capture.NewRecord(s, samples)
			rec.Profile = p.Name
			if err := capture.WriteFile(capturePath, rec); err != nil {
				return err
			}
			logger.Info("capture written", "path", capturePath, "samples", len(samples))
		}

		return s.Close()
	}, medaq.WithLogger(logger))

	if medaq.IsWarning(err) {
		logger.Warn("sensor cleanup reported failure", "error", err)
		return nil
	}
	return err
}

func watch(ctx context.Context, cfg config, drv medaq.Driver, out io.Writer, logger *slog.Logger) error {
	if cfg.profilePath == "" {
		return errors.New("-watch requires -profile")
	}

	events, cleanup, err := profile.Watch(ctx, cfg.profilePath)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	for ev := range events {
		if ev.Err != nil {
			logger.Error("profile reload failed", "path", cfg.profilePath, "error", ev.Err)
			continue
		}
		if err := measure(drv, cfg.override(ev.Profile), cfg.capturePath, out, logger); err != nil {
			logger.Error("measurement failed", "error", err)
		}
	}
	return nil
}
