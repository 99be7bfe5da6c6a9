package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/nsutil/internal/config"
	"github.com/aretw0/nsutil/internal/metrics"
	"github.com/aretw0/nsutil/internal/presentation/tui"
	"github.com/aretw0/nsutil/pkg/persistence/middleware"
	"github.com/aretw0/nsutil/pkg/ports"
	"github.com/aretw0/nsutil/pkg/registry"
	"github.com/aretw0/nsutil/pkg/runner"
	"github.com/aretw0/nsutil/pkg/session"
	"github.com/google/uuid"
)

// RunOptions contains everything a command needs besides the config.
type RunOptions struct {
	Config  *config.Config
	Version string
	// Source is the optional bulk import file.
	Source string

	Stdin  io.Reader
	Stdout io.Writer
}

func (o *RunOptions) streams() (io.Reader, io.Writer) {
	in, out := o.Stdin, o.Stdout
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return in, out
}

// Execute runs the optional import followed by the REPL.
func Execute(ctx context.Context, opts RunOptions) error {
	return withDriver(ctx, opts, true, func(d *session.Driver) error {
		return d.Run(ctx, opts.Source)
	})
}

// List prints the current table.
func List(ctx context.Context, opts RunOptions) error {
	return withDriver(ctx, opts, false, func(d *session.Driver) error {
		return d.List(ctx)
	})
}

// withDriver opens the store, builds the driver and guarantees the store is
// closed and metrics are written on every exit path.
func withDriver(ctx context.Context, opts RunOptions, interactive bool, fn func(*session.Driver) error) (err error) {
	cfg := opts.Config
	if cfg == nil {
		return errors.New("missing configuration")
	}
	runID := uuid.NewString()
	logger := createLogger(cfg.Debug, runID)
	in, out := opts.streams()

	store, err := OpenStore(ctx, cfg.Registry, cfg.Lease)
	if err != nil {
		return fmt.Errorf("failed to open registry: %w", err)
	}
	logger.Info("Registry opened", "registry", cfg.Registry, "dry_run", cfg.DryRun)
	if cfg.DryRun {
		store = middleware.Chain(store, middleware.NewDryRunMiddleware())
		defer func() {
			if pending := middleware.Pending(store); len(pending) > 0 {
				fmt.Fprintf(out, "Dry run: %d binding(s) not written\n", len(pending))
			}
		}()
	}
	defer closeStore(store, logger, &err)

	recorder := metrics.New()
	if cfg.MetricsFile != "" {
		defer func() {
			if werr := recorder.WriteFile(cfg.MetricsFile); werr != nil {
				logger.Error("Failed to write metrics", "error", werr)
				if err == nil {
					err = werr
				}
			}
		}()
	}

	reg := registry.New(store, registry.WithLogger(logger))
	console := runner.NewTextConsole(in, out, runner.WithEcho(cfg.Echo))

	profile := colorProfile(out, cfg.Plain)
	dopts := []session.Option{
		session.WithLogger(logger),
		session.WithFormat(cfg.SourceFormat()),
		session.WithColorProfile(profile),
		session.WithOutcomeHook(recorder.Observe),
	}
	tty := isTerminal(out)
	if tty && !cfg.Plain {
		dopts = append(dopts, session.WithRenderer(tui.NewRenderer()))
	}
	if interactive && tty && isTerminal(in) {
		tui.PrintBanner(out, profile, opts.Version)
	}

	return fn(session.New(reg, console, dopts...))
}

func closeStore(store ports.NamespaceStore, logger *slog.Logger, err *error) {
	if cerr := store.Close(); cerr != nil {
		logger.Error("Failed to close registry", "error", cerr)
		if *err == nil {
			*err = fmt.Errorf("failed to close registry: %w", cerr)
		}
	}
}
