package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/nsutil/internal/logging"
	"github.com/aretw0/nsutil/internal/presentation/tui"
	"github.com/aretw0/nsutil/pkg/domain"
	"github.com/aretw0/nsutil/pkg/ports"
	"github.com/aretw0/nsutil/pkg/reconcile"
	"github.com/aretw0/nsutil/pkg/runner"
	"github.com/aretw0/nsutil/pkg/source"
	"github.com/muesli/termenv"
)

const (
	promptPrefix    = "Enter a prefix to change (or 'ctrl-d' to end): "
	promptNewPrefix = "Enter a new prefix for the URI (or 'ctrl-d' to cancel): %s\n> "
)

// Driver owns the interaction loop of a run.
type Driver struct {
	registry   ports.Registry
	console    ports.Console
	reconciler *reconcile.Reconciler
	parser     *source.Parser
	logger     *slog.Logger
	renderer   runner.ContentRenderer
	profile    termenv.Profile
	hooks      []reconcile.OutcomeHook
}

// Option configures the Driver.
type Option func(*Driver)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithFormat selects how bulk sources are parsed.
func WithFormat(format source.Format) Option {
	return func(d *Driver) {
		d.parser = source.NewParser(format)
	}
}

// WithRenderer renders the import summary as markdown through fn.
// Without a renderer the summary is printed as plain text.
func WithRenderer(fn runner.ContentRenderer) Option {
	return func(d *Driver) {
		d.renderer = fn
	}
}

// WithColorProfile sets the color profile of the listing. Defaults to termenv.Ascii.
func WithColorProfile(p termenv.Profile) Option {
	return func(d *Driver) {
		d.profile = p
	}
}

// WithOutcomeHook observes every reconciliation step.
func WithOutcomeHook(hook reconcile.OutcomeHook) Option {
	return func(d *Driver) {
		d.hooks = append(d.hooks, hook)
	}
}

// New creates a Driver over registry and console.
func New(registry ports.Registry, console ports.Console, opts ...Option) *Driver {
	d := &Driver{
		registry: registry,
		console:  console,
		parser:   source.NewParser(source.FormatAuto),
		logger:   logging.NewNop(),
		profile:  termenv.Ascii,
	}
	for _, opt := range opts {
		opt(d)
	}

	ropts := []reconcile.Option{reconcile.WithLogger(d.logger)}
	for _, hook := range d.hooks {
		ropts = append(ropts, reconcile.WithOutcomeHook(hook))
	}
	d.reconciler = reconcile.New(registry, console, ropts...)
	return d
}

// Run imports sourcePath (if set) and then enters the REPL.
// A source that cannot be read does not stop the REPL.
func (d *Driver) Run(ctx context.Context, sourcePath string) error {
	if sourcePath != "" {
		if _, err := d.Import(ctx, sourcePath); err != nil {
			if !errors.Is(err, source.ErrSourceNotFound) && !errors.Is(err, source.ErrSourceUnreadable) {
				return err
			}
			d.logger.Warn("Bulk import skipped", "source", sourcePath, "err", err)
		}
	}
	return d.REPL(ctx)
}

// Import reconciles every entry of the bulk source, in file order.
func (d *Driver) Import(ctx context.Context, path string) (*ImportReport, error) {
	res, err := d.parser.Load(path)
	if err != nil {
		if errors.Is(err, source.ErrSourceNotFound) {
			d.console.Printf("Source not found: %s\n", path)
		} else {
			d.console.Printf("Could not read %s: %v\n", path, err)
		}
		return nil, err
	}
	d.logger.Info("Importing prefixes", "source", path, "format", string(res.Format), "entries", len(res.Entries))

	for _, skew := range res.Skipped {
		d.console.Printf("Ignoring malformed entry (%v)\n", skew)
	}

	table, err := d.registry.Mappings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read prefix table: %w", err)
	}
	before := table.Clone()

	report := &ImportReport{Source: path, Format: res.Format, Malformed: len(res.Skipped)}
	for _, c := range res.Entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		out := d.reconciler.Reconcile(ctx, table, c, domain.ModeImport)
		table.Apply(out)
		report.Record(out)
	}
	report.Diff = domain.Diff(before, table)

	d.printReport(report)
	return report, nil
}

func (d *Driver) printReport(r *ImportReport) {
	if d.renderer != nil {
		out, err := d.renderer(r.Markdown())
		if err == nil {
			d.console.Printf("%s", out)
			return
		}
		d.logger.Warn("Failed to render report", "err", err)
	}
	d.console.Printf("%s", r.Text())
}

// List prints the current table once.
func (d *Driver) List(ctx context.Context) error {
	table, err := d.registry.Mappings(ctx)
	if err != nil {
		return fmt.Errorf("failed to read prefix table: %w", err)
	}
	d.console.Printf("%s", tui.Listing(table, d.profile))
	return nil
}

// REPL lets the operator register an existing URI under a new prefix, one per
// turn, until the console reaches end-of-input.
func (d *Driver) REPL(ctx context.Context) error {
	for {
		table, err := d.registry.Mappings(ctx)
		if err != nil {
			return fmt.Errorf("failed to read prefix table: %w", err)
		}
		d.console.Printf("%s", tui.Listing(table, d.profile))

		prefix, err := d.console.ReadLine(ctx, promptPrefix)
		if err != nil {
			return d.endOfInput(err)
		}

		uri, ok := table.Lookup(prefix)
		if !ok {
			d.console.Printf("Invalid prefix: %s\n", prefix)
			continue
		}

		newPrefix, err := d.console.ReadLine(ctx, fmt.Sprintf(promptNewPrefix, uri))
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			d.console.Printf("\n")
			d.logger.Debug("Rename abandoned", "prefix", prefix)
			continue
		}

		d.reconciler.Reconcile(ctx, table, domain.Candidate{
			Prefix: newPrefix,
			URI:    uri,
			From:   prefix,
		}, domain.ModeRename)
	}
}

func (d *Driver) endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		d.console.Printf("\n")
		d.logger.Debug("Input closed, ending session")
		return nil
	}
	return err
}
