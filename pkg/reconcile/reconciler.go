package reconcile

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/aretw0/nsutil/internal/logging"
	"github.com/aretw0/nsutil/pkg/domain"
	"github.com/aretw0/nsutil/pkg/ports"
	"github.com/aretw0/nsutil/pkg/runner"
)

// OutcomeHook observes every reconciliation step (metrics, reports).
type OutcomeHook func(ctx context.Context, o domain.Outcome)

// Reconciler decides, for one candidate against a table snapshot,
// whether to write it to the registry, and reports the result.
type Reconciler struct {
	registry ports.Registry
	console  ports.Console
	logger   *slog.Logger
	hooks    []OutcomeHook
}

// Option configures the Reconciler.
type Option func(*Reconciler)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// WithOutcomeHook registers a hook called after every step.
func WithOutcomeHook(hook OutcomeHook) Option {
	return func(r *Reconciler) {
		r.hooks = append(r.hooks, hook)
	}
}

// New creates a Reconciler writing to registry and talking through console.
func New(registry ports.Registry, console ports.Console, opts ...Option) *Reconciler {
	r := &Reconciler{
		registry: registry,
		console:  console,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile runs one step. table is read, never modified; it issues at most
// one Register call. Failures are reported in the Outcome, never returned.
func (r *Reconciler) Reconcile(ctx context.Context, table domain.Table, c domain.Candidate, mode domain.Mode) domain.Outcome {
	var out domain.Outcome
	if mode == domain.ModeRename {
		out = r.rename(ctx, table, c)
	} else {
		out = r.importEntry(ctx, table, c)
	}

	r.logger.Debug("Reconciled",
		"mode", out.Mode.String(),
		"prefix", c.Prefix,
		"uri", c.URI,
		"class", out.Class.String(),
		"result", out.Result.String(),
		"err", out.Err,
	)
	for _, hook := range r.hooks {
		hook(ctx, out)
	}
	return out
}

func (r *Reconciler) importEntry(ctx context.Context, table domain.Table, c domain.Candidate) domain.Outcome {
	class, prev := domain.Classify(table, c)
	out := domain.Outcome{Candidate: c, Mode: domain.ModeImport, Class: class, Previous: prev}

	if class == domain.ClassIdentical {
		r.console.Printf("Prefix %s is already bound to %s: no change\n", c.Prefix, c.URI)
		out.Result = domain.ResultUnchanged
		return out
	}

	if !r.confirm(ctx, importPrompt(class, c, prev)) {
		r.console.Printf("Skipped prefix %s\n", c.Prefix)
		out.Result = domain.ResultSkipped
		return out
	}

	if err := r.registry.Register(ctx, c.Prefix, c.URI); err != nil {
		r.console.Printf("Could not register prefix (%s): %v\n", c.Prefix, err)
		out.Result = domain.ResultRejected
		out.Err = err
		return out
	}

	r.console.Printf("Registered prefix %s: %s\n", c.Prefix, c.URI)
	out.Result = domain.ResultRegistered
	return out
}

func (r *Reconciler) rename(ctx context.Context, table domain.Table, c domain.Candidate) domain.Outcome {
	class, prev := domain.Classify(table, c)
	out := domain.Outcome{Candidate: c, Mode: domain.ModeRename, Class: class, Previous: prev}

	if err := r.registry.Register(ctx, c.Prefix, c.URI); err != nil {
		r.console.Printf("Could not change prefix (%s): %v\n", c.From, err)
		out.Result = domain.ResultRejected
		out.Err = err
		return out
	}

	if class == domain.ClassConflict {
		r.console.Printf("Prefix %s now bound to %s (was %s); %s unchanged\n", c.Prefix, c.URI, prev, c.From)
	} else {
		r.console.Printf("Prefix %s now bound to %s; %s unchanged\n", c.Prefix, c.URI, c.From)
	}
	out.Result = domain.ResultRegistered
	return out
}

func importPrompt(class domain.Classification, c domain.Candidate, prev string) string {
	if class == domain.ClassConflict {
		return "Prefix " + c.Prefix + " is currently bound to " + prev + "\n" +
			"Replace it with " + c.URI + "? [Y/n] "
	}
	return "Register new prefix " + c.Prefix + " for " + c.URI + "? [Y/n] "
}

// confirm treats a closed or failing channel as a decline.
func (r *Reconciler) confirm(ctx context.Context, prompt string) bool {
	answer, err := r.console.ReadLine(ctx, prompt)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.logger.Warn("Confirmation read failed", "err", err)
		}
		r.console.Printf("\n")
		return false
	}
	return runner.IsAffirmative(answer)
}
