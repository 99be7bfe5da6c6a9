package ports

import "context"

// Console is the operator's line-oriented channel.
type Console interface {
	// Printf writes a formatted message to the operator.
	Printf(format string, args ...any)

	// ReadLine shows prompt and reads one line without its terminator.
	// Returns io.EOF once the channel is closed.
	ReadLine(ctx context.Context, prompt string) (string, error)
}
