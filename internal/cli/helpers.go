package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/nsutil/internal/logging"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the prompts on Stdout).
func createLogger(debug bool, runID string) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug).With("run_id", runID)
	}
	return logging.NewNop()
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// colorProfile picks the listing colors for w. Plain output and anything that
// is not a terminal get termenv.Ascii.
func colorProfile(w io.Writer, plain bool) termenv.Profile {
	if plain || !isTerminal(w) {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}
