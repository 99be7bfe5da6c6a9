package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// ContentRenderer transforms content before it is written (e.g. markdown to ANSI).
type ContentRenderer func(string) (string, error)

// TextConsole implements ports.Console over a reader/writer pair.
type TextConsole struct {
	Reader *bufio.Reader
	Writer io.Writer
	// Echo writes every line read back to Writer. Useful when input is
	// piped, so transcripts show the answers next to the prompts.
	Echo bool
}

// ConsoleOption defines configuration for TextConsole.
type ConsoleOption func(*TextConsole)

// WithEcho enables input echo.
func WithEcho(echo bool) ConsoleOption {
	return func(c *TextConsole) {
		c.Echo = echo
	}
}

// NewTextConsole creates a console for standard text IO.
func NewTextConsole(r io.Reader, w io.Writer, opts ...ConsoleOption) *TextConsole {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	c := &TextConsole{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Printf writes to the console.
func (c *TextConsole) Printf(format string, args ...any) {
	fmt.Fprintf(c.Writer, format, args...)
}

// ReadLine writes prompt and returns the next trimmed, sanitized line.
// A final line without a terminator is still returned; io.EOF follows on the next call.
func (c *TextConsole) ReadLine(ctx context.Context, prompt string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if prompt != "" {
			fmt.Fprint(c.Writer, prompt)
		}

		text, err := c.Reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			return "", err
		}
		if c.Echo {
			fmt.Fprintln(c.Writer, strings.TrimRight(text, "\r\n"))
		}

		clean, serr := SanitizeLine(strings.TrimRight(text, "\r\n"))
		if serr != nil {
			fmt.Fprintf(c.Writer, "Error: %v. Please try again.\n", serr)
			if err == io.EOF {
				return "", io.EOF
			}
			continue
		}
		return strings.TrimSpace(clean), nil
	}
}
