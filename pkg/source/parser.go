package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/nsutil/pkg/domain"
	"gopkg.in/yaml.v3"
)

// ErrSourceNotFound is returned when the bulk source cannot be opened.
var ErrSourceNotFound = errors.New("source not found")

// ErrSourceUnreadable is returned when the source as a whole cannot be decoded
// (invalid YAML, or a document that is not a mapping).
var ErrSourceUnreadable = errors.New("source unreadable")

// Format selects how a bulk source is read.
type Format string

const (
	// FormatAuto picks structured for .yaml/.yml/.json files and for any
	// document that parses as a YAML mapping; otherwise line-delimited.
	FormatAuto Format = "auto"
	// FormatStructured is a YAML/JSON mapping of prefix to URI.
	FormatStructured Format = "structured"
	// FormatLines is one "prefix:uri" per line.
	FormatLines Format = "lines"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatStructured, FormatLines:
		return f, nil
	default:
		return "", fmt.Errorf("unknown source format %q (expected auto, structured or lines)", s)
	}
}

// ParseError reports a single entry that could not be read.
// It never aborts the parse.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e ParseError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Result is the outcome of parsing a bulk source.
type Result struct {
	Format  Format
	Entries []domain.Candidate
	Skipped []ParseError
}

// Parser converts raw bulk sources into ordered candidates.
type Parser struct {
	Format Format
}

// NewParser creates a new parser instance.
func NewParser(format Format) *Parser {
	if format == "" {
		format = FormatAuto
	}
	return &Parser{Format: format}
}

// Load reads and parses the file at path.
func (p *Parser) Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, path, err)
	}
	return p.Parse(path, data)
}

// Parse decodes data. name is only used to guess the format.
func (p *Parser) Parse(name string, data []byte) (*Result, error) {
	switch p.Format {
	case FormatStructured:
		return structured(data)
	case FormatLines:
		return parseLines(data), nil
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return structured(data)
	}
	if res, err := parseStructured(data); err == nil && len(res.Entries) > 0 {
		return res, nil
	}
	return parseLines(data), nil
}

func structured(data []byte) (*Result, error) {
	res, err := parseStructured(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	return res, nil
}

var errNotMapping = errors.New("structured source must be a mapping of prefix to URI")

func parseStructured(data []byte) (*Result, error) {
	res := &Result{Format: FormatStructured}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse structured source: %w", err)
	}
	// Empty document.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return res, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errNotMapping
	}

	// Walk the node instead of decoding into a map: document order matters.
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]

		if key.Kind != yaml.ScalarNode {
			res.Skipped = append(res.Skipped, ParseError{Line: key.Line, Reason: "prefix must be a string"})
			continue
		}
		if val.Kind != yaml.ScalarNode {
			res.Skipped = append(res.Skipped, ParseError{Line: key.Line, Text: key.Value, Reason: "URI must be a string"})
			continue
		}
		if val.Tag == "!!null" || strings.TrimSpace(val.Value) == "" {
			res.Skipped = append(res.Skipped, ParseError{Line: key.Line, Text: key.Value, Reason: "missing URI"})
			continue
		}

		res.Entries = append(res.Entries, domain.Candidate{
			Prefix: strings.TrimSpace(key.Value),
			URI:    strings.TrimSpace(val.Value),
			Line:   key.Line,
		})
	}
	return res, nil
}

func parseLines(data []byte) *Result {
	res := &Result{Format: FormatLines}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		prefix, uri, found := strings.Cut(line, ":")
		if !found {
			res.Skipped = append(res.Skipped, ParseError{Line: lineNo, Text: raw, Reason: "missing ':' separator"})
			continue
		}
		prefix = strings.TrimSpace(prefix)
		uri = strings.TrimSpace(uri)
		if prefix == "" || uri == "" {
			res.Skipped = append(res.Skipped, ParseError{Line: lineNo, Text: raw, Reason: "empty prefix or URI"})
			continue
		}

		res.Entries = append(res.Entries, domain.Candidate{Prefix: prefix, URI: uri, Line: lineNo})
	}
	if err := scanner.Err(); err != nil {
		res.Skipped = append(res.Skipped, ParseError{Line: lineNo + 1, Reason: err.Error()})
	}
	return res
}
