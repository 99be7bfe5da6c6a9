package domain

import "sort"

// Table is a snapshot of the prefix -> URI bindings held by a registry.
type Table map[string]string

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// Prefixes returns the bound prefixes in listing order (lexical).
func (t Table) Prefixes() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the URI bound to prefix, if any.
func (t Table) Lookup(prefix string) (string, bool) {
	uri, ok := t[prefix]
	return uri, ok
}

// Apply folds a registered outcome into the snapshot so later
// classifications in the same pass see it.
func (t Table) Apply(o Outcome) {
	if o.Result == ResultRegistered {
		t[o.Candidate.Prefix] = o.Candidate.URI
	}
}

// Candidate is an incoming prefix definition to reconcile.
type Candidate struct {
	Prefix string
	URI    string

	// From is the prefix being renamed (REPL only).
	From string
	// Line is the 1-based position in the bulk source (import only).
	Line int
}

// Classification is the derived relation of a candidate to the table.
type Classification int

const (
	ClassNew Classification = iota
	ClassIdentical
	ClassConflict
)

func (c Classification) String() string {
	switch c {
	case ClassNew:
		return "new"
	case ClassIdentical:
		return "identical"
	case ClassConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Classify compares a candidate against the table.
// It returns the classification and the URI currently bound to the prefix.
func Classify(t Table, c Candidate) (Classification, string) {
	existing, ok := t[c.Prefix]
	switch {
	case !ok:
		return ClassNew, ""
	case existing == c.URI:
		return ClassIdentical, existing
	default:
		return ClassConflict, existing
	}
}

// Mode selects the reconciliation rules.
type Mode int

const (
	// ModeImport classifies and confirms each candidate.
	ModeImport Mode = iota
	// ModeRename registers an existing URI under a new prefix without confirmation.
	ModeRename
)

func (m Mode) String() string {
	if m == ModeRename {
		return "rename"
	}
	return "import"
}

// Result is what a reconciliation step did.
type Result int

const (
	ResultUnchanged Result = iota
	ResultRegistered
	ResultSkipped
	ResultRejected
)

func (r Result) String() string {
	switch r {
	case ResultUnchanged:
		return "unchanged"
	case ResultRegistered:
		return "registered"
	case ResultSkipped:
		return "skipped"
	case ResultRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome reports one reconciliation step.
type Outcome struct {
	Candidate Candidate
	Mode      Mode
	Class     Classification
	// Previous is the URI bound to the prefix before the step ("" if none).
	Previous string
	Result   Result
	// Err is set when Result is ResultRejected.
	Err error
}
