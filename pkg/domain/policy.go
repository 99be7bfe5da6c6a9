package domain

import (
	"errors"
	"net/url"
	"strings"
	"unicode"
)

// DefaultBuiltins are the bindings a content repository ships with.
var DefaultBuiltins = map[string]string{
	"jcr": "http://www.jcp.org/jcr/1.0",
	"nt":  "http://www.jcp.org/jcr/nt/1.0",
	"mix": "http://www.jcp.org/jcr/mix/1.0",
	"sv":  "http://www.jcp.org/jcr/sv/1.0",
}

// Policy holds the rules a registry enforces on every write.
type Policy struct {
	// Builtins are bindings that can neither be rebound nor aliased away.
	Builtins map[string]string
}

// DefaultPolicy returns the policy used when none is configured.
func DefaultPolicy() Policy {
	builtins := make(map[string]string, len(DefaultBuiltins))
	for k, v := range DefaultBuiltins {
		builtins[k] = v
	}
	return Policy{Builtins: builtins}
}

// Check validates a prospective binding. A nil error means the registry may store it.
func (p Policy) Check(prefix, uri string) error {
	if !IsNCName(prefix) {
		return reject(prefix, uri, ErrMalformedPrefix, "%q is not a valid XML name", prefix)
	}
	if strings.HasPrefix(strings.ToLower(prefix), "xml") {
		return reject(prefix, uri, ErrReservedPrefix, "prefixes beginning with 'xml' are reserved")
	}
	if err := checkURI(uri); err != nil {
		return reject(prefix, uri, ErrMalformedURI, "%q: %v", uri, err)
	}

	if bound, ok := p.Builtins[prefix]; ok && bound != uri {
		return reject(prefix, uri, ErrBindingForbidden, "prefix %q is built in and bound to %s", prefix, bound)
	}
	for builtin, bound := range p.Builtins {
		if bound == uri && builtin != prefix {
			return reject(prefix, uri, ErrBindingForbidden, "%s is already bound to built-in prefix %q", uri, builtin)
		}
	}
	return nil
}

func checkURI(uri string) error {
	if strings.TrimSpace(uri) == "" {
		return errEmpty
	}
	u, err := url.Parse(uri)
	if err != nil {
		return err
	}
	if !u.IsAbs() {
		return errNotAbsolute
	}
	return nil
}

var (
	errEmpty       = errors.New("empty URI")
	errNotAbsolute = errors.New("URI has no scheme")
)

// IsNCName reports whether s is a non-colonized XML name.
func IsNCName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if r != '_' && !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
		case r == '_', r == '-', r == '.':
		case unicode.Is(unicode.Mn, r), unicode.Is(unicode.Mc, r):
		default:
			return false
		}
	}
	return true
}
