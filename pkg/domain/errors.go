package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedPrefix is returned when a prefix is not a valid XML NCName.
var ErrMalformedPrefix = errors.New("malformed prefix")

// ErrMalformedURI is returned when a namespace URI is empty or not absolute.
var ErrMalformedURI = errors.New("malformed namespace URI")

// ErrReservedPrefix is returned for prefixes the registry keeps for itself (xml*).
var ErrReservedPrefix = errors.New("reserved prefix")

// ErrBindingForbidden is returned when a write would move a built-in binding.
var ErrBindingForbidden = errors.New("binding forbidden")

// RegistryError describes why the registry refused a Register call.
type RegistryError struct {
	Prefix string
	URI    string
	Reason string
	Err    error
}

func (e *RegistryError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Reason)
	}
	return e.Err.Error()
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

func reject(prefix, uri string, err error, format string, args ...any) *RegistryError {
	return &RegistryError{
		Prefix: prefix,
		URI:    uri,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
