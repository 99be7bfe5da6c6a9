package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dcURI = "http://purl.org/dc/elements/1.1/"

func TestClassify(t *testing.T) {
	table := Table{"dc": dcURI}

	tests := []struct {
		name      string
		candidate Candidate
		wantClass Classification
		wantPrev  string
	}{
		{"absent prefix is new", Candidate{Prefix: "foo", URI: "http://example.org/foo"}, ClassNew, ""},
		{"same uri is identical", Candidate{Prefix: "dc", URI: dcURI}, ClassIdentical, dcURI},
		{"different uri conflicts", Candidate{Prefix: "dc", URI: "http://purl.org/dc/terms/"}, ClassConflict, dcURI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, prev := Classify(table, tt.candidate)
			assert.Equal(t, tt.wantClass, class)
			assert.Equal(t, tt.wantPrev, prev)
		})
	}
}

func TestTable_ApplyOnlyRegistered(t *testing.T) {
	table := Table{}
	c := Candidate{Prefix: "dc", URI: dcURI}

	table.Apply(Outcome{Candidate: c, Result: ResultSkipped})
	assert.Empty(t, table)

	table.Apply(Outcome{Candidate: c, Result: ResultRegistered})
	assert.Equal(t, Table{"dc": dcURI}, table)
}

func TestTable_PrefixesSorted(t *testing.T) {
	table := Table{"foo": "urn:foo", "dc": dcURI, "bar": "urn:bar"}
	assert.Equal(t, []string{"bar", "dc", "foo"}, table.Prefixes())

	clone := table.Clone()
	clone["baz"] = "urn:baz"
	assert.NotContains(t, table, "baz")
}

func TestPolicy_Check(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name    string
		prefix  string
		uri     string
		wantErr error
	}{
		{"plain binding", "dc", dcURI, nil},
		{"urn binding", "isbn", "urn:isbn:", nil},
		{"dotted prefix", "ex.v2", "http://example.org/v2#", nil},
		{"empty prefix", "", dcURI, ErrMalformedPrefix},
		{"digit first", "1dc", dcURI, ErrMalformedPrefix},
		{"colon in prefix", "dc:x", dcURI, ErrMalformedPrefix},
		{"space in prefix", "d c", dcURI, ErrMalformedPrefix},
		{"xml prefix", "xmlfoo", dcURI, ErrReservedPrefix},
		{"upper XML prefix", "XMLns2", dcURI, ErrReservedPrefix},
		{"empty uri", "dc", "", ErrMalformedURI},
		{"relative uri", "dc", "dc/elements", ErrMalformedURI},
		{"builtin rebound", "jcr", "http://example.org/jcr", ErrBindingForbidden},
		{"builtin same uri", "jcr", "http://www.jcp.org/jcr/1.0", nil},
		{"builtin uri aliased", "myjcr", "http://www.jcp.org/jcr/1.0", ErrBindingForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Check(tt.prefix, tt.uri)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)

			var regErr *RegistryError
			require.True(t, errors.As(err, &regErr))
			assert.Equal(t, tt.prefix, regErr.Prefix)
			assert.NotEmpty(t, regErr.Reason)
		})
	}
}
