package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/nsutil/pkg/domain"
	"github.com/aretw0/nsutil/pkg/source"
)

// ValidateSource checks a parsed bulk source without touching any registry.
// It reports malformed entries, entries the policy would reject and prefixes
// bound to different URIs within the same source.
func ValidateSource(res *source.Result, policy domain.Policy) error {
	var errors []string

	for _, skew := range res.Skipped {
		errors = append(errors, skew.Error())
	}

	seen := make(map[string]domain.Candidate)
	for _, c := range res.Entries {
		if err := policy.Check(c.Prefix, c.URI); err != nil {
			errors = append(errors, fmt.Sprintf("line %d: %v", c.Line, err))
			continue
		}

		if first, ok := seen[c.Prefix]; ok {
			if first.URI != c.URI {
				errors = append(errors, fmt.Sprintf("line %d: prefix '%s' already defined on line %d as %s", c.Line, c.Prefix, first.Line, first.URI))
			}
			continue
		}
		seen[c.Prefix] = c
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}

	return nil
}
