package runner

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// IsAffirmative normalizes an operator answer. Blank accepts (the default);
// y, yes, true and 1 accept in any case; anything else declines.
func IsAffirmative(answer string) bool {
	switch folder.String(strings.TrimSpace(answer)) {
	case "", "y", "yes", "true", "1":
		return true
	default:
		return false
	}
}
