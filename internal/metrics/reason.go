package metrics

import (
	"errors"

	"github.com/aretw0/nsutil/pkg/domain"
)

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMalformedPrefix):
		return "malformed_prefix"
	case errors.Is(err, domain.ErrMalformedURI):
		return "malformed_uri"
	case errors.Is(err, domain.ErrReservedPrefix):
		return "reserved_prefix"
	case errors.Is(err, domain.ErrBindingForbidden):
		return "binding_forbidden"
	default:
		return "store"
	}
}
