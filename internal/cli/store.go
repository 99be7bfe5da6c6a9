package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/nsutil/pkg/adapters/file"
	"github.com/aretw0/nsutil/pkg/adapters/loam"
	"github.com/aretw0/nsutil/pkg/adapters/memory"
	"github.com/aretw0/nsutil/pkg/adapters/redis"
	"github.com/aretw0/nsutil/pkg/adapters/sqlite"
	"github.com/aretw0/nsutil/pkg/ports"
)

// OpenStore opens the namespace store addressed by url:
//
//	memory:
//	file:<path>
//	sqlite:<path>
//	redis://[:password@]host:port/db  (also rediss://)
//	loam:<dir>
//
// A lease is only supported by redis; asking for one elsewhere is an error.
func OpenStore(ctx context.Context, url string, lease time.Duration) (ports.NamespaceStore, error) {
	scheme, rest, ok := strings.Cut(url, ":")
	if !ok {
		return nil, fmt.Errorf("invalid registry %q: missing scheme", url)
	}
	scheme = strings.ToLower(scheme)

	if lease > 0 && scheme != "redis" && scheme != "rediss" {
		return nil, fmt.Errorf("invalid registry %q: lease is only supported by redis registries", url)
	}

	switch scheme {
	case "memory":
		return memory.NewStore(), nil
	case "file":
		return file.NewStore(rest), nil
	case "sqlite":
		if rest == "" {
			return nil, fmt.Errorf("invalid registry %q: missing database path", url)
		}
		return sqlite.Open(ctx, rest)
	case "redis", "rediss":
		var opts []redis.Option
		if lease > 0 {
			opts = append(opts, redis.WithLease(lease))
		}
		return redis.Open(ctx, url, opts...)
	case "loam":
		if rest == "" {
			return nil, fmt.Errorf("invalid registry %q: missing directory", url)
		}
		return loam.Open(rest)
	default:
		return nil, fmt.Errorf("invalid registry %q: unsupported scheme %q", url, scheme)
	}
}
