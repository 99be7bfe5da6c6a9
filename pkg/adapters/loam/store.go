package loam

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/aretw0/nsutil/pkg/domain"
)

// Store implements ports.NamespaceStore on a Loam repository,
// one Markdown document (frontmatter only) per prefix.
type Store struct {
	Repo  core.Repository
	Typed *loam.TypedRepository[NamespaceMetadata]
}

// Open initializes a Loam repository at dir.
func Open(dir string, opts ...loam.Option) (*Store, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	if len(opts) == 0 {
		opts = []loam.Option{loam.WithVersioning(false)}
	}
	repo, err := loam.Init(absPath, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(repo), nil
}

// New wraps an existing repository.
func New(repo core.Repository) *Store {
	return &Store{
		Repo:  repo,
		Typed: loam.NewTypedRepository[NamespaceMetadata](repo),
	}
}

func docID(prefix string) string {
	return prefix + ".md"
}

// Load lists the repository. Documents without a prefix in their
// frontmatter are not namespace documents and are ignored.
func (s *Store) Load(ctx context.Context) (domain.Table, error) {
	docs, err := s.Typed.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	table := domain.Table{}
	for _, doc := range docs {
		if doc.Data.Prefix == "" {
			continue
		}
		table[doc.Data.Prefix] = doc.Data.URI
	}
	return table, nil
}

// Put saves the namespace document; the change reason becomes the commit
// message when the repository is versioned.
func (s *Store) Put(ctx context.Context, prefix, uri string) error {
	ctx = context.WithValue(ctx, core.ChangeReasonKey, fmt.Sprintf("register namespace %s", prefix))

	err := s.Repo.Save(ctx, core.Document{
		ID: docID(prefix),
		Metadata: core.Metadata{
			"prefix": prefix,
			"uri":    uri,
		},
	})
	if err != nil {
		return fmt.Errorf("loam save failed for %s: %w", prefix, err)
	}
	return nil
}

// Close is a no-op; Loam holds no open handles between calls.
func (s *Store) Close() error {
	return nil
}
