package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/nsutil/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when no path is configured.
var DefaultPath = filepath.Join(".nsutil", "namespaces.yaml")

// Store implements ports.NamespaceStore as a single YAML document
// mapping each prefix to its URI. The same shape is accepted as a bulk source.
type Store struct {
	Path string
	mu   sync.Mutex
}

// NewStore creates a file store at path. The file is created on the first Put.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// Load reads the document. A missing file is an empty table.
func (s *Store) Load(ctx context.Context) (domain.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *Store) read() (domain.Table, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Table{}, nil
		}
		return nil, fmt.Errorf("failed to read namespace file: %w", err)
	}

	table := domain.Table{}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse namespace file %s: %w", s.Path, err)
	}
	if table == nil {
		table = domain.Table{}
	}
	return table, nil
}

// Put rewrites the document with the new binding.
// The write goes through a temp file and a rename so a crash never leaves a torn file.
func (s *Store) Put(ctx context.Context, prefix, uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.read()
	if err != nil {
		return err
	}
	table[prefix] = uri

	data, err := yaml.Marshal(map[string]string(table))
	if err != nil {
		return fmt.Errorf("failed to marshal namespaces: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure namespace directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".namespaces-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write namespace file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write namespace file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("failed to commit namespace file: %w", err)
	}
	return nil
}

// Close is a no-op; every Put is already on disk.
func (s *Store) Close() error {
	return nil
}
