// Package fs serves binary document templates from a local directory.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"billforge/internal/domain"
	"billforge/internal/port"
)

type templateStore struct {
	dir string
}

// NewTemplateStore creates a TemplateStore reading from dir.
func NewTemplateStore(dir string) port.TemplateStore {
	return &templateStore{dir: dir}
}

func (s *templateStore) Load(_ context.Context, name string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, name)
		}
		return nil, fmt.Errorf("fs template store: reading %s: %w", name, err)
	}
	return raw, nil
}
