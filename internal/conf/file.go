package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marden/nodeglass/internal/catalog"
)

// LoadFile parses the file at path into a Model. A missing file yields an
// empty model so a new configuration can be edited and saved; any other read
// failure is returned.
func LoadFile(path string, cat *catalog.Catalog) (*Model, []Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewEmptyModel(cat), nil, nil
		}
		return nil, nil, fmt.Errorf("read config: %w", err)
	}

	doc, issues := Parse(string(data))
	return NewModel(doc, cat), issues, nil
}

// SaveFile serializes doc and writes it to path atomically: the text goes to
// a temporary file in the destination directory, is flushed and closed, then
// renamed into place. An interrupted save never leaves a truncated
// configuration behind.
func SaveFile(path string, doc *Document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(Serialize(doc)); err != nil {
		tmp.Close()
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod config: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}
