package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists the single layout document as a JSON file at a fixed path.
// Saves replace the whole document; concurrent saves are last-write-wins.
type Store struct {
	path string
}

// NewStore creates a store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save replaces the stored document. The write goes through a temp file and
// rename so a crashed save never leaves a half-written document behind.
func (s *Store) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "layout-*.json")
	if err != nil {
		return fmt.Errorf("create temp layout: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write layout: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close layout: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace layout: %w", err)
	}
	return nil
}

// Load returns the stored document, or nil if none was ever saved or the
// stored file is unparseable. Callers fall back to Default in either case.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read layout: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		// corrupt document, renderer and designer use defaults
		return nil, nil
	}
	return &doc, nil
}
