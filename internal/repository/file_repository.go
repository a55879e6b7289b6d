package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/knaito/naraigoto-api/internal/models"
)

// FileRepository stores the document as a single pretty-printed JSON file,
// interchangeable with the flat file the legacy app reads and writes.
type FileRepository struct {
	path string
}

// NewFileRepository constructs a repository backed by the given file path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load reads and decodes the document file. A missing file maps to
// ErrNoDocument rather than an error.
func (r *FileRepository) Load(_ context.Context) (*models.Document, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("read document file: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document file: %w", err)
	}
	return &doc, nil
}

// Save writes the document to a temporary file in the same directory and
// renames it over the target, so a crash mid-write never truncates the
// stored document.
func (r *FileRepository) Save(_ context.Context, doc *models.Document) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp document file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp document file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp document file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace document file: %w", err)
	}
	return nil
}
