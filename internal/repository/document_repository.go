package repository

import (
	"context"
	"errors"

	"github.com/knaito/naraigoto-api/internal/models"
)

// ErrNoDocument signals that no document has been persisted yet. Callers fall
// back to the seed document.
var ErrNoDocument = errors.New("no document stored")

// DocumentRepository persists the single planning document. Implementations
// replace the whole document atomically on save.
type DocumentRepository interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}
