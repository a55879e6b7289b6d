package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/knaito/naraigoto-api/internal/models"
)

// PostgresRepository stores the document as a single JSONB row. The table
// never holds more than one row; saving replaces it in place.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Load fetches the stored document, mapping an empty table to ErrNoDocument.
func (r *PostgresRepository) Load(ctx context.Context) (*models.Document, error) {
	const query = `SELECT payload FROM planner_documents WHERE id = 1`
	var payload []byte
	if err := r.db.GetContext(ctx, &payload, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("load document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode document payload: %w", err)
	}
	return &doc, nil
}

// Save upserts the single document row.
func (r *PostgresRepository) Save(ctx context.Context, doc *models.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document payload: %w", err)
	}

	const query = `INSERT INTO planner_documents (id, payload, updated_at)
VALUES (1, $1, $2)
ON CONFLICT (id)
DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
