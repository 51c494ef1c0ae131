package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresStore implements Store on a single jsonb table. One table holds
// every collection; the collection name is a discriminator column, matching
// the schemaless layout the catalog was designed around.
type postgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) Store {
	return &postgresStore{pool: pool}
}

const schema = `
CREATE TABLE IF NOT EXISTS documents (
    collection  text        NOT NULL,
    id          uuid        NOT NULL,
    doc         jsonb       NOT NULL,
    created_at  timestamptz NOT NULL DEFAULT now(),
    updated_at  timestamptz NOT NULL DEFAULT now(),
    PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection);
`

// EnsureSchema creates the documents table if it does not exist yet.
// Called once at startup by the container.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure document schema: %w", err)
	}
	return nil
}

func (s *postgresStore) FindByID(ctx context.Context, collection string, id uuid.UUID) (*Document, error) {
	query := `SELECT id, doc FROM documents WHERE collection = $1 AND id = $2`

	var d Document
	err := s.pool.QueryRow(ctx, query, collection, id).Scan(&d.ID, &d.Data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document by id: %w", err)
	}

	return &d, nil
}

func (s *postgresStore) Find(ctx context.Context, collection string, filter Filter, opts ...FindOption) ([]Document, error) {
	var cfg findConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	query, args := buildFindQuery(collection, filter, cfg)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Data); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return docs, nil
}

func (s *postgresStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	query, args := buildCountQuery(collection, filter)

	var count int64
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}

	return count, nil
}

func (s *postgresStore) Insert(ctx context.Context, collection string, doc any) (*Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	query := `
        INSERT INTO documents (collection, id, doc)
        VALUES ($1, $2, $3)
        RETURNING id, doc
    `

	var d Document
	err = s.pool.QueryRow(ctx, query, collection, uuid.New(), data).Scan(&d.ID, &d.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	return &d, nil
}

func (s *postgresStore) UpdateByID(ctx context.Context, collection string, id uuid.UUID, doc any) (*Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	query := `
        UPDATE documents
        SET doc = $3, updated_at = now()
        WHERE collection = $1 AND id = $2
        RETURNING id, doc
    `

	var d Document
	err = s.pool.QueryRow(ctx, query, collection, id, data).Scan(&d.ID, &d.Data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	return &d, nil
}

func (s *postgresStore) DeleteByID(ctx context.Context, collection string, id uuid.UUID) error {
	query := `DELETE FROM documents WHERE collection = $1 AND id = $2`

	// Deleting an absent document is deliberately not an error.
	if _, err := s.pool.Exec(ctx, query, collection, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return nil
}

// buildFindQuery assembles the SELECT for Find. Filter keys are applied in
// sorted order so the generated SQL is deterministic.
func buildFindQuery(collection string, filter Filter, cfg findConfig) (string, []any) {
	var b strings.Builder
	b.WriteString(`SELECT id, doc FROM documents WHERE collection = $1`)

	args := []any{collection}
	args = appendFilter(&b, filter, args)

	if cfg.sortBy != "" {
		fmt.Fprintf(&b, ` ORDER BY doc->>$%d ASC`, len(args)+1)
		args = append(args, cfg.sortBy)
	}

	return b.String(), args
}

func buildCountQuery(collection string, filter Filter) (string, []any) {
	var b strings.Builder
	b.WriteString(`SELECT COUNT(*) FROM documents WHERE collection = $1`)

	args := []any{collection}
	args = appendFilter(&b, filter, args)

	return b.String(), args
}

func appendFilter(b *strings.Builder, filter Filter, args []any) []any {
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(b, ` AND doc->>$%d = $%d`, len(args)+1, len(args)+2)
		args = append(args, k, filter[k])
	}

	return args
}
