// Package store persists extracted resources in PostgreSQL so downstream
// translation tooling can pick them up.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"locstrings/internal/resource"
)

const schema = `
CREATE TABLE IF NOT EXISTS resources (
	project    TEXT NOT NULL,
	locale     TEXT NOT NULL,
	key        TEXT NOT NULL,
	source     TEXT NOT NULL,
	comment    TEXT NOT NULL DEFAULT '',
	datatype   TEXT NOT NULL,
	path       TEXT NOT NULL,
	state      TEXT NOT NULL,
	idx        INTEGER NOT NULL,
	PRIMARY KEY (project, locale, key)
)`

const upsertSQL = `
INSERT INTO resources (project, locale, key, source, comment, datatype, path, state, idx)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (project, locale, key) DO UPDATE
SET source = EXCLUDED.source,
    comment = EXCLUDED.comment,
    datatype = EXCLUDED.datatype,
    path = EXCLUDED.path,
    state = EXCLUDED.state,
    idx = EXCLUDED.idx`

const selectByProjectSQL = `
SELECT project, locale, key, source, comment, datatype, path, state, idx
FROM resources
WHERE project = $1
ORDER BY path, idx`

// Store handles persistence of extracted resources.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a store on an existing connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the resources table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure resources schema: %w", err)
	}
	return nil
}

// Upsert inserts or updates resources, deduplicating by (project, locale,
// key). It returns the number of rows written.
func (s *Store) Upsert(ctx context.Context, resources []resource.String) (int, error) {
	written := 0
	for _, r := range resources {
		tag, err := s.pool.Exec(ctx, upsertSQL,
			r.Project, r.SourceLocale, r.Key, r.Source,
			r.Comment, r.Datatype, r.Path, r.State, r.Index)
		if err != nil {
			return written, fmt.Errorf("upsert resource %q: %w", r.Key, err)
		}
		written += int(tag.RowsAffected())
	}

	log.Info().Int("written", written).Msg("Upserted resources")
	return written, nil
}

// GetByProject retrieves all stored resources for a project, ordered by
// file path and discovery index.
func (s *Store) GetByProject(ctx context.Context, project string) ([]resource.String, error) {
	rows, err := s.pool.Query(ctx, selectByProjectSQL, project)
	if err != nil {
		return nil, fmt.Errorf("query resources: %w", err)
	}
	defer rows.Close()

	var out []resource.String
	for rows.Next() {
		r := resource.String{Type: resource.TypeString, AutoKey: true}
		if err := rows.Scan(&r.Project, &r.SourceLocale, &r.Key, &r.Source,
			&r.Comment, &r.Datatype, &r.Path, &r.State, &r.Index); err != nil {
			return nil, fmt.Errorf("scan resource row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resource rows: %w", err)
	}

	return out, nil
}
