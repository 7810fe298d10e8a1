// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

// Package catalog persists the normalized painting catalog in DuckDB and
// implements the search/random primitives the discovery engine aggregates
// over. The harvester writes into it; the API and engine read from it.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/museadev/musea/internal/config"
	"github.com/museadev/musea/internal/models"
)

// Store wraps the DuckDB connection holding the painting catalog.
// It is safe for concurrent use; database/sql pools connections internally.
type Store struct {
	conn   *sql.DB
	logger zerolog.Logger

	upserts atomic.Int64
	queries atomic.Int64
}

// Open creates the catalog store and initializes its schema. An empty path
// opens an in-memory database, used by tests and by ephemeral deployments.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(cfg *config.DatabaseConfig, logger zerolog.Logger) (*Store, error) {
	connStr := ""
	if cfg.Path != "" {
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}

		threads := cfg.Threads
		if threads <= 0 {
			threads = runtime.NumCPU()
		}
		connStr = fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s",
			cfg.Path, threads, cfg.MaxMemory)
	}

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	conn.SetMaxOpenConns(runtime.NumCPU())
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	s := &Store{
		conn:   conn,
		logger: logger.With().Str("component", "catalog").Logger(),
	}

	if err := s.initSchema(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize catalog schema: %w", err)
	}

	s.logger.Info().Str("path", cfg.Path).Msg("catalog store opened")
	return s, nil
}

// Conn exposes the underlying connection for stores sharing the database
// file, such as the journal store.
func (s *Store) Conn() *sql.DB { return s.conn }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Ping verifies the database connection, for readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

func (s *Store) initSchema() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS paintings (
			museum        TEXT NOT NULL,
			external_id   TEXT NOT NULL,
			museum_name   TEXT NOT NULL DEFAULT '',
			title         TEXT NOT NULL DEFAULT '',
			artist        TEXT NOT NULL DEFAULT '',
			date_display  TEXT NOT NULL DEFAULT '',
			medium        TEXT NOT NULL DEFAULT '',
			dimensions    TEXT NOT NULL DEFAULT '',
			description   TEXT NOT NULL DEFAULT '',
			image_url     TEXT NOT NULL DEFAULT '',
			thumbnail_url TEXT NOT NULL DEFAULT '',
			museum_url    TEXT NOT NULL DEFAULT '',
			metadata      TEXT NOT NULL DEFAULT '{}',
			harvested_at  TIMESTAMP NOT NULL DEFAULT current_timestamp,
			PRIMARY KEY (museum, external_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_paintings_artist ON paintings(artist)`,
		`CREATE INDEX IF NOT EXISTS idx_paintings_title ON paintings(title)`,
	}

	for _, query := range queries {
		if _, err := s.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}

// Upsert inserts or refreshes a batch of paintings, keyed by
// (museum, external_id). It returns the number of rows written.
func (s *Store) Upsert(ctx context.Context, paintings []models.Painting) (int, error) {
	if len(paintings) == 0 {
		return 0, nil
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin upsert transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO paintings (
			museum, external_id, museum_name, title, artist, date_display,
			medium, dimensions, description, image_url, thumbnail_url,
			museum_url, metadata, harvested_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, current_timestamp)
		ON CONFLICT (museum, external_id) DO UPDATE SET
			museum_name = excluded.museum_name,
			title = excluded.title,
			artist = excluded.artist,
			date_display = excluded.date_display,
			medium = excluded.medium,
			dimensions = excluded.dimensions,
			description = excluded.description,
			image_url = excluded.image_url,
			thumbnail_url = excluded.thumbnail_url,
			museum_url = excluded.museum_url,
			metadata = excluded.metadata,
			harvested_at = current_timestamp`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	written := 0
	for i := range paintings {
		p := &paintings[i]
		if p.Museum == "" || p.ExternalID == "" {
			s.logger.Debug().Str("title", p.Title).Msg("skipping painting without identity")
			continue
		}

		meta := "{}"
		if len(p.Metadata) > 0 {
			raw, err := json.Marshal(p.Metadata)
			if err != nil {
				return written, fmt.Errorf("failed to encode metadata for %s: %w", p.Key(), err)
			}
			meta = string(raw)
		}

		artist := p.Artist
		if artist == "" {
			artist = models.UnknownArtist
		}

		if _, err := stmt.ExecContext(ctx,
			p.Museum, p.ExternalID, p.MuseumName, p.Title, artist, p.DateDisplay,
			p.Medium, p.Dimensions, p.Description, p.ImageURL, p.ThumbURL,
			p.MuseumURL, meta,
		); err != nil {
			return written, fmt.Errorf("failed to upsert %s: %w", p.Key(), err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit upsert: %w", err)
	}

	s.upserts.Add(int64(written))
	return written, nil
}

const paintingColumns = `museum, external_id, museum_name, title, artist,
	date_display, medium, dimensions, description, image_url, thumbnail_url,
	museum_url, metadata`

// Search performs a case-insensitive substring search over title, artist,
// and description. Results are ordered by (museum, external_id) for a stable
// baseline; callers impose their own presentation ordering.
func (s *Store) Search(ctx context.Context, query string, page, limit int) (models.SearchResult, error) {
	s.queries.Add(1)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"
	where := `WHERE title ILIKE ? ESCAPE '\'
		OR artist ILIKE ? ESCAPE '\'
		OR description ILIKE ? ESCAPE '\'`

	var total int
	countQuery := "SELECT COUNT(*) FROM paintings " + where
	if err := s.conn.QueryRowContext(ctx, countQuery, pattern, pattern, pattern).Scan(&total); err != nil {
		return models.SearchResult{}, fmt.Errorf("failed to count search results: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx,
		"SELECT "+paintingColumns+" FROM paintings "+where+
			" ORDER BY museum, external_id LIMIT ? OFFSET ?",
		pattern, pattern, pattern, limit, (page-1)*limit)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("failed to search paintings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	paintings, err := scanPaintings(rows)
	if err != nil {
		return models.SearchResult{}, err
	}

	return models.SearchResult{Paintings: paintings, Total: total, Page: page}, nil
}

// Random returns one uniformly random painting, or nil when the catalog is
// empty.
func (s *Store) Random(ctx context.Context) (*models.Painting, error) {
	row := s.conn.QueryRowContext(ctx,
		"SELECT "+paintingColumns+" FROM paintings ORDER BY random() LIMIT 1")

	p, err := scanPainting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pick random painting: %w", err)
	}
	return p, nil
}

// Get fetches one painting by identity, or nil when absent.
func (s *Store) Get(ctx context.Context, museum, externalID string) (*models.Painting, error) {
	row := s.conn.QueryRowContext(ctx,
		"SELECT "+paintingColumns+" FROM paintings WHERE museum = ? AND external_id = ?",
		museum, externalID)

	p, err := scanPainting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get painting %s:%s: %w", museum, externalID, err)
	}
	return p, nil
}

// Stats summarizes catalog contents for the stats endpoint.
func (s *Store) Stats(ctx context.Context) (models.CollectionStats, error) {
	var stats models.CollectionStats

	err := s.conn.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT artist), COUNT(DISTINCT museum) FROM paintings`).
		Scan(&stats.Paintings, &stats.Artists, &stats.Museums)
	if err != nil {
		return stats, fmt.Errorf("failed to compute catalog stats: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx,
		`SELECT museum, COUNT(*) FROM paintings GROUP BY museum ORDER BY museum`)
	if err != nil {
		return stats, fmt.Errorf("failed to compute per-museum stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	stats.PerMuseum = make(map[string]int)
	for rows.Next() {
		var museum string
		var count int
		if err := rows.Scan(&museum, &count); err != nil {
			return stats, fmt.Errorf("failed to scan museum stat row: %w", err)
		}
		stats.PerMuseum[museum] = count
	}
	return stats, rows.Err()
}

// Counters reports store activity for the stats endpoint.
func (s *Store) Counters() (upserts, queries int64) {
	return s.upserts.Load(), s.queries.Load()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPainting(row rowScanner) (*models.Painting, error) {
	var p models.Painting
	var meta string

	err := row.Scan(&p.Museum, &p.ExternalID, &p.MuseumName, &p.Title, &p.Artist,
		&p.DateDisplay, &p.Medium, &p.Dimensions, &p.Description, &p.ImageURL,
		&p.ThumbURL, &p.MuseumURL, &meta)
	if err != nil {
		return nil, err
	}

	if meta != "" && meta != "{}" {
		if err := json.Unmarshal([]byte(meta), &p.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata for %s: %w", p.Key(), err)
		}
	}
	return &p, nil
}

func scanPaintings(rows *sql.Rows) ([]models.Painting, error) {
	paintings := []models.Painting{}
	for rows.Next() {
		p, err := scanPainting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan painting row: %w", err)
		}
		paintings = append(paintings, *p)
	}
	return paintings, rows.Err()
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func closeQuietly(c interface{ Close() error }) {
	_ = c.Close()
}
