// Musea - Art Discovery and Journaling
// Copyright 2026 Musea Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/museadev/musea

// Package journal stores the user's saved paintings, tags, and journal
// entries. It shares the catalog's DuckDB database and assumes a single
// profile: there is no per-user scoping.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/museadev/musea/internal/models"
)

// ErrAlreadyFavorite is returned when saving a painting that is already a
// favorite. Callers treat it as a conflict, not a failure.
var ErrAlreadyFavorite = errors.New("painting is already a favorite")

// ErrNotFound is returned for operations on a missing favorite or entry.
var ErrNotFound = errors.New("not found")

// Store provides favorites, tags, and journal entry persistence.
// It is safe for concurrent use.
type Store struct {
	conn   *sql.DB
	logger zerolog.Logger
}

// New creates the journal store over an existing database connection,
// initializing its tables.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(conn *sql.DB, logger zerolog.Logger) (*Store, error) {
	s := &Store{
		conn:   conn,
		logger: logger.With().Str("component", "journal").Logger(),
	}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS favorites (
			id            UUID PRIMARY KEY,
			external_id   TEXT NOT NULL,
			museum        TEXT NOT NULL,
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
			created_at    TIMESTAMP NOT NULL DEFAULT current_timestamp,
			UNIQUE (external_id, museum)
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id   UUID PRIMARY KEY,
			name TEXT UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS favorite_tags (
			favorite_id UUID NOT NULL,
			tag_id      UUID NOT NULL,
			PRIMARY KEY (favorite_id, tag_id)
		)`,
		`CREATE TABLE IF NOT EXISTS journal_entries (
			id          UUID PRIMARY KEY,
			favorite_id UUID NOT NULL,
			entry_text  TEXT NOT NULL,
			created_at  TIMESTAMP NOT NULL DEFAULT current_timestamp,
			updated_at  TIMESTAMP NOT NULL DEFAULT current_timestamp
		)`,
	}

	for _, query := range queries {
		if _, err := s.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}

// AddFavorite saves a painting snapshot and returns the new favorite's ID.
// Saving an already-saved painting returns the existing ID with
// ErrAlreadyFavorite.
func (s *Store) AddFavorite(ctx context.Context, p *models.Painting) (string, error) {
	if p.Museum == "" || p.ExternalID == "" {
		return "", fmt.Errorf("painting identity is required")
	}

	var existing string
	err := s.conn.QueryRowContext(ctx,
		`SELECT id FROM favorites WHERE external_id = ? AND museum = ?`,
		p.ExternalID, p.Museum).Scan(&existing)
	switch {
	case err == nil:
		return existing, ErrAlreadyFavorite
	case !errors.Is(err, sql.ErrNoRows):
		return "", fmt.Errorf("failed to check existing favorite: %w", err)
	}

	meta := "{}"
	if len(p.Metadata) > 0 {
		raw, err := json.Marshal(p.Metadata)
		if err != nil {
			return "", fmt.Errorf("failed to encode metadata: %w", err)
		}
		meta = string(raw)
	}

	id := uuid.NewString()
	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO favorites (
			id, external_id, museum, museum_name, title, artist, date_display,
			medium, dimensions, description, image_url, thumbnail_url,
			museum_url, metadata
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, p.ExternalID, p.Museum, p.MuseumName, p.Title, p.Artist,
		p.DateDisplay, p.Medium, p.Dimensions, p.Description, p.ImageURL,
		p.ThumbURL, p.MuseumURL, meta)
	if err != nil {
		return "", fmt.Errorf("failed to insert favorite: %w", err)
	}

	s.logger.Info().Str("favorite_id", id).Str("painting", p.Key()).Msg("favorite added")
	return id, nil
}

// RemoveFavorite deletes a favorite and everything hanging off it.
func (s *Store) RemoveFavorite(ctx context.Context, id string) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM favorites WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM favorite_tags WHERE favorite_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete favorite tags: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM journal_entries WHERE favorite_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete journal entries: %w", err)
	}

	return tx.Commit()
}

const favoriteColumns = `id, external_id, museum, museum_name, title, artist,
	date_display, medium, dimensions, description, image_url, thumbnail_url,
	museum_url, metadata, created_at`

// GetFavorite fetches one favorite with its tags and journal entries.
// Returns ErrNotFound when absent.
func (s *Store) GetFavorite(ctx context.Context, id string) (*models.Favorite, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+favoriteColumns+` FROM favorites WHERE id = ?`, id)

	fav, err := scanFavorite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get favorite %s: %w", id, err)
	}

	if fav.Tags, err = s.tagsFor(ctx, id); err != nil {
		return nil, err
	}
	if fav.Entries, err = s.Entries(ctx, id); err != nil {
		return nil, err
	}
	return fav, nil
}

// GetFavoriteByPainting looks a favorite up by painting identity, used to
// mark already-saved paintings in search results. Returns ErrNotFound when
// the painting is not saved.
func (s *Store) GetFavoriteByPainting(ctx context.Context, museum, externalID string) (*models.Favorite, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+favoriteColumns+` FROM favorites WHERE museum = ? AND external_id = ?`,
		museum, externalID)

	fav, err := scanFavorite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up favorite %s:%s: %w", museum, externalID, err)
	}

	if fav.Tags, err = s.tagsFor(ctx, fav.ID); err != nil {
		return nil, err
	}
	return fav, nil
}

// ListFavorites returns favorites newest-first, optionally filtered by
// artist substring, museum, or tag.
func (s *Store) ListFavorites(ctx context.Context, filter models.FavoriteFilter) ([]models.Favorite, error) {
	query := `SELECT ` + prefixColumns("f", favoriteColumns) + ` FROM favorites f`
	var conditions []string
	var params []any

	if filter.Tag != "" {
		query += ` JOIN favorite_tags ft ON f.id = ft.favorite_id
			JOIN tags t ON ft.tag_id = t.id`
		conditions = append(conditions, "t.name = ?")
		params = append(params, normalizeTag(filter.Tag))
	}
	if filter.Artist != "" {
		conditions = append(conditions, `f.artist ILIKE ? ESCAPE '\'`)
		params = append(params, "%"+escapeLike(filter.Artist)+"%")
	}
	if filter.Museum != "" {
		conditions = append(conditions, "f.museum = ?")
		params = append(params, filter.Museum)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY f.created_at DESC, f.id"

	rows, err := s.conn.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer func() { _ = rows.Close() }()

	favorites := []models.Favorite{}
	for rows.Next() {
		fav, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		favorites = append(favorites, *fav)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range favorites {
		if favorites[i].Tags, err = s.tagsFor(ctx, favorites[i].ID); err != nil {
			return nil, err
		}
	}
	return favorites, nil
}

// RandomFavorite returns one random favorite for "painting of the day",
// or ErrNotFound when none are saved.
func (s *Store) RandomFavorite(ctx context.Context) (*models.Favorite, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+favoriteColumns+` FROM favorites ORDER BY random() LIMIT 1`)

	fav, err := scanFavorite(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to pick random favorite: %w", err)
	}

	if fav.Tags, err = s.tagsFor(ctx, fav.ID); err != nil {
		return nil, err
	}
	return fav, nil
}

// AddTag attaches a tag to a favorite, creating the tag on first use.
// Tag names are normalized to lowercase. Re-tagging is a no-op.
func (s *Store) AddTag(ctx context.Context, favoriteID, tagName string) error {
	name := normalizeTag(tagName)
	if name == "" {
		return fmt.Errorf("tag name is required")
	}

	var exists string
	err := s.conn.QueryRowContext(ctx, `SELECT id FROM favorites WHERE id = ?`, favoriteID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to check favorite: %w", err)
	}

	var tagID string
	err = s.conn.QueryRowContext(ctx, `SELECT id FROM tags WHERE name = ?`, name).Scan(&tagID)
	if errors.Is(err, sql.ErrNoRows) {
		tagID = uuid.NewString()
		if _, err := s.conn.ExecContext(ctx,
			`INSERT INTO tags (id, name) VALUES (?, ?)`, tagID, name); err != nil {
			return fmt.Errorf("failed to create tag %q: %w", name, err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to look up tag %q: %w", name, err)
	}

	_, err = s.conn.ExecContext(ctx,
		`INSERT INTO favorite_tags (favorite_id, tag_id) VALUES (?, ?)
		 ON CONFLICT (favorite_id, tag_id) DO NOTHING`,
		favoriteID, tagID)
	if err != nil {
		return fmt.Errorf("failed to attach tag %q: %w", name, err)
	}
	return nil
}

// RemoveTag detaches a tag from a favorite. Returns ErrNotFound when the
// tag was not attached.
func (s *Store) RemoveTag(ctx context.Context, favoriteID, tagName string) error {
	res, err := s.conn.ExecContext(ctx, `
		DELETE FROM favorite_tags
		WHERE favorite_id = ? AND tag_id = (SELECT id FROM tags WHERE name = ?)`,
		favoriteID, normalizeTag(tagName))
	if err != nil {
		return fmt.Errorf("failed to remove tag: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read remove result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Tags returns all tags in use, most-used first. Tags with no favorites
// attached are omitted.
func (s *Store) Tags(ctx context.Context) ([]models.Tag, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT t.name, COUNT(ft.favorite_id) AS uses
		FROM tags t
		JOIN favorite_tags ft ON t.id = ft.tag_id
		GROUP BY t.name
		ORDER BY uses DESC, t.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := []models.Tag{}
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.Name, &tag.Count); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

// AddEntry appends a journal entry to a favorite and returns its ID.
func (s *Store) AddEntry(ctx context.Context, favoriteID, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("entry text is required")
	}

	var exists string
	err := s.conn.QueryRowContext(ctx, `SELECT id FROM favorites WHERE id = ?`, favoriteID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to check favorite: %w", err)
	}

	id := uuid.NewString()
	_, err = s.conn.ExecContext(ctx,
		`INSERT INTO journal_entries (id, favorite_id, entry_text) VALUES (?, ?, ?)`,
		id, favoriteID, text)
	if err != nil {
		return "", fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return id, nil
}

// UpdateEntry replaces an entry's text and bumps its updated timestamp.
func (s *Store) UpdateEntry(ctx context.Context, entryID, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("entry text is required")
	}

	res, err := s.conn.ExecContext(ctx, `
		UPDATE journal_entries
		SET entry_text = ?, updated_at = current_timestamp
		WHERE id = ?`, text, entryID)
	if err != nil {
		return fmt.Errorf("failed to update journal entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteEntry removes a journal entry.
func (s *Store) DeleteEntry(ctx context.Context, entryID string) error {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = ?`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Entries returns a favorite's journal entries newest-first.
func (s *Store) Entries(ctx context.Context, favoriteID string) ([]models.JournalEntry, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, favorite_id, entry_text, created_at, updated_at
		FROM journal_entries
		WHERE favorite_id = ?
		ORDER BY created_at DESC, id`, favoriteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(&e.ID, &e.FavoriteID, &e.Text, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) tagsFor(ctx context.Context, favoriteID string) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT t.name FROM tags t
		JOIN favorite_tags ft ON t.id = ft.tag_id
		WHERE ft.favorite_id = ?
		ORDER BY t.name`, favoriteID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tags for favorite: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tags := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan tag name: %w", err)
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFavorite(row rowScanner) (*models.Favorite, error) {
	var fav models.Favorite
	var p models.Painting
	var meta string

	err := row.Scan(&fav.ID, &p.ExternalID, &p.Museum, &p.MuseumName, &p.Title,
		&p.Artist, &p.DateDisplay, &p.Medium, &p.Dimensions, &p.Description,
		&p.ImageURL, &p.ThumbURL, &p.MuseumURL, &meta, &fav.CreatedAt)
	if err != nil {
		return nil, err
	}

	if meta != "" && meta != "{}" {
		if err := json.Unmarshal([]byte(meta), &p.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode favorite metadata: %w", err)
		}
	}

	fav.Painting = p
	fav.Tags = []string{}
	return &fav, nil
}

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, part := range parts {
		parts[i] = alias + "." + strings.TrimSpace(part)
	}
	return strings.Join(parts, ", ")
}

func normalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
