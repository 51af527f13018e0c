// Package store implements persistence over SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/visualgenius/server/internal/domain"
	"github.com/visualgenius/server/internal/logger"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	// Enable foreign keys so session deletes cascade to cards and utterances.
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := s.seedDemoCollections(); err != nil {
		logger.Logger.Warn().Err(err).Msg("failed to seed demo collections")
		// Don't fail startup for this
	}

	return s, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			parent_id TEXT NOT NULL,
			child_id TEXT NOT NULL,
			owner_user_id TEXT NOT NULL,
			topic TEXT,
			status TEXT NOT NULL DEFAULT 'active',
			notes TEXT,
			started_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			ended_at DATETIME,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_owner ON sessions(owner_user_id, started_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_status ON sessions(status)`,
		`CREATE TABLE IF NOT EXISTS cards (
			card_id TEXT PRIMARY KEY,
			session_id TEXT REFERENCES sessions(session_id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT,
			image_url TEXT,
			category TEXT NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cards_session ON cards(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cards_title ON cards(LOWER(title))`,
		`CREATE TABLE IF NOT EXISTS collections (
			collection_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			owner_user_id TEXT NOT NULL,
			is_demo INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_collections_owner ON collections(owner_user_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS collection_slots (
			slot_id TEXT PRIMARY KEY,
			collection_id TEXT NOT NULL REFERENCES collections(collection_id) ON DELETE CASCADE,
			card_id TEXT NOT NULL,
			card_data TEXT NOT NULL,
			position INTEGER NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(collection_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_slots_collection ON collection_slots(collection_id, position)`,
		`CREATE TABLE IF NOT EXISTS utterances (
			utterance_id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL REFERENCES sessions(session_id) ON DELETE CASCADE,
			speaker TEXT NOT NULL,
			card_id TEXT,
			transcript TEXT,
			recording_url TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_utterances_session ON utterances(session_id, created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// --- Sessions ---

// CreateSession creates a new conversation session.
func (s *SQLiteStore) CreateSession(ctx context.Context, session *domain.ConversationSession) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, parent_id, child_id, owner_user_id, topic, status, notes, started_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.ParentID, session.ChildID, session.OwnerUserID,
		nullString(session.Topic), session.Status, nullString(session.Notes),
		session.StartedAt, session.CreatedAt, session.UpdatedAt)
	return err
}

// GetSession retrieves a session by ID.
func (s *SQLiteStore) GetSession(ctx context.Context, sessionID string) (*domain.ConversationSession, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT session_id, parent_id, child_id, owner_user_id, topic, status, notes, started_at, ended_at, created_at, updated_at
		 FROM sessions WHERE session_id = ?`, sessionID)
	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*domain.ConversationSession, error) {
	var session domain.ConversationSession
	var topic, notes sql.NullString
	var endedAt sql.NullTime
	err := row.Scan(&session.ID, &session.ParentID, &session.ChildID, &session.OwnerUserID,
		&topic, &session.Status, &notes, &session.StartedAt, &endedAt, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if topic.Valid {
		session.Topic = topic.String
	}
	if notes.Valid {
		session.Notes = notes.String
	}
	if endedAt.Valid {
		session.EndedAt = &endedAt.Time
	}
	return &session, nil
}

// UpdateSession applies a partial update and returns the updated session.
// Returns (nil, nil) when the session does not exist.
func (s *SQLiteStore) UpdateSession(ctx context.Context, sessionID string, update domain.SessionUpdate) (*domain.ConversationSession, error) {
	var sets []string
	var args []interface{}

	if update.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *update.Status)
	}
	if update.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, nullString(*update.Notes))
	}
	if update.Topic != nil {
		sets = append(sets, "topic = ?")
		args = append(args, nullString(*update.Topic))
	}
	if update.EndedAt != nil {
		sets = append(sets, "ended_at = ?")
		args = append(args, *update.EndedAt)
	}

	if len(sets) == 0 {
		return s.GetSession(ctx, sessionID)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now(), sessionID)

	res, err := s.db.ExecContext(ctx,
		fmt.Sprintf(`UPDATE sessions SET %s WHERE session_id = ?`, strings.Join(sets, ", ")), args...)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return s.GetSession(ctx, sessionID)
}

// ListSessions retrieves sessions owned by a user, newest-started first,
// with card and utterance counts.
func (s *SQLiteStore) ListSessions(ctx context.Context, ownerUserID string, filter domain.SessionFilter) ([]domain.ConversationSession, error) {
	query := `
		SELECT cs.session_id, cs.parent_id, cs.child_id, cs.owner_user_id, cs.topic, cs.status, cs.notes,
		       cs.started_at, cs.ended_at, cs.created_at, cs.updated_at,
		       COUNT(DISTINCT vc.card_id) AS card_count,
		       COUNT(DISTINCT u.utterance_id) AS utterance_count
		FROM sessions cs
		LEFT JOIN cards vc ON cs.session_id = vc.session_id
		LEFT JOIN utterances u ON cs.session_id = u.session_id
		WHERE cs.owner_user_id = ?`
	args := []interface{}{ownerUserID}

	if filter.Status != "" {
		query += ` AND cs.status = ?`
		args = append(args, filter.Status)
	}
	if filter.ChildID != "" {
		query += ` AND cs.child_id = ?`
		args = append(args, filter.ChildID)
	}
	if filter.StartDate != nil {
		query += ` AND cs.started_at >= ?`
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		query += ` AND cs.started_at <= ?`
		args = append(args, *filter.EndDate)
	}

	query += ` GROUP BY cs.session_id ORDER BY cs.started_at DESC`

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
		if filter.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.ConversationSession
	for rows.Next() {
		var session domain.ConversationSession
		var topic, notes sql.NullString
		var endedAt sql.NullTime
		if err := rows.Scan(&session.ID, &session.ParentID, &session.ChildID, &session.OwnerUserID,
			&topic, &session.Status, &notes, &session.StartedAt, &endedAt, &session.CreatedAt, &session.UpdatedAt,
			&session.CardCount, &session.UtteranceCount); err != nil {
			return nil, err
		}
		if topic.Valid {
			session.Topic = topic.String
		}
		if notes.Valid {
			session.Notes = notes.String
		}
		if endedAt.Valid {
			session.EndedAt = &endedAt.Time
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// DeleteSession removes a session. Cards and utterances go with it via
// foreign key cascade.
func (s *SQLiteStore) DeleteSession(ctx context.Context, sessionID string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = ?`, sessionID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// GetStatistics aggregates counts across all sessions owned by a user.
func (s *SQLiteStore) GetStatistics(ctx context.Context, ownerUserID string) (*domain.SessionStatistics, error) {
	var stats domain.SessionStatistics
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT cs.session_id),
		       COUNT(DISTINCT CASE WHEN cs.status = 'active' THEN cs.session_id END),
		       COUNT(DISTINCT CASE WHEN cs.status = 'completed' THEN cs.session_id END),
		       COUNT(DISTINCT vc.card_id),
		       COUNT(DISTINCT u.utterance_id)
		FROM sessions cs
		LEFT JOIN cards vc ON cs.session_id = vc.session_id
		LEFT JOIN utterances u ON cs.session_id = u.session_id
		WHERE cs.owner_user_id = ?`, ownerUserID).
		Scan(&stats.TotalSessions, &stats.ActiveSessions, &stats.CompletedSessions,
			&stats.TotalCards, &stats.TotalUtterances)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// --- Cards ---

// SaveSessionCards upserts cards against a session in one transaction so a
// partially-saved card set is never observable.
func (s *SQLiteStore) SaveSessionCards(ctx context.Context, sessionID string, cards []domain.VisualCard) error {
	if len(cards) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, card := range cards {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO cards (card_id, session_id, title, description, image_url, category, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(card_id) DO UPDATE SET
			   session_id = excluded.session_id,
			   description = excluded.description,
			   image_url = excluded.image_url,
			   category = excluded.category`,
			card.ID, sessionID, card.Title, nullString(card.Description),
			nullString(card.ImageURL), card.Category, card.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindCardsByTitles retrieves previously persisted cards whose titles match
// any of the given titles case-insensitively, newest first.
func (s *SQLiteStore) FindCardsByTitles(ctx context.Context, titles []string) ([]domain.VisualCard, error) {
	if len(titles) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(titles))
	args := make([]interface{}, len(titles))
	for i, title := range titles {
		placeholders[i] = "?"
		args[i] = strings.ToLower(title)
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT card_id, title, description, image_url, category, created_at
		 FROM cards WHERE LOWER(title) IN (%s)
		 ORDER BY created_at DESC`, strings.Join(placeholders, ",")), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []domain.VisualCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

// GetCard retrieves a card by ID.
func (s *SQLiteStore) GetCard(ctx context.Context, cardID string) (*domain.VisualCard, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT card_id, title, description, image_url, category, created_at
		 FROM cards WHERE card_id = ?`, cardID)
	card, err := scanCard(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

func scanCard(row rowScanner) (*domain.VisualCard, error) {
	var card domain.VisualCard
	var description, imageURL sql.NullString
	if err := row.Scan(&card.ID, &card.Title, &description, &imageURL, &card.Category, &card.CreatedAt); err != nil {
		return nil, err
	}
	if description.Valid {
		card.Description = description.String
	}
	if imageURL.Valid {
		card.ImageURL = imageURL.String
	}
	return &card, nil
}

// --- Collections ---

// CreateCollection stores the collection header and its cards as
// position-ordered slots 0..n-1 in one transaction.
func (s *SQLiteStore) CreateCollection(ctx context.Context, collection *domain.CardCollection) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO collections (collection_id, name, owner_user_id, is_demo, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		collection.ID, collection.Name, collection.OwnerUserID, boolInt(collection.Demo),
		collection.CreatedAt, collection.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertSlots(ctx, tx, collection.ID, collection.Cards); err != nil {
		return err
	}

	return tx.Commit()
}

func insertSlots(ctx context.Context, tx *sql.Tx, collectionID string, cards []domain.VisualCard) error {
	for position, card := range cards {
		data, err := json.Marshal(card)
		if err != nil {
			return fmt.Errorf("failed to marshal card %s: %w", card.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO collection_slots (slot_id, collection_id, card_id, card_data, position)
			 VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(), collectionID, card.ID, string(data), position)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListCollections retrieves collections owned by a user, newest first,
// each hydrated with its ordered cards.
func (s *SQLiteStore) ListCollections(ctx context.Context, ownerUserID string) ([]domain.CardCollection, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT collection_id, name, owner_user_id, is_demo, created_at, updated_at
		 FROM collections WHERE owner_user_id = ?
		 ORDER BY created_at DESC`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []domain.CardCollection
	for rows.Next() {
		var c domain.CardCollection
		var isDemo int
		if err := rows.Scan(&c.ID, &c.Name, &c.OwnerUserID, &isDemo, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.Demo = isDemo != 0
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range collections {
		cards, err := s.collectionCards(ctx, collections[i].ID)
		if err != nil {
			return nil, err
		}
		collections[i].Cards = cards
	}
	return collections, nil
}

// GetCollection retrieves a single collection with its ordered cards.
func (s *SQLiteStore) GetCollection(ctx context.Context, collectionID string) (*domain.CardCollection, error) {
	var c domain.CardCollection
	var isDemo int
	err := s.db.QueryRowContext(ctx,
		`SELECT collection_id, name, owner_user_id, is_demo, created_at, updated_at
		 FROM collections WHERE collection_id = ?`, collectionID).
		Scan(&c.ID, &c.Name, &c.OwnerUserID, &isDemo, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Demo = isDemo != 0

	cards, err := s.collectionCards(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	c.Cards = cards
	return &c, nil
}

func (s *SQLiteStore) collectionCards(ctx context.Context, collectionID string) ([]domain.VisualCard, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT card_data FROM collection_slots
		 WHERE collection_id = ? ORDER BY position ASC`, collectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []domain.VisualCard{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var card domain.VisualCard
		if err := json.Unmarshal([]byte(data), &card); err != nil {
			return nil, fmt.Errorf("failed to unmarshal slot card: %w", err)
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// ReplaceCardOrder atomically discards all slots for a collection and
// inserts the supplied cards as a fresh contiguous position sequence.
// Commit-or-rollback: a failure leaves the old ordering intact.
func (s *SQLiteStore) ReplaceCardOrder(ctx context.Context, collectionID string, cards []domain.VisualCard) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM collections WHERE collection_id = ?`, collectionID).Scan(&exists)
	if err != nil {
		return false, err
	}
	if exists == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM collection_slots WHERE collection_id = ?`, collectionID); err != nil {
		return false, err
	}

	if err := insertSlots(ctx, tx, collectionID, cards); err != nil {
		return false, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE collections SET updated_at = ? WHERE collection_id = ?`, time.Now(), collectionID); err != nil {
		return false, err
	}

	return true, tx.Commit()
}

// RenameCollection updates the collection name.
func (s *SQLiteStore) RenameCollection(ctx context.Context, collectionID string, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE collections SET name = ?, updated_at = ? WHERE collection_id = ?`,
		name, time.Now(), collectionID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteCollection removes a collection; its slots go via cascade.
func (s *SQLiteStore) DeleteCollection(ctx context.Context, collectionID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM collections WHERE collection_id = ?`, collectionID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// --- Timeline ---

// CreateEntry appends one timeline entry. Entries are independent inserts;
// display order is determined by created_at, not call order.
func (s *SQLiteStore) CreateEntry(ctx context.Context, entry *domain.TimelineEntry) error {
	var cardID sql.NullString
	if entry.Card != nil {
		cardID = sql.NullString{String: entry.Card.ID, Valid: true}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO utterances (utterance_id, session_id, speaker, card_id, transcript, recording_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.SessionID, entry.Speaker, cardID,
		nullString(entry.Transcript), nullString(entry.RecordingURL), entry.CreatedAt)
	return err
}

// ListTimeline retrieves a session's entries ascending by created_at, each
// hydrated with its referenced card's current data.
func (s *SQLiteStore) ListTimeline(ctx context.Context, sessionID string) ([]domain.TimelineEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.utterance_id, u.speaker, u.transcript, u.recording_url, u.created_at,
		       c.card_id, c.title, c.description, c.image_url, c.category, c.created_at
		FROM utterances u
		LEFT JOIN cards c ON c.card_id = u.card_id
		WHERE u.session_id = ?
		ORDER BY u.created_at ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.TimelineEntry
	for rows.Next() {
		var entry domain.TimelineEntry
		var transcript, recordingURL sql.NullString
		var cardID, cardTitle, cardDescription, cardImageURL, cardCategory sql.NullString
		var cardCreatedAt sql.NullTime
		if err := rows.Scan(&entry.ID, &entry.Speaker, &transcript, &recordingURL, &entry.CreatedAt,
			&cardID, &cardTitle, &cardDescription, &cardImageURL, &cardCategory, &cardCreatedAt); err != nil {
			return nil, err
		}
		entry.SessionID = sessionID
		if transcript.Valid {
			entry.Transcript = transcript.String
		}
		if recordingURL.Valid {
			entry.RecordingURL = recordingURL.String
		}
		if cardID.Valid {
			entry.Card = &domain.VisualCard{
				ID:          cardID.String,
				Title:       cardTitle.String,
				Description: cardDescription.String,
				ImageURL:    cardImageURL.String,
				Category:    domain.CardCategory(cardCategory.String),
				CreatedAt:   cardCreatedAt.Time,
			}
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// ClearTimeline removes all entries for a session in one statement.
func (s *SQLiteStore) ClearTimeline(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM utterances WHERE session_id = ?`, sessionID)
	return err
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
