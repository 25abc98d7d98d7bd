// Package sqlite provides persistent storage for favorites and
// follow-up conversations.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/TonyLeary/nms-companion/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/TonyLeary/nms-companion/internal/core/domain"
	"github.com/TonyLeary/nms-companion/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides the favorite
// and conversation store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.nms-companion/data/companion.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".nms-companion", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "companion.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// FavoriteStore returns a FavoriteStore interface backed by this store.
func (s *Store) FavoriteStore() driven.FavoriteStore {
	return &favoriteStore{store: s}
}

// ConversationStore returns a ConversationStore interface backed by this store.
func (s *Store) ConversationStore() driven.ConversationStore {
	return &conversationStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Favorite Store ====================

// favoriteStore implements driven.FavoriteStore.
type favoriteStore struct {
	store *Store
}

var _ driven.FavoriteStore = (*favoriteStore)(nil)

// Save stores or overwrites a card.
func (s *favoriteStore) Save(ctx context.Context, card domain.AnswerCard) error {
	refs, err := json.Marshal(card.References)
	if err != nil {
		return fmt.Errorf("marshalling references: %w", err)
	}
	notes, err := json.Marshal(card.CommunityNotes)
	if err != nil {
		return fmt.Errorf("marshalling notes: %w", err)
	}
	faq, err := json.Marshal(card.FAQ)
	if err != nil {
		return fmt.Errorf("marshalling faq: %w", err)
	}
	storyboard, err := json.Marshal(card.Storyboard)
	if err != nil {
		return fmt.Errorf("marshalling storyboard: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO favorites (source, card_id, title, summary, details, refs, notes, faq, storyboard, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source, card_id) DO UPDATE SET
			title = excluded.title,
			summary = excluded.summary,
			details = excluded.details,
			refs = excluded.refs,
			notes = excluded.notes,
			faq = excluded.faq,
			storyboard = excluded.storyboard,
			saved_at = excluded.saved_at
	`, string(card.Source), card.ID, card.Title, card.Summary, card.Details,
		string(refs), string(notes), string(faq), string(storyboard), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving favorite: %w", err)
	}
	return nil
}

// Get retrieves a saved card by key.
func (s *favoriteStore) Get(ctx context.Context, source domain.Source, id string) (*domain.AnswerCard, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT source, card_id, title, summary, details, refs, notes, faq, storyboard
		FROM favorites WHERE source = ? AND card_id = ?
	`, string(source), id)

	card, err := scanCard(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting favorite: %w", err)
	}
	return card, nil
}

// Delete removes a saved card by key.
func (s *favoriteStore) Delete(ctx context.Context, source domain.Source, id string) error {
	res, err := s.store.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE source = ? AND card_id = ?", string(source), id)
	if err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting favorite: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all saved cards, most recently saved first.
func (s *favoriteStore) List(ctx context.Context) ([]domain.AnswerCard, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT source, card_id, title, summary, details, refs, notes, faq, storyboard
		FROM favorites ORDER BY saved_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	defer rows.Close()

	var cards []domain.AnswerCard
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning favorite: %w", err)
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCard(row rowScanner) (*domain.AnswerCard, error) {
	var card domain.AnswerCard
	var source, refs, notes, faq, storyboard string

	err := row.Scan(&source, &card.ID, &card.Title, &card.Summary, &card.Details,
		&refs, &notes, &faq, &storyboard)
	if err != nil {
		return nil, err
	}

	card.Source = domain.Source(source)
	if err := json.Unmarshal([]byte(refs), &card.References); err != nil {
		return nil, fmt.Errorf("unmarshalling references: %w", err)
	}
	if err := json.Unmarshal([]byte(notes), &card.CommunityNotes); err != nil {
		return nil, fmt.Errorf("unmarshalling notes: %w", err)
	}
	if err := json.Unmarshal([]byte(faq), &card.FAQ); err != nil {
		return nil, fmt.Errorf("unmarshalling faq: %w", err)
	}
	if err := json.Unmarshal([]byte(storyboard), &card.Storyboard); err != nil {
		return nil, fmt.Errorf("unmarshalling storyboard: %w", err)
	}
	return &card, nil
}

// ==================== Conversation Store ====================

// conversationStore implements driven.ConversationStore.
type conversationStore struct {
	store *Store
}

var _ driven.ConversationStore = (*conversationStore)(nil)

// Append adds one turn to a card's conversation.
func (s *conversationStore) Append(ctx context.Context, cardID string, turn domain.ConversationTurn) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO conversation_turns (id, card_id, role, body, created_at, seq)
		VALUES (?, ?, ?, ?, ?, (
			SELECT COALESCE(MAX(seq), 0) + 1 FROM conversation_turns WHERE card_id = ?
		))
	`, uuid.New().String(), cardID, string(turn.Role), turn.Text, time.Now().UTC(), cardID)
	if err != nil {
		return fmt.Errorf("appending turn: %w", err)
	}
	return nil
}

// History returns a card's turns in append order.
func (s *conversationStore) History(ctx context.Context, cardID string) ([]domain.ConversationTurn, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT role, body FROM conversation_turns
		WHERE card_id = ? ORDER BY seq ASC
	`, cardID)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	defer rows.Close()

	var turns []domain.ConversationTurn
	for rows.Next() {
		var role, body string
		if err := rows.Scan(&role, &body); err != nil {
			return nil, fmt.Errorf("scanning turn: %w", err)
		}
		turns = append(turns, domain.ConversationTurn{Role: domain.Role(role), Text: body})
	}
	return turns, rows.Err()
}
