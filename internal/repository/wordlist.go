package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/wordpass/wordpass-go/internal/model"
)

var (
	ErrWordlistNotFound = errors.New("wordlist not found")
	ErrDuplicateName    = errors.New("wordlist name already exists")
)

// insertChunkSize caps the number of word rows per bulk INSERT statement.
const insertChunkSize = 500

// WordlistRepository handles wordlist persistence operations.
type WordlistRepository struct {
	db *sql.DB
}

// NewWordlistRepository creates a new WordlistRepository.
func NewWordlistRepository(db *sql.DB) *WordlistRepository {
	return &WordlistRepository{db: db}
}

// selectWordlist is the shared SELECT with the word count computed inline.
const selectWordlist = `SELECT w.id, w.public_id, w.user_id, w.name,
	(SELECT COUNT(*) FROM wordlist_words ww WHERE ww.wordlist_id = w.id),
	w.created_at, w.updated_at
	FROM wordlists w`

// Create inserts a wordlist row and its words in one transaction, and sets
// the generated ID on the wordlist struct.
func (r *WordlistRepository) Create(ctx context.Context, wl *model.Wordlist, words []model.WordlistWord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO wordlists (public_id, user_id, name) VALUES (?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, wl.PublicID, wl.UserID, wl.Name)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateName
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	if err := insertWordsTx(ctx, tx, id, words); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	wl.ID = id
	wl.WordCount = len(words)
	return nil
}

// GetByPublicID retrieves a user's wordlist by its public UUID.
func (r *WordlistRepository) GetByPublicID(ctx context.Context, userID int64, publicID string) (*model.Wordlist, error) {
	query := selectWordlist + ` WHERE w.user_id = ? AND w.public_id = ?`

	wl := &model.Wordlist{}
	err := r.db.QueryRowContext(ctx, query, userID, publicID).Scan(
		&wl.ID, &wl.PublicID, &wl.UserID, &wl.Name,
		&wl.WordCount, &wl.CreatedAt, &wl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWordlistNotFound
		}
		return nil, err
	}

	return wl, nil
}

// ListByUser retrieves all wordlists for a user, ordered by most recently updated.
func (r *WordlistRepository) ListByUser(ctx context.Context, userID int64) ([]model.Wordlist, error) {
	query := selectWordlist + ` WHERE w.user_id = ? ORDER BY w.updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []model.Wordlist
	for rows.Next() {
		var wl model.Wordlist
		if err := rows.Scan(
			&wl.ID, &wl.PublicID, &wl.UserID, &wl.Name,
			&wl.WordCount, &wl.CreatedAt, &wl.UpdatedAt,
		); err != nil {
			return nil, err
		}
		lists = append(lists, wl)
	}

	return lists, rows.Err()
}

// Words retrieves a wordlist's words in insertion order.
func (r *WordlistRepository) Words(ctx context.Context, wordlistID int64) ([]model.WordlistWord, error) {
	query := `SELECT word, char_count FROM wordlist_words WHERE wordlist_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, wordlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []model.WordlistWord
	for rows.Next() {
		var w model.WordlistWord
		if err := rows.Scan(&w.Word, &w.Length); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// Replace renames a wordlist and swaps its words wholesale in one transaction.
// The row's updated_at is bumped even when only the words change.
func (r *WordlistRepository) Replace(ctx context.Context, wordlistID int64, name string, words []model.WordlistWord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `UPDATE wordlists SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`

	if _, err := tx.ExecContext(ctx, query, name, wordlistID); err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateName
		}
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM wordlist_words WHERE wordlist_id = ?`, wordlistID); err != nil {
		return err
	}

	if err := insertWordsTx(ctx, tx, wordlistID, words); err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes a user's wordlist; word rows go with it via ON DELETE CASCADE.
func (r *WordlistRepository) Delete(ctx context.Context, userID int64, publicID string) error {
	query := `DELETE FROM wordlists WHERE user_id = ? AND public_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, publicID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrWordlistNotFound
	}

	return nil
}

// insertWordsTx bulk-inserts word rows in chunks within the given transaction.
func insertWordsTx(ctx context.Context, tx *sql.Tx, wordlistID int64, words []model.WordlistWord) error {
	for start := 0; start < len(words); start += insertChunkSize {
		chunk := words[start:min(start+insertChunkSize, len(words))]

		query := `INSERT INTO wordlist_words (wordlist_id, word, char_count) VALUES ` + valuesClause(len(chunk))
		args := make([]any, 0, len(chunk)*3)
		for _, w := range chunk {
			args = append(args, wordlistID, w.Word, w.Length)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	return nil
}

// valuesClause returns n comma-separated "(?, ?, ?)" placeholder groups.
func valuesClause(n int) string {
	return strings.TrimSuffix(strings.Repeat("(?, ?, ?),", n), ",")
}
