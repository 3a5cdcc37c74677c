package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session outcomes.
const (
	OutcomeSolved    = "solved"
	OutcomeNotFound  = "not_found"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Session represents one recorded solve attempt.
type Session struct {
	SessionID     string
	CreatedAt     time.Time
	ScrambleText  string
	MaxDepth      int
	Outcome       string
	SolutionText  *string
	SolutionDepth *int
	DurationMs    *int64
}

// SessionRepository provides CRUD operations for solve sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create records a solve attempt and returns its ID.
func (r *SessionRepository) Create(s Session) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, created_at, scramble_text, max_depth, outcome, solution_text, solution_depth, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339), s.ScrambleText, s.MaxDepth, s.Outcome, s.SolutionText, s.SolutionDepth, s.DurationMs)

	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// List returns the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, created_at, scramble_text, max_depth, outcome, solution_text, solution_depth, duration_ms
		FROM sessions
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// Get returns a single session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, created_at, scramble_text, max_depth, outcome, solution_text, solution_depth, duration_ms
		FROM sessions
		WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (Session, error) {
	var s Session
	var createdAtStr string

	err := row.Scan(&s.SessionID, &createdAtStr, &s.ScrambleText, &s.MaxDepth, &s.Outcome, &s.SolutionText, &s.SolutionDepth, &s.DurationMs)
	if err != nil {
		return Session{}, err
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	s.CreatedAt = createdAt

	return s, nil
}
