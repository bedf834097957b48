package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-scorer/internal/types"
)

// ResumeRecord is a saved resume owned by a user. Data holds the full
// structured resume as stored in the resumes.data JSONB column.
type ResumeRecord struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Name      string            `json:"name"`
	Data      *types.ResumeData `json:"data,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// SaveResume stores a resume for a user and returns the new record.
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, name string, data *types.ResumeData) (*ResumeRecord, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume data: %w", err)
	}

	now := time.Now().UTC()
	rec := &ResumeRecord{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO resumes (id, user_id, name, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := db.pool.Exec(ctx, query, rec.ID, rec.UserID, rec.Name, payload, rec.CreatedAt, rec.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return rec, nil
}

// GetResume returns a resume by ID scoped to its owner, or (nil, nil)
// when not found or owned by someone else.
func (db *DB) GetResume(ctx context.Context, id, userID uuid.UUID) (*ResumeRecord, error) {
	query := `
		SELECT id, user_id, name, data, created_at, updated_at
		FROM resumes
		WHERE id = $1 AND user_id = $2`

	var rec ResumeRecord
	var payload []byte
	err := db.pool.QueryRow(ctx, query, id, userID).Scan(
		&rec.ID, &rec.UserID, &rec.Name, &payload, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	if err := json.Unmarshal(payload, &rec.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume data: %w", err)
	}
	return &rec, nil
}

// ListResumes returns all resumes owned by a user, newest first.
// Resume data is omitted from listings.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]ResumeRecord, error) {
	query := `
		SELECT id, user_id, name, created_at, updated_at
		FROM resumes
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := db.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var records []ResumeRecord
	for rows.Next() {
		var rec ResumeRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Name, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resume rows: %w", err)
	}
	return records, nil
}

// DeleteResume removes a resume owned by the user. It reports whether
// a row was actually deleted.
func (db *DB) DeleteResume(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
