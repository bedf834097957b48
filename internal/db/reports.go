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

// ReportRecord is a stored scoring run for a saved resume. Result holds
// the full score output as stored in the score_reports.result JSONB column.
type ReportRecord struct {
	ID           uuid.UUID          `json:"id"`
	ResumeID     uuid.UUID          `json:"resume_id"`
	Mode         string             `json:"mode"`
	OverallScore float64            `json:"overall_score"`
	AutoReject   bool               `json:"auto_reject"`
	Result       *types.ScoreResult `json:"result,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// SaveReport stores a score result against a resume.
func (db *DB) SaveReport(ctx context.Context, resumeID uuid.UUID, result *types.ScoreResult) (*ReportRecord, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal score result: %w", err)
	}

	rec := &ReportRecord{
		ID:           uuid.New(),
		ResumeID:     resumeID,
		Mode:         string(result.Mode),
		OverallScore: result.OverallScore,
		AutoReject:   result.AutoReject,
		Result:       result,
		CreatedAt:    time.Now().UTC(),
	}

	query := `
		INSERT INTO score_reports (id, resume_id, mode, overall_score, auto_reject, result, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := db.pool.Exec(ctx, query, rec.ID, rec.ResumeID, rec.Mode, rec.OverallScore, rec.AutoReject, payload, rec.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to save score report: %w", err)
	}
	return rec, nil
}

// GetReport returns a report by ID scoped to the owning user, or
// (nil, nil) when not found. Ownership is checked through the resume.
func (db *DB) GetReport(ctx context.Context, id, userID uuid.UUID) (*ReportRecord, error) {
	query := `
		SELECT r.id, r.resume_id, r.mode, r.overall_score, r.auto_reject, r.result, r.created_at
		FROM score_reports r
		JOIN resumes m ON m.id = r.resume_id
		WHERE r.id = $1 AND m.user_id = $2`

	var rec ReportRecord
	var payload []byte
	err := db.pool.QueryRow(ctx, query, id, userID).Scan(
		&rec.ID, &rec.ResumeID, &rec.Mode, &rec.OverallScore, &rec.AutoReject, &payload, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score report: %w", err)
	}
	if err := json.Unmarshal(payload, &rec.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score result: %w", err)
	}
	return &rec, nil
}

// ListReports returns all reports for a resume owned by the user,
// newest first. The full result payload is omitted from listings.
func (db *DB) ListReports(ctx context.Context, resumeID, userID uuid.UUID) ([]ReportRecord, error) {
	query := `
		SELECT r.id, r.resume_id, r.mode, r.overall_score, r.auto_reject, r.created_at
		FROM score_reports r
		JOIN resumes m ON m.id = r.resume_id
		WHERE r.resume_id = $1 AND m.user_id = $2
		ORDER BY r.created_at DESC`

	rows, err := db.pool.Query(ctx, query, resumeID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list score reports: %w", err)
	}
	defer rows.Close()

	var records []ReportRecord
	for rows.Next() {
		var rec ReportRecord
		if err := rows.Scan(&rec.ID, &rec.ResumeID, &rec.Mode, &rec.OverallScore, &rec.AutoReject, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}
	return records, nil
}
