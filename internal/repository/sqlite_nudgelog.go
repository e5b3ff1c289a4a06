package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/attune-cli/attune/internal/db"
	"github.com/attune-cli/attune/internal/domain"
)

// SQLiteNudgeLogRepo implements NudgeLogRepo using a SQLite database.
type SQLiteNudgeLogRepo struct {
	db db.DBTX
}

// NewSQLiteNudgeLogRepo creates a new SQLiteNudgeLogRepo.
func NewSQLiteNudgeLogRepo(conn db.DBTX) *SQLiteNudgeLogRepo {
	return &SQLiteNudgeLogRepo{db: conn}
}

// Append inserts a record and trims the user's history to HistoryWindow rows,
// oldest first.
func (r *SQLiteNudgeLogRepo) Append(ctx context.Context, rec *domain.NudgeRecord) error {
	query := `INSERT INTO nudge_log (id, user_id, profile_id, template_id, timing_score, cognitive_load, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.UserID,
		rec.ProfileID,
		rec.TemplateID,
		rec.TimingScore,
		rec.Load,
		formatTime(rec.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting nudge record: %w", err)
	}

	trim := `DELETE FROM nudge_log WHERE user_id = ? AND id NOT IN (
		SELECT id FROM nudge_log WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?)`
	if _, err := r.db.ExecContext(ctx, trim, rec.UserID, rec.UserID, HistoryWindow); err != nil {
		return fmt.Errorf("trimming nudge log: %w", err)
	}
	return nil
}

func (r *SQLiteNudgeLogRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.NudgeRecord, error) {
	if limit <= 0 || limit > HistoryWindow {
		limit = HistoryWindow
	}
	query := `SELECT id, user_id, profile_id, template_id, timing_score, cognitive_load, created_at
		FROM nudge_log WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing nudge records: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLiteNudgeLogRepo) LastForUser(ctx context.Context, userID string) (*domain.NudgeRecord, error) {
	query := `SELECT id, user_id, profile_id, template_id, timing_score, cognitive_load, created_at
		FROM nudge_log WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, userID)

	rec, err := r.scanRecord(row)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteNudgeLogRepo) CountSince(ctx context.Context, userID string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM nudge_log WHERE user_id = ? AND created_at >= ?`
	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, formatTime(since)).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting nudge records: %w", err)
	}
	return count, nil
}

func (r *SQLiteNudgeLogRepo) scanRecord(row *sql.Row) (*domain.NudgeRecord, error) {
	var rec domain.NudgeRecord
	var createdAt string
	err := row.Scan(&rec.ID, &rec.UserID, &rec.ProfileID, &rec.TemplateID, &rec.TimingScore, &rec.Load, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("nudge record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning nudge record: %w", err)
	}
	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &rec, nil
}

func (r *SQLiteNudgeLogRepo) scanRecords(rows *sql.Rows) ([]*domain.NudgeRecord, error) {
	var records []*domain.NudgeRecord
	for rows.Next() {
		var rec domain.NudgeRecord
		var createdAt string
		err := rows.Scan(&rec.ID, &rec.UserID, &rec.ProfileID, &rec.TemplateID, &rec.TimingScore, &rec.Load, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scanning nudge record row: %w", err)
		}
		if rec.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating nudge records: %w", err)
	}
	return records, nil
}
