package repository

import (
	"context"
	"fmt"

	"github.com/attune-cli/attune/internal/db"
	"github.com/attune-cli/attune/internal/domain"
)

// SQLiteInteractionRepo implements InteractionRepo using a SQLite database.
type SQLiteInteractionRepo struct {
	db db.DBTX
}

// NewSQLiteInteractionRepo creates a new SQLiteInteractionRepo.
func NewSQLiteInteractionRepo(conn db.DBTX) *SQLiteInteractionRepo {
	return &SQLiteInteractionRepo{db: conn}
}

func (r *SQLiteInteractionRepo) Create(ctx context.Context, in *domain.Interaction) error {
	query := `INSERT INTO interactions (id, user_id, nudge_id, profile_id, template_id, outcome, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		in.ID,
		in.UserID,
		in.NudgeID,
		in.ProfileID,
		in.TemplateID,
		string(in.Outcome),
		in.Reason,
		formatTime(in.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting interaction: %w", err)
	}
	return nil
}

func (r *SQLiteInteractionRepo) ListRecent(ctx context.Context, userID string, limit int) ([]*domain.Interaction, error) {
	if limit <= 0 {
		limit = HistoryWindow
	}
	query := `SELECT id, user_id, nudge_id, profile_id, template_id, outcome, reason, created_at
		FROM interactions WHERE user_id = ?
		ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing interactions: %w", err)
	}
	defer rows.Close()

	var interactions []*domain.Interaction
	for rows.Next() {
		var in domain.Interaction
		var createdAt string
		err := rows.Scan(&in.ID, &in.UserID, &in.NudgeID, &in.ProfileID, &in.TemplateID, &in.Outcome, &in.Reason, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scanning interaction row: %w", err)
		}
		if in.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		interactions = append(interactions, &in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating interactions: %w", err)
	}
	return interactions, nil
}

func (r *SQLiteInteractionRepo) SummaryByProfile(ctx context.Context) ([]ProfileInteractionSummary, error) {
	query := `SELECT profile_id,
			COUNT(*),
			SUM(CASE WHEN outcome = 'accepted' THEN 1 ELSE 0 END),
			SUM(CASE WHEN outcome = 'dismissed' THEN 1 ELSE 0 END),
			SUM(CASE WHEN outcome = 'ignored' THEN 1 ELSE 0 END)
		FROM interactions
		GROUP BY profile_id
		ORDER BY profile_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("summarizing interactions by profile: %w", err)
	}
	defer rows.Close()

	var summaries []ProfileInteractionSummary
	for rows.Next() {
		var s ProfileInteractionSummary
		if err := rows.Scan(&s.ProfileID, &s.Total, &s.Accepted, &s.Dismissed, &s.Ignored); err != nil {
			return nil, fmt.Errorf("scanning profile summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profile summaries: %w", err)
	}
	return summaries, nil
}

func (r *SQLiteInteractionRepo) SummaryByTemplate(ctx context.Context) ([]TemplateInteractionSummary, error) {
	query := `SELECT template_id,
			COUNT(*),
			SUM(CASE WHEN outcome = 'accepted' THEN 1 ELSE 0 END),
			SUM(CASE WHEN outcome = 'dismissed' THEN 1 ELSE 0 END)
		FROM interactions
		GROUP BY template_id
		ORDER BY template_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("summarizing interactions by template: %w", err)
	}
	defer rows.Close()

	var summaries []TemplateInteractionSummary
	for rows.Next() {
		var s TemplateInteractionSummary
		if err := rows.Scan(&s.TemplateID, &s.Total, &s.Accepted, &s.Dismissed); err != nil {
			return nil, fmt.Errorf("scanning template summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating template summaries: %w", err)
	}
	return summaries, nil
}
