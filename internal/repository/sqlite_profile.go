package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/attune-cli/attune/internal/db"
	"github.com/attune-cli/attune/internal/domain"
)

// SQLiteProfileOverrideRepo implements ProfileOverrideRepo using a SQLite database.
type SQLiteProfileOverrideRepo struct {
	db db.DBTX
}

// NewSQLiteProfileOverrideRepo creates a new SQLiteProfileOverrideRepo.
func NewSQLiteProfileOverrideRepo(conn db.DBTX) *SQLiteProfileOverrideRepo {
	return &SQLiteProfileOverrideRepo{db: conn}
}

const profileColumns = `type_id, learning_style, communication_style, work_pattern,
	motivation_triggers, cognitive_load_threshold, timing_threshold,
	nudge_interval_min, daily_nudge_limit, created_at, updated_at`

func (r *SQLiteProfileOverrideRepo) Get(ctx context.Context, typeID string) (*domain.PersonalityProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profile_overrides WHERE type_id = ?`
	row := r.db.QueryRowContext(ctx, query, typeID)
	return r.scanProfile(row)
}

func (r *SQLiteProfileOverrideRepo) List(ctx context.Context) ([]*domain.PersonalityProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profile_overrides ORDER BY type_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing profile overrides: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.PersonalityProfile
	for rows.Next() {
		p, err := r.scanProfileRow(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profile overrides: %w", err)
	}
	return profiles, nil
}

func (r *SQLiteProfileOverrideRepo) Upsert(ctx context.Context, p *domain.PersonalityProfile) error {
	now := formatTime(time.Now())
	query := `INSERT INTO profile_overrides (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(type_id) DO UPDATE SET
			learning_style = excluded.learning_style,
			communication_style = excluded.communication_style,
			work_pattern = excluded.work_pattern,
			motivation_triggers = excluded.motivation_triggers,
			cognitive_load_threshold = excluded.cognitive_load_threshold,
			timing_threshold = excluded.timing_threshold,
			nudge_interval_min = excluded.nudge_interval_min,
			daily_nudge_limit = excluded.daily_nudge_limit,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		p.TypeID,
		string(p.LearningStyle),
		string(p.CommunicationStyle),
		string(p.WorkPattern),
		joinTriggers(p.MotivationTriggers),
		p.CognitiveLoadThreshold,
		p.TimingThreshold,
		p.NudgeIntervalMin,
		p.DailyNudgeLimit,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("upserting profile override: %w", err)
	}
	return nil
}

func (r *SQLiteProfileOverrideRepo) Delete(ctx context.Context, typeID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM profile_overrides WHERE type_id = ?`, typeID)
	if err != nil {
		return fmt.Errorf("deleting profile override: %w", err)
	}
	return nil
}

func (r *SQLiteProfileOverrideRepo) scanProfile(row *sql.Row) (*domain.PersonalityProfile, error) {
	var p domain.PersonalityProfile
	var triggers, createdAt, updatedAt string
	err := row.Scan(
		&p.TypeID,
		&p.LearningStyle,
		&p.CommunicationStyle,
		&p.WorkPattern,
		&triggers,
		&p.CognitiveLoadThreshold,
		&p.TimingThreshold,
		&p.NudgeIntervalMin,
		&p.DailyNudgeLimit,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile override: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile override: %w", err)
	}
	return r.populateProfile(&p, triggers, createdAt, updatedAt)
}

func (r *SQLiteProfileOverrideRepo) scanProfileRow(rows *sql.Rows) (*domain.PersonalityProfile, error) {
	var p domain.PersonalityProfile
	var triggers, createdAt, updatedAt string
	err := rows.Scan(
		&p.TypeID,
		&p.LearningStyle,
		&p.CommunicationStyle,
		&p.WorkPattern,
		&triggers,
		&p.CognitiveLoadThreshold,
		&p.TimingThreshold,
		&p.NudgeIntervalMin,
		&p.DailyNudgeLimit,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning profile override row: %w", err)
	}
	return r.populateProfile(&p, triggers, createdAt, updatedAt)
}

func (r *SQLiteProfileOverrideRepo) populateProfile(p *domain.PersonalityProfile, triggers, createdAt, updatedAt string) (*domain.PersonalityProfile, error) {
	p.MotivationTriggers = splitTriggers(triggers)
	var err error
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return p, nil
}
