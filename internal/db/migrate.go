package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profile_overrides (
		type_id                  TEXT PRIMARY KEY,
		learning_style           TEXT NOT NULL
		                         CHECK(learning_style IN ('systematic','exploratory')),
		communication_style      TEXT NOT NULL
		                         CHECK(communication_style IN ('direct','enthusiastic','supportive','consultative')),
		work_pattern             TEXT NOT NULL
		                         CHECK(work_pattern IN ('deep_focus','flexible')),
		motivation_triggers      TEXT NOT NULL,
		cognitive_load_threshold REAL NOT NULL DEFAULT 0.7
		                         CHECK(cognitive_load_threshold >= 0 AND cognitive_load_threshold <= 1),
		timing_threshold         REAL NOT NULL DEFAULT 0
		                         CHECK(timing_threshold >= 0 AND timing_threshold <= 1),
		nudge_interval_min       INTEGER NOT NULL DEFAULT 30,
		daily_nudge_limit        INTEGER NOT NULL DEFAULT 4,
		created_at               TEXT NOT NULL,
		updated_at               TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS nudge_log (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL,
		profile_id     TEXT NOT NULL,
		template_id    TEXT NOT NULL,
		timing_score   REAL NOT NULL DEFAULT 0,
		cognitive_load REAL NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_nudge_log_user ON nudge_log(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS interactions (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		nudge_id    TEXT NOT NULL DEFAULT '',
		profile_id  TEXT NOT NULL,
		template_id TEXT NOT NULL,
		outcome     TEXT NOT NULL
		            CHECK(outcome IN ('accepted','dismissed','ignored')),
		reason      TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_interactions_user ON interactions(user_id, created_at)`,
}
