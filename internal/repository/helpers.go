package repository

import (
	"strings"
	"time"
)

// joinTriggers flattens a trigger set for single-column storage.
func joinTriggers(triggers []string) string {
	return strings.Join(triggers, ",")
}

// splitTriggers restores a trigger set from its stored form.
func splitTriggers(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// parseTime parses an RFC3339 timestamp stored as TEXT.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// formatTime formats a time for SQLite storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
