// Package activity is the append-only audit sink for inventory mutations.
// Every endpoint writes through here so the log format cannot drift
// between code paths.
package activity

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"stocktrack/internal/models"
)

type Sink struct {
	db *gorm.DB
}

func NewSink(db *gorm.DB) *Sink {
	return &Sink{db: db}
}

// Append writes one entry. The timestamp defaults to write time. Errors
// propagate to the caller; the mutation service decides to swallow them.
func (s *Sink) Append(e *models.ActivityLog) error {
	if e.Type == "" || e.User == "" {
		return fmt.Errorf("activity: type and user are required")
	}
	if !models.ValidActivityType(e.Type) {
		return fmt.Errorf("activity: invalid type %q", e.Type)
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	return s.db.Create(e).Error
}

// Filter narrows List results. Zero values mean "all".
type Filter struct {
	Type   string // one of the activity type constants, or "" / "all"
	Search string // case-insensitive match against user, item name, description
	Date   string // "today", "yesterday", "week" or "" / "all"
	Limit  int    // 0 means no limit
}

// List returns entries newest-first. The full result set is returned
// unless Limit is set.
func (s *Sink) List(f Filter) ([]models.ActivityLog, error) {
	q := s.db.Model(&models.ActivityLog{})
	if f.Type != "" && f.Type != "all" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Search != "" {
		pat := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(username) LIKE ? OR LOWER(item_name) LIKE ? OR LOWER(description) LIKE ?", pat, pat, pat)
	}
	if from, to, ok := dateWindow(f.Date, time.Now()); ok {
		q = q.Where("timestamp >= ?", from)
		if !to.IsZero() {
			q = q.Where("timestamp < ?", to)
		}
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var entries []models.ActivityLog
	err := q.Order("timestamp desc").Find(&entries).Error
	return entries, err
}

// dateWindow resolves a relative date keyword into a half-open interval.
// A zero "to" means unbounded.
func dateWindow(keyword string, now time.Time) (from, to time.Time, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch keyword {
	case "today":
		return today, time.Time{}, true
	case "yesterday":
		return today.AddDate(0, 0, -1), today, true
	case "week":
		return today.AddDate(0, 0, -7), time.Time{}, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
