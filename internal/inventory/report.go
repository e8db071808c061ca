package inventory

import (
	"strings"
	"time"

	"stocktrack/internal/models"
)

type ReportFilter struct {
	DateRange  string   `json:"dateRange"`  // today, week, month, year or all
	Categories []string `json:"categories"`
	Statuses   []string `json:"statuses"`
}

type ReportSummary struct {
	TotalItems      int   `json:"totalItems"`
	TotalCategories int   `json:"totalCategories"`
	TotalQuantity   int64 `json:"totalQuantity"`
	InStock         int   `json:"inStock"`
	LowStock        int   `json:"lowStock"`
	OutOfStock      int   `json:"outOfStock"`
}

type Report struct {
	Items       []models.InventoryItem `json:"items"`
	Summary     ReportSummary          `json:"summary"`
	Filters     ReportFilter           `json:"filters"`
	GeneratedAt time.Time              `json:"generatedAt"`
}

// Report builds the filtered dataset and summary for reporting exports.
// Archived items are always excluded.
func (s *Service) Report(f ReportFilter) (*Report, error) {
	f = normalizeFilter(f)
	q := s.db.Model(&models.InventoryItem{}).Where("is_archived = ?", false)
	if start, ok := reportWindowStart(f.DateRange, time.Now()); ok {
		q = q.Where("created_at >= ?", start)
	}
	if len(f.Categories) > 0 {
		q = q.Where("category IN ?", f.Categories)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	items := []models.InventoryItem{}
	if err := q.Order("LOWER(name) asc").Find(&items).Error; err != nil {
		return nil, err
	}

	rep := &Report{
		Items:       items,
		Filters:     f,
		GeneratedAt: time.Now(),
	}
	seen := map[string]bool{}
	for _, item := range items {
		rep.Summary.TotalQuantity += int64(item.Quantity)
		seen[item.Category] = true
		switch item.Status {
		case models.StatusInStock:
			rep.Summary.InStock++
		case models.StatusLowStock:
			rep.Summary.LowStock++
		case models.StatusOutOfStock:
			rep.Summary.OutOfStock++
		}
	}
	rep.Summary.TotalItems = len(items)
	rep.Summary.TotalCategories = len(seen)
	return rep, nil
}

// reportWindowStart maps a date-range keyword to the start-of-day boundary
// the window opens on.
func reportWindowStart(dateRange string, now time.Time) (time.Time, bool) {
	var ref time.Time
	switch dateRange {
	case "today":
		ref = now
	case "week":
		ref = now.AddDate(0, 0, -7)
	case "month":
		ref = now.AddDate(0, -1, 0)
	case "year":
		ref = now.AddDate(-1, 0, 0)
	default:
		return time.Time{}, false
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()), true
}

func normalizeFilter(f ReportFilter) ReportFilter {
	out := ReportFilter{DateRange: f.DateRange, Categories: []string{}, Statuses: []string{}}
	if out.DateRange == "" {
		out.DateRange = "all"
	}
	for _, c := range f.Categories {
		if c = strings.TrimSpace(c); c != "" {
			out.Categories = append(out.Categories, c)
		}
	}
	for _, st := range f.Statuses {
		if st = strings.TrimSpace(st); st != "" {
			out.Statuses = append(out.Statuses, st)
		}
	}
	return out
}
