package inventory

import "stocktrack/internal/models"

type Overview struct {
	TotalItems    int64 `json:"totalItems"`
	TotalQuantity int64 `json:"totalQuantity"`
}

type StatusBreakdown struct {
	InStock    int64 `json:"inStock"`
	LowStock   int64 `json:"lowStock"`
	OutOfStock int64 `json:"outOfStock"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type Stats struct {
	Overview          Overview        `json:"overview"`
	StatusBreakdown   StatusBreakdown `json:"statusBreakdown"`
	CategoryBreakdown []CategoryCount `json:"categoryBreakdown"`
}

// Stats aggregates counts over non-archived items only.
func (s *Service) Stats() (*Stats, error) {
	stats := &Stats{CategoryBreakdown: []CategoryCount{}}
	if err := s.db.Model(&models.InventoryItem{}).Where("is_archived = ?", false).
		Count(&stats.Overview.TotalItems).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.InventoryItem{}).Where("is_archived = ?", false).
		Select("COALESCE(SUM(quantity), 0)").Scan(&stats.Overview.TotalQuantity).Error; err != nil {
		return nil, err
	}

	var statusCounts []struct {
		Status string
		Count  int64
	}
	if err := s.db.Model(&models.InventoryItem{}).Where("is_archived = ?", false).
		Select("status, COUNT(*) as count").Group("status").Scan(&statusCounts).Error; err != nil {
		return nil, err
	}
	for _, sc := range statusCounts {
		switch sc.Status {
		case models.StatusInStock:
			stats.StatusBreakdown.InStock = sc.Count
		case models.StatusLowStock:
			stats.StatusBreakdown.LowStock = sc.Count
		case models.StatusOutOfStock:
			stats.StatusBreakdown.OutOfStock = sc.Count
		}
	}

	if err := s.db.Model(&models.InventoryItem{}).Where("is_archived = ?", false).
		Select("category, COUNT(*) as count").Group("category").Order("count desc").
		Scan(&stats.CategoryBreakdown).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
