package inventory

import "stocktrack/internal/models"

// StatusForQuantity is the single source of truth for stock status.
// Every mutation path derives status through this function.
func StatusForQuantity(quantity int) string {
	switch {
	case quantity == 0:
		return models.StatusOutOfStock
	case quantity <= 5:
		return models.StatusLowStock
	default:
		return models.StatusInStock
	}
}
