// Package report renders the inventory report dataset as downloadable
// CSV and PDF documents.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"stocktrack/internal/inventory"
)

// WriteCSV streams the report as CSV with a header row.
func WriteCSV(w io.Writer, rep *inventory.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Category", "Quantity", "Status", "Price", "Description", "Created At"}); err != nil {
		return err
	}
	for _, item := range rep.Items {
		price := ""
		if item.Price != nil {
			price = strconv.FormatFloat(*item.Price, 'f', 2, 64)
		}
		row := []string{
			item.Name,
			item.Category,
			strconv.Itoa(item.Quantity),
			item.Status,
			price,
			item.Description,
			item.CreatedAt.Format("2006-01-02"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
