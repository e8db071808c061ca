package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"stocktrack/internal/inventory"
)

// PDF renders the report as a PDF document.
func PDF(rep *inventory.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Inventory Report", props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)
	m.AddRow(6,
		text.NewCol(8, "Generated: "+rep.GeneratedAt.Format("2006-01-02 15:04"), props.Text{Size: 8}),
		text.NewCol(4, "Date range: "+rep.Filters.DateRange, props.Text{Size: 8, Align: align.Right}),
	)
	if len(rep.Filters.Categories) > 0 {
		m.AddRow(5, text.NewCol(12, "Categories: "+strings.Join(rep.Filters.Categories, ", "), props.Text{Size: 8}))
	}
	if len(rep.Filters.Statuses) > 0 {
		m.AddRow(5, text.NewCol(12, "Statuses: "+strings.Join(rep.Filters.Statuses, ", "), props.Text{Size: 8}))
	}

	m.AddRow(8,
		text.NewCol(4, "Name", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(3, "Category", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(2, "Quantity", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(2, "Status", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(1, "Price", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)
	for _, item := range rep.Items {
		price := ""
		if item.Price != nil {
			price = strconv.FormatFloat(*item.Price, 'f', 2, 64)
		}
		m.AddRow(7,
			text.NewCol(4, item.Name, props.Text{Size: 8}),
			text.NewCol(3, item.Category, props.Text{Size: 8}),
			text.NewCol(2, strconv.Itoa(item.Quantity), props.Text{Size: 8, Align: align.Right}),
			text.NewCol(2, item.Status, props.Text{Size: 8}),
			text.NewCol(1, price, props.Text{Size: 8, Align: align.Right}),
		)
	}

	m.AddRow(10,
		text.NewCol(12, fmt.Sprintf("Totals: %d items, %d units across %d categories (in stock %d, low stock %d, out of stock %d)",
			rep.Summary.TotalItems, rep.Summary.TotalQuantity, rep.Summary.TotalCategories,
			rep.Summary.InStock, rep.Summary.LowStock, rep.Summary.OutOfStock),
			props.Text{Size: 9, Style: fontstyle.Bold}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
