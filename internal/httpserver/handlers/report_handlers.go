package handlers

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"stocktrack/internal/inventory"
	"stocktrack/internal/report"
)

func parseReportFilter(r *http.Request) inventory.ReportFilter {
	q := r.URL.Query()
	return inventory.ReportFilter{
		DateRange:  q.Get("dateRange"),
		Categories: splitList(q.Get("categories")),
		Statuses:   splitList(q.Get("statuses")),
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func InventoryReport(svc *inventory.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.Report(parseReportFilter(r))
		if err != nil {
			lg.Errorw("report generation failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to generate report")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":     true,
			"items":       rep.Items,
			"summary":     rep.Summary,
			"filters":     rep.Filters,
			"generatedAt": rep.GeneratedAt,
		})
	}
}

// ExportInventoryReport streams the report as a CSV or PDF download.
func ExportInventoryReport(svc *inventory.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := strings.ToLower(r.URL.Query().Get("format"))
		if format != "csv" && format != "pdf" {
			respondError(w, http.StatusBadRequest, "format must be csv or pdf")
			return
		}
		rep, err := svc.Report(parseReportFilter(r))
		if err != nil {
			lg.Errorw("report generation failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to generate report")
			return
		}
		filename := "inventory-report-" + time.Now().Format("20060102")
		switch format {
		case "csv":
			w.Header().Set("Content-Type", "text/csv")
			w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.csv"`)
			if err := report.WriteCSV(w, rep); err != nil {
				lg.Errorw("csv export failed", "error", err)
			}
		case "pdf":
			doc, err := report.PDF(rep)
			if err != nil {
				lg.Errorw("pdf export failed", "error", err)
				respondError(w, http.StatusInternalServerError, "Failed to generate report")
				return
			}
			w.Header().Set("Content-Type", "application/pdf")
			w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`.pdf"`)
			_, _ = w.Write(doc)
		}
	}
}
