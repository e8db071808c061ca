package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"stocktrack/internal/activity"
	"stocktrack/internal/models"
)

// ListActivity returns audit entries newest-first, optionally narrowed by
// type, free-text search and a relative date window.
func ListActivity(sink *activity.Sink, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		entries, err := sink.List(activity.Filter{
			Type:   q.Get("type"),
			Search: q.Get("search"),
			Date:   q.Get("date"),
		})
		if err != nil {
			lg.Errorw("activity log fetch failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch activity logs")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "activities": entries})
	}
}

// CreateActivity records a manual audit entry. The inventory service
// writes its own entries; this endpoint exists for internal tooling.
func CreateActivity(sink *activity.Sink, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Type        string `json:"type"`
			User        string `json:"user"`
			ItemName    string `json:"itemName"`
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Type == "" || req.User == "" || req.ItemName == "" || req.Description == "" {
			respondError(w, http.StatusBadRequest, "All fields are required")
			return
		}
		if !models.ValidActivityType(req.Type) {
			respondError(w, http.StatusBadRequest, "Invalid activity type")
			return
		}
		entry := models.ActivityLog{
			Type:        req.Type,
			User:        req.User,
			ItemName:    req.ItemName,
			Description: req.Description,
		}
		if err := sink.Append(&entry); err != nil {
			lg.Errorw("activity log create failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create activity log")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]interface{}{
			"success":  true,
			"message":  "Activity logged successfully",
			"activity": entry,
		})
	}
}
