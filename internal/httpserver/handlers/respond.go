package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"stocktrack/internal/inventory"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]interface{}{"success": false, "error": msg})
}

func respondValidation(w http.ResponseWriter, fields map[string]string) {
	respondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"error":   "Validation failed",
		"errors":  fields,
	})
}

// writeServiceError maps service errors to the response envelope.
// Unclassified errors are logged and returned as the generic message so
// internal detail never leaks to the caller.
func writeServiceError(w http.ResponseWriter, lg *zap.SugaredLogger, err error, notFoundMsg, genericMsg string) {
	var verr *inventory.ValidationError
	var inUse *inventory.CategoryInUseError
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		respondError(w, http.StatusNotFound, notFoundMsg)
	case errors.As(err, &verr):
		respondValidation(w, verr.Fields)
	case errors.As(err, &inUse):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success":   false,
			"error":     inUse.Error(),
			"itemCount": inUse.ItemCount,
		})
	case errors.Is(err, inventory.ErrDuplicateCategory):
		respondError(w, http.StatusConflict, "Category name already exists")
	default:
		lg.Errorw(genericMsg, "error", err)
		respondError(w, http.StatusInternalServerError, genericMsg)
	}
}
