package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"stocktrack/internal/auth"
	"stocktrack/internal/inventory"
	"stocktrack/internal/query"
)

// actorName resolves the display name recorded with audit entries: an
// explicit username from the request wins, otherwise the token identity.
func actorName(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return auth.FromContext(r.Context()).Username
}

func validID(w http.ResponseWriter, id string) bool {
	if _, err := uuid.Parse(id); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ID format")
		return false
	}
	return true
}

func ListItems(svc *inventory.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := query.ParseListParams(r.URL.Query())
		items, pagination, err := svc.List(p)
		if err != nil {
			writeServiceError(w, lg, err, "Item not found", "Failed to fetch inventory")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":    true,
			"items":      items,
			"pagination": pagination,
		})
	}
}

func CreateItem(svc *inventory.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			inventory.CreateInput
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		item, err := svc.Create(req.CreateInput, actorName(r, req.Username))
		if err != nil {
			writeServiceError(w, lg, err, "Item not found", "Failed to create item")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "item": item})
	}
}

func GetItem(svc *inventory.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(w, id) {
			return
		}
		item, err := svc.Get(id)
		if err != nil {
			writeServiceError(w, lg, err, "Item not found", "Failed to fetch inventory item")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "item": item})
	}
}

func UpdateItem(svc *inventory.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(w, id) {
			return
		}
		var req struct {
			Username string `json:"username"`
			inventory.UpdateInput
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		item, err := svc.Update(id, req.UpdateInput, actorName(r, req.Username))
		if err != nil {
			writeServiceError(w, lg, err, "Item not found", "Failed to update item")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "item": item})
	}
}

func DeleteItem(svc *inventory.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(w, id) {
			return
		}
		actor := actorName(r, r.URL.Query().Get("username"))
		if err := svc.Delete(id, actor); err != nil {
			writeServiceError(w, lg, err, "Item not found", "Failed to delete item")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "Item deleted successfully"})
	}
}

type archiveReq struct {
	Username string `json:"username"`
}

func ArchiveItem(svc *inventory.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(w, id) {
			return
		}
		var req archiveReq
		_ = json.NewDecoder(r.Body).Decode(&req)
		item, err := svc.Archive(id, actorName(r, req.Username))
		if err != nil {
			writeServiceError(w, lg, err, "Item not found", "Failed to archive item")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "item": item})
	}
}

func RestoreItem(svc *inventory.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(w, id) {
			return
		}
		var req archiveReq
		_ = json.NewDecoder(r.Body).Decode(&req)
		item, err := svc.Restore(id, actorName(r, req.Username))
		if err != nil {
			writeServiceError(w, lg, err, "Item not found", "Failed to restore item")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "item": item})
	}
}

func ListArchivedItems(svc *inventory.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := query.ParseListParams(r.URL.Query())
		items, pagination, err := svc.ListArchived(p)
		if err != nil {
			writeServiceError(w, lg, err, "Item not found", "Failed to fetch archived items")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":    true,
			"items":      items,
			"pagination": pagination,
		})
	}
}

func GetStats(svc *inventory.Service, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats()
		if err != nil {
			writeServiceError(w, lg, err, "Item not found", "Failed to fetch inventory statistics")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "stats": stats})
	}
}
