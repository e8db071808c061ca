package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"stocktrack/internal/inventory"
)

func ListCategories(svc *inventory.CategoryService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cats, err := svc.List()
		if err != nil {
			writeServiceError(w, lg, err, "Category not found", "Failed to fetch categories")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "categories": cats})
	}
}

func CreateCategory(svc *inventory.CategoryService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in inventory.CategoryInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		cat, err := svc.Create(in)
		if err != nil {
			writeServiceError(w, lg, err, "Category not found", "Failed to create category")
			return
		}
		respondJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "category": cat})
	}
}

func GetCategory(svc *inventory.CategoryService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(w, id) {
			return
		}
		cat, itemCount, err := svc.Get(id)
		if err != nil {
			writeServiceError(w, lg, err, "Category not found", "Failed to fetch category")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":   true,
			"category":  cat,
			"itemCount": itemCount,
		})
	}
}

func UpdateCategory(svc *inventory.CategoryService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(w, id) {
			return
		}
		var in inventory.CategoryInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		cat, err := svc.Update(id, in)
		if err != nil {
			writeServiceError(w, lg, err, "Category not found", "Failed to update category")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "category": cat})
	}
}

func DeleteCategory(svc *inventory.CategoryService, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(w, id) {
			return
		}
		if err := svc.Delete(id); err != nil {
			writeServiceError(w, lg, err, "Category not found", "Failed to delete category")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "id": id})
	}
}
