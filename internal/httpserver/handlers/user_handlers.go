package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"stocktrack/internal/auth"
	"stocktrack/internal/models"
)

func ListUsers(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users := []models.User{}
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			lg.Errorw("user list failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch users")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": true, "users": users})
	}
}

// CreateUser registers a staff account. When no password is supplied a
// temporary one is generated and returned exactly once.
func CreateUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
			FullName string `json:"fullName"`
			Role     string `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" {
			respondError(w, http.StatusBadRequest, "Username is required")
			return
		}
		var count int64
		if err := db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
			lg.Errorw("user lookup failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}
		if count > 0 {
			respondError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		role := req.Role
		if role == "" {
			role = models.RoleEmployee
		}
		temporary := ""
		if req.Password == "" {
			temporary = auth.GeneratePassword(10)
			req.Password = temporary
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			lg.Errorw("password hash failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}
		u := models.User{
			Username:     req.Username,
			PasswordHash: hash,
			FullName:     req.FullName,
			Role:         role,
			IsActive:     true,
			CreatedBy:    auth.FromContext(r.Context()).Username,
		}
		if err := db.Create(&u).Error; err != nil {
			lg.Errorw("user create failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}
		resp := map[string]interface{}{
			"success": true,
			"user":    u,
			"message": "User created successfully",
		}
		if temporary != "" {
			resp["temporaryPassword"] = temporary
		}
		respondJSON(w, http.StatusCreated, resp)
	}
}

// UpdateUser toggles activation or edits the display name and role.
func UpdateUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(w, id) {
			return
		}
		var req struct {
			FullName *string `json:"fullName"`
			Role     *string `json:"role"`
			IsActive *bool   `json:"isActive"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		var u models.User
		if err := db.First(&u, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(w, http.StatusNotFound, "User not found")
				return
			}
			lg.Errorw("user lookup failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to update user")
			return
		}
		if req.FullName != nil {
			u.FullName = *req.FullName
		}
		if req.Role != nil {
			u.Role = *req.Role
		}
		if req.IsActive != nil {
			u.IsActive = *req.IsActive
		}
		if err := db.Save(&u).Error; err != nil {
			lg.Errorw("user update failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to update user")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"user":    u,
			"message": "User updated successfully",
		})
	}
}

// DeleteUser removes an account. Owner accounts are always protected.
func DeleteUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !validID(w, id) {
			return
		}
		var u models.User
		if err := db.First(&u, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(w, http.StatusNotFound, "User not found")
				return
			}
			lg.Errorw("user lookup failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to delete user")
			return
		}
		if u.Role == models.RoleOwner {
			respondError(w, http.StatusForbidden, "Cannot delete owner account")
			return
		}
		if err := db.Delete(&models.User{}, "id = ?", id).Error; err != nil {
			lg.Errorw("user delete failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to delete user")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "User deleted successfully",
		})
	}
}
