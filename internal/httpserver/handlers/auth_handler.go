package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stocktrack/internal/auth"
	"stocktrack/internal/models"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks credentials and issues a token. A wrong password and an
// unknown username get the same 401 so the response does not reveal
// whether the account exists.
func Login(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "Username and password are required")
			return
		}
		var u models.User
		if err := db.First(&u, "username = ?", req.Username).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				lg.Errorw("login lookup failed", "error", err)
			}
			respondError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		if err := auth.CheckPassword(u.PasswordHash, req.Password); err != nil {
			respondError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		if !u.IsActive {
			respondError(w, http.StatusForbidden, "Account has been deactivated. Contact administrator.")
			return
		}
		token, err := auth.Sign(&u)
		if err != nil {
			lg.Errorw("token sign failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"user":    u,
			"token":   token,
			"message": "Login successful",
		})
	}
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword lets the authenticated user rotate their own password.
func ChangePassword(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req changePasswordReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.CurrentPassword == "" || req.NewPassword == "" {
			respondError(w, http.StatusBadRequest, "All fields are required")
			return
		}
		if len(req.NewPassword) < 6 {
			respondError(w, http.StatusBadRequest, "New password must be at least 6 characters")
			return
		}
		var u models.User
		if err := db.First(&u, "id = ?", auth.Subject(r.Context())).Error; err != nil {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		if err := auth.CheckPassword(u.PasswordHash, req.CurrentPassword); err != nil {
			respondError(w, http.StatusUnauthorized, "Current password is incorrect")
			return
		}
		if req.NewPassword == req.CurrentPassword {
			respondError(w, http.StatusBadRequest, "New password must be different from current password")
			return
		}
		hash, err := auth.HashPassword(req.NewPassword)
		if err != nil {
			lg.Errorw("password hash failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to change password. Please try again.")
			return
		}
		if err := db.Model(&u).Update("password_hash", hash).Error; err != nil {
			lg.Errorw("password update failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to change password. Please try again.")
			return
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Password changed successfully",
		})
	}
}
