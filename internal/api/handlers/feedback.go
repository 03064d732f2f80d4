package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/kvacad/studyhub/internal/models"
	"github.com/kvacad/studyhub/internal/repositories"
	"github.com/kvacad/studyhub/internal/utils"
)

// swappable in tests, like the snapshot loader
var (
	saveFeedback = func(ctx context.Context, entry *models.Feedback) error {
		return repositories.DB.WithContext(ctx).Create(entry).Error
	}
	loadFeedback = func(ctx context.Context) ([]models.Feedback, error) {
		var entries []models.Feedback
		err := repositories.DB.WithContext(ctx).Order("created_at desc").Find(&entries).Error
		return entries, err
	}
)

// POST /api/v1/feedback
// SubmitFeedback godoc
// @Summary Submit a feedback message
// @Description Form-encoded feedback submission: name, email and a base64 text blob (filedata) named Feedback-<epochMillis>.txt.
// @Tags Feedback
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Submitter name"
// @Param email formData string true "Submitter email"
// @Param filedata formData string true "Base64-encoded message"
// @Param filename formData string false "Blob name; defaulted when empty"
// @Success 200 {object} utils.ScriptResponse
// @Failure 400 {object} utils.ScriptResponse
// @Router /api/v1/feedback [post]
func SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "Invalid form body",
		})
		return
	}

	name := strings.TrimSpace(r.PostFormValue("name"))
	email := strings.TrimSpace(r.PostFormValue("email"))
	filename := r.PostFormValue("filename")
	filedata := r.PostFormValue("filedata")

	if name == "" || email == "" || filedata == "" {
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "Please fill all fields",
		})
		return
	}

	data, err := base64.StdEncoding.DecodeString(filedata)
	if err != nil {
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "Invalid base64 file data",
		})
		return
	}
	message := strings.TrimSpace(string(data))
	if message == "" {
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "Empty feedback message",
		})
		return
	}

	if filename == "" {
		filename = fmt.Sprintf("Feedback-%d.txt", time.Now().UnixMilli())
	}

	entry := models.Feedback{
		Name:     name,
		Email:    email,
		Filename: filename,
		Message:  message,
	}
	if err := saveFeedback(r.Context(), &entry); err != nil {
		log.Println("feedback insert failed:", err)
		utils.ScriptJSON(w, http.StatusInternalServerError, utils.ScriptResponse{
			Success: false,
			Error:   "Failed to save feedback",
		})
		return
	}

	utils.ScriptJSON(w, http.StatusOK, utils.ScriptResponse{
		Success: true,
		FileID:  entry.ID.String(),
		Name:    entry.Filename,
	})
}

// GET /api/v1/feedback
// ListFeedback godoc
// @Summary List submitted feedback, newest first
// @Description Admin only.
// @Tags Feedback
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/v1/feedback [get]
func ListFeedback(w http.ResponseWriter, r *http.Request) {
	entries, err := loadFeedback(r.Context())
	if err != nil {
		log.Println("feedback fetch failed:", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to load feedback",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Feedback loaded successfully",
		Data: map[string]any{
			"count":   len(entries),
			"entries": entries,
		},
	})
}
