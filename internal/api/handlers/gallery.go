package handlers

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/kvacad/studyhub/internal/models"
	"github.com/kvacad/studyhub/internal/repositories"
	"github.com/kvacad/studyhub/internal/utils"
)

// galleryUploadInput covers both accepted JSON shapes: an inline blob
// ({filedata, filename, mimetype, description}) or an external link
// ({type, link, description, cover, filename}).
type galleryUploadInput struct {
	Filedata    string `json:"filedata"`
	Filename    string `json:"filename"`
	Mimetype    string `json:"mimetype"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Link        string `json:"link"`
	Cover       string `json:"cover"`
}

// GET /api/v1/gallery
// ListGallery godoc
// @Summary List gallery items
// @Tags Gallery
// @Produce json
// @Success 200 {array} models.GalleryItem
// @Router /api/v1/gallery [get]
func ListGallery(w http.ResponseWriter, r *http.Request) {
	var items []models.GalleryItem
	err := repositories.DB.WithContext(r.Context()).
		Where("deleted = ?", false).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		log.Println("gallery fetch failed:", err)
		utils.ScriptJSON(w, http.StatusInternalServerError, utils.ScriptResponse{
			Success: false,
			Error:   "Failed to load gallery",
		})
		return
	}

	type galleryEntry struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Type        string `json:"type"`
		Description string `json:"description,omitempty"`
		URL         string `json:"url,omitempty"`
		Link        string `json:"link,omitempty"`
		Cover       string `json:"cover,omitempty"`
	}
	entries := make([]galleryEntry, 0, len(items))
	for _, item := range items {
		entry := galleryEntry{
			ID:          item.ID.String(),
			Name:        item.Name,
			Type:        item.Kind,
			Description: item.Description,
			Link:        item.Link,
			Cover:       item.Cover,
		}
		if item.StorageKey != "" {
			entry.URL = repositories.PublicObjectURL(item.StorageKey)
		}
		entries = append(entries, entry)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(entries)
}

// POST /api/v1/gallery
// UploadGallery godoc
// @Summary Add a gallery item
// @Description Accepts either a base64 blob upload or an external link entry. Admin only.
// @Tags Gallery
// @Accept json
// @Produce json
// @Param item body galleryUploadInput true "Gallery item"
// @Success 200 {object} utils.ScriptResponse
// @Failure 400 {object} utils.ScriptResponse
// @Router /api/v1/gallery [post]
func UploadGallery(w http.ResponseWriter, r *http.Request) {
	var input galleryUploadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "Invalid JSON body",
		})
		return
	}

	switch {
	case input.Filedata != "":
		uploadGalleryBlob(w, r, input)
	case input.Link != "":
		uploadGalleryLink(w, r, input)
	default:
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "Provide filedata or a link",
		})
	}
}

func uploadGalleryBlob(w http.ResponseWriter, r *http.Request, input galleryUploadInput) {
	if input.Filename == "" {
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "No filename provided",
		})
		return
	}
	data, err := base64.StdEncoding.DecodeString(input.Filedata)
	if err != nil {
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "Invalid base64 file data",
		})
		return
	}

	kind := "video"
	if strings.HasPrefix(input.Mimetype, "image/") {
		kind = "image"
	}

	key := uuid.New().String() + "_" + input.Filename
	if err := repositories.UploadObject(r.Context(), key, input.Mimetype, data); err != nil {
		log.Println("gallery upload failed:", err)
		utils.ScriptJSON(w, http.StatusInternalServerError, utils.ScriptResponse{
			Success: false,
			Error:   "Upload failed",
		})
		return
	}

	item := models.GalleryItem{
		Name:        input.Filename,
		Description: input.Description,
		MimeType:    input.Mimetype,
		Kind:        kind,
		StorageKey:  key,
	}
	if err := repositories.DB.WithContext(r.Context()).Create(&item).Error; err != nil {
		log.Println("gallery insert failed:", err)
		utils.ScriptJSON(w, http.StatusInternalServerError, utils.ScriptResponse{
			Success: false,
			Error:   "Upload failed",
		})
		return
	}

	utils.ScriptJSON(w, http.StatusOK, utils.ScriptResponse{
		Success: true,
		FileID:  item.ID.String(),
		Name:    item.Name,
	})
}

func uploadGalleryLink(w http.ResponseWriter, r *http.Request, input galleryUploadInput) {
	name := input.Filename
	if name == "" {
		name = input.Link
	}
	kind := input.Type
	if kind == "" {
		kind = "link"
	}

	item := models.GalleryItem{
		Name:        name,
		Description: input.Description,
		Kind:        kind,
		Link:        input.Link,
		Cover:       input.Cover,
	}
	if err := repositories.DB.WithContext(r.Context()).Create(&item).Error; err != nil {
		log.Println("gallery insert failed:", err)
		utils.ScriptJSON(w, http.StatusInternalServerError, utils.ScriptResponse{
			Success: false,
			Error:   "Upload failed",
		})
		return
	}

	utils.ScriptJSON(w, http.StatusOK, utils.ScriptResponse{
		Success: true,
		FileID:  item.ID.String(),
		Name:    item.Name,
	})
}
