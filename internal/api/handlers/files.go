package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kvacad/studyhub/internal/api/services"
	"github.com/kvacad/studyhub/internal/catalog"
	"github.com/kvacad/studyhub/internal/models"
	"github.com/kvacad/studyhub/internal/repositories"
	"github.com/kvacad/studyhub/internal/utils"
)

// Snapshots is the process-wide snapshot owner, wired in main.
var Snapshots *services.SnapshotService

const maxUploadSize = 100 << 20 // 100 MB

// swappable in tests
var (
	findMaterial = func(ctx context.Context, id string) (models.Material, error) {
		var material models.Material
		err := repositories.DB.WithContext(ctx).
			Where("id = ? AND deleted = ?", id, false).
			First(&material).Error
		return material, err
	}
	objectExists = repositories.VerifyObjectExists
	presignGet   = repositories.GeneratePresignedGetURL
)

// refreshSnapshot replaces the collection snapshot after a successful
// mutation. A failed refresh is logged, not surfaced: the mutation itself
// already succeeded and clients refetch on their own schedule.
func refreshSnapshot(ctx context.Context) {
	if Snapshots == nil {
		return
	}
	if _, err := Snapshots.Refresh(ctx); err != nil {
		log.Println("snapshot refresh after mutation failed:", err)
	}
}

// GET /api/v1/files
// ListFiles godoc
// @Summary List the full material collection
// @Description Returns every stored file as a flat JSON array in the legacy raw-record shape.
// @Tags Files
// @Produce json
// @Success 200 {array} catalog.RawRecord
// @Router /api/v1/files [get]
func ListFiles(w http.ResponseWriter, r *http.Request) {
	snap, err := Snapshots.Current(r.Context())
	if err != nil {
		log.Println("collection fetch failed:", err)
		utils.ScriptJSON(w, http.StatusInternalServerError, utils.ScriptResponse{
			Success: false,
			Error:   "Failed to load files",
		})
		return
	}

	records := snap.Records()
	raws := make([]catalog.RawRecord, 0, len(records))
	for _, rec := range records {
		raw := catalog.RawRecord{
			ID:       rec.ID,
			Name:     rec.Name,
			URL:      rec.URL,
			Type:     rec.MimeType,
			Branch:   rec.Branch,
			Semester: rec.Semester,
		}
		if !rec.UploadedAt.IsZero() {
			raw.Timestamp = rec.UploadedAt.UnixMilli()
		}
		raws = append(raws, raw)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(raws)
}

// POST /api/v1/files
// MutateFiles godoc
// @Summary Upload, rename or delete a file (legacy form contract)
// @Description Form-encoded mutation endpoint. No action field means upload; action=rename and action=delete operate on fileId. Admin only.
// @Tags Files
// @Accept x-www-form-urlencoded
// @Produce json
// @Param action formData string false "rename or delete; empty for upload"
// @Success 200 {object} utils.ScriptResponse
// @Failure 400 {object} utils.ScriptResponse
// @Router /api/v1/files [post]
func MutateFiles(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "Invalid form body",
		})
		return
	}

	switch r.PostFormValue("action") {
	case "":
		handleScriptUpload(w, r)
	case "rename":
		handleRename(w, r)
	case "delete":
		handleDelete(w, r)
	default:
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "Unknown action",
		})
	}
}

// handleScriptUpload accepts the legacy base64 upload form: filedata,
// filename, mimetype, branch, semester, uploader.
func handleScriptUpload(w http.ResponseWriter, r *http.Request) {
	branch := r.PostFormValue("branch")
	semester := r.PostFormValue("semester")
	filename := r.PostFormValue("filename")
	mimetype := r.PostFormValue("mimetype")
	uploader := r.PostFormValue("uploader")
	filedata := r.PostFormValue("filedata")

	if !catalog.ValidBranch(branch) || !catalog.ValidSemester(semester) {
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "Unknown branch or semester",
		})
		return
	}
	if filedata == "" {
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "No file data provided",
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

	if filename == "" && mimetype == "text/plain" {
		filename = catalog.NoteFilename(branch, semester, time.Now())
	}
	if filename == "" {
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "No filename provided",
		})
		return
	}
	// Admin clients send the branch--semester-- composite themselves; add it
	// for any that don't, so stored names stay round-trip compatible.
	if uploader == "admin" {
		if _, _, _, ok := catalog.ParseComposite(filename); !ok {
			filename = catalog.CompositeName(branch, semester, filename)
		}
	}

	material, err := storeMaterial(r.Context(), branch, semester, uploader, services.IncomingFile{
		Name:     filename,
		MimeType: mimetype,
		Data:     data,
	})
	if err != nil {
		log.Println("upload failed:", err)
		utils.ScriptJSON(w, http.StatusInternalServerError, utils.ScriptResponse{
			Success: false,
			Error:   "Upload failed",
		})
		return
	}

	refreshSnapshot(r.Context())
	utils.ScriptJSON(w, http.StatusOK, utils.ScriptResponse{
		Success: true,
		FileID:  material.ID.String(),
		Name:    material.Name,
	})
}

func handleRename(w http.ResponseWriter, r *http.Request) {
	fileID := r.PostFormValue("fileId")
	newName := strings.TrimSpace(r.PostFormValue("newName"))
	if fileID == "" || newName == "" {
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "Missing fileId or newName",
		})
		return
	}

	var material models.Material
	err := repositories.DB.WithContext(r.Context()).
		Where("id = ? AND deleted = ?", fileID, false).
		First(&material).Error
	if err != nil {
		utils.ScriptJSON(w, http.StatusNotFound, utils.ScriptResponse{
			Success: false,
			Error:   "File not found",
		})
		return
	}

	material.Name = newName
	material.OriginalName = catalog.DisplayName(newName)
	if err := repositories.DB.WithContext(r.Context()).Save(&material).Error; err != nil {
		log.Println("rename failed:", err)
		utils.ScriptJSON(w, http.StatusInternalServerError, utils.ScriptResponse{
			Success: false,
			Error:   "Rename failed",
		})
		return
	}

	refreshSnapshot(r.Context())
	utils.ScriptJSON(w, http.StatusOK, utils.ScriptResponse{
		Success: true,
		FileID:  material.ID.String(),
		Name:    material.Name,
	})
}

// handleDelete soft-deletes the record and removes the stored object. Single
// attempt, no undo; the client confirms with the user before dispatching.
func handleDelete(w http.ResponseWriter, r *http.Request) {
	fileID := r.PostFormValue("fileId")
	if fileID == "" {
		utils.ScriptJSON(w, http.StatusBadRequest, utils.ScriptResponse{
			Success: false,
			Error:   "Missing fileId",
		})
		return
	}

	var material models.Material
	err := repositories.DB.WithContext(r.Context()).
		Where("id = ? AND deleted = ?", fileID, false).
		First(&material).Error
	if err != nil {
		utils.ScriptJSON(w, http.StatusNotFound, utils.ScriptResponse{
			Success: false,
			Error:   "File not found",
		})
		return
	}

	material.Deleted = true
	if err := repositories.DB.WithContext(r.Context()).Save(&material).Error; err != nil {
		log.Println("delete failed:", err)
		utils.ScriptJSON(w, http.StatusInternalServerError, utils.ScriptResponse{
			Success: false,
			Error:   "Delete failed",
		})
		return
	}
	if err := repositories.DeleteObject(r.Context(), material.StorageKey); err != nil {
		// record is already gone from the collection; losing the orphaned
		// object is logged, not surfaced
		log.Println("object delete failed:", err)
	}

	refreshSnapshot(r.Context())
	utils.ScriptJSON(w, http.StatusOK, utils.ScriptResponse{
		Success: true,
		FileID:  fileID,
	})
}

// POST /api/v1/files/batch
// BatchUpload godoc
// @Summary Upload multiple files or a text note
// @Description Multipart student upload. Files are stored strictly one at a time, in order.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param branch formData string true "Branch code"
// @Param semester formData string true "Semester code"
// @Param files formData file false "Files to upload"
// @Param textNote formData string false "Freeform text note"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/v1/files/batch [post]
func BatchUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid file upload form",
		})
		return
	}

	branch := r.FormValue("branch")
	semester := r.FormValue("semester")
	textNote := strings.TrimSpace(r.FormValue("textNote"))
	formFiles := r.MultipartForm.File["files"]

	// validation failures are caught before anything is stored
	if !catalog.ValidBranch(branch) || !catalog.ValidSemester(semester) {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Please fill all required fields",
		})
		return
	}
	if len(formFiles) == 0 && textNote == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Please fill all required fields",
		})
		return
	}

	var totalSize int64
	for _, f := range formFiles {
		totalSize += f.Size
	}
	if totalSize > maxUploadSize {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Total file size exceeds 100 MB limit",
		})
		return
	}

	incoming := make([]services.IncomingFile, 0, len(formFiles)+1)
	for _, handler := range formFiles {
		src, err := handler.Open()
		if err != nil {
			utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
				Success: false,
				Message: fmt.Sprintf("Could not read %s", handler.Filename),
			})
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
				Success: false,
				Message: fmt.Sprintf("Could not read %s", handler.Filename),
			})
			return
		}
		incoming = append(incoming, services.IncomingFile{
			Name:     handler.Filename,
			MimeType: handler.Header.Get("Content-Type"),
			Data:     data,
		})
	}
	if len(incoming) == 0 && textNote != "" {
		incoming = append(incoming, services.IncomingFile{
			Name:     fmt.Sprintf("Note-%d.txt", time.Now().UnixMilli()),
			MimeType: "text/plain",
			Data:     []byte(textNote),
		})
	}

	uploader := services.NewUploader(func(ctx context.Context, file services.IncomingFile) (string, error) {
		material, err := storeMaterial(ctx, branch, semester, "student", file)
		if err != nil {
			return "", err
		}
		return material.ID.String(), nil
	})
	results := uploader.UploadBatch(r.Context(), incoming)

	failed := 0
	for _, res := range results {
		if res.Err() != nil {
			failed++
		}
	}

	refreshSnapshot(r.Context())

	if failed == len(results) {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Upload failed",
			Data:    map[string]any{"results": results},
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: failed == 0,
		Message: fmt.Sprintf("Uploaded %d of %d file(s)", len(results)-failed, len(results)),
		Data:    map[string]any{"results": results},
	})
}

// GET /api/v1/files/{id}/download
// DownloadURL godoc
// @Summary Generate a temporary download URL for a file
// @Tags Files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/files/{id}/download [get]
func DownloadURL(w http.ResponseWriter, r *http.Request) {
	fileID := r.PathValue("id")
	if fileID == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Missing file id",
		})
		return
	}

	material, err := findMaterial(r.Context(), fileID)
	if err != nil {
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "File not found",
		})
		return
	}

	// the record can outlive its object (manual bucket cleanup); surface that
	// as a 404 rather than presigning a dead URL
	exists, err := objectExists(r.Context(), material.StorageKey)
	if err != nil {
		log.Println("object existence check failed:", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to generate download URL",
		})
		return
	}
	if !exists {
		log.Println("stored object missing for material:", fileID)
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "File not found",
		})
		return
	}

	url, err := presignGet(r.Context(), material.StorageKey, 15*time.Minute)
	if err != nil {
		log.Println("presign failed:", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to generate download URL",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Download URL generated successfully",
		Data: map[string]any{
			"url":          url,
			"content_type": material.MimeType,
			"filename":     material.OriginalName,
		},
	})
}

// storeMaterial uploads the bytes to object storage and records the
// metadata row with branch, semester, original name and upload time as
// first-class columns.
func storeMaterial(ctx context.Context, branch, semester, uploader string, file services.IncomingFile) (models.Material, error) {
	key := uuid.New().String() + "_" + file.Name
	if err := repositories.UploadObject(ctx, key, file.MimeType, file.Data); err != nil {
		return models.Material{}, err
	}

	material := models.Material{
		Name:         file.Name,
		OriginalName: catalog.DisplayName(file.Name),
		Branch:       branch,
		Semester:     semester,
		MimeType:     file.MimeType,
		Size:         int64(len(file.Data)),
		StorageKey:   key,
		Uploader:     uploader,
	}
	if err := repositories.DB.WithContext(ctx).Create(&material).Error; err != nil {
		return models.Material{}, err
	}
	return material, nil
}
