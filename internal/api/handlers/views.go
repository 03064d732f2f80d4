package handlers

import (
	"net/http"

	"github.com/kvacad/studyhub/internal/catalog"
	"github.com/kvacad/studyhub/internal/utils"
)

// GET /api/v1/views/partition?branch=CSE&semester=Sem-1
// PartitionView godoc
// @Summary Category partition for one branch/semester scope
// @Description Splits the scoped collection into pdfs/images/texts, each wrapped in the inline-4/modal-all preview gate.
// @Tags Views
// @Produce json
// @Param branch query string true "Branch code, or NOTICE"
// @Param semester query string true "Semester code, or ANNOUNCEMENTS"
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/v1/views/partition [get]
func PartitionView(w http.ResponseWriter, r *http.Request) {
	branch := r.URL.Query().Get("branch")
	semester := r.URL.Query().Get("semester")
	if branch == "" || semester == "" {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Missing branch or semester",
		})
		return
	}

	// Unknown values are not an error: exact-equality scoping just matches
	// nothing, mirroring how every department page has always behaved.
	result, err := Snapshots.Partition(r.Context(), branch, semester)
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to load files",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Partition computed successfully",
		Data: map[string]any{
			"branch":   branch,
			"semester": semester,
			"pdfs":     catalog.Present(result.PDFs),
			"images":   catalog.Present(result.Images),
			"texts":    catalog.Present(result.Texts),
			"counts": map[string]int{
				"pdfs":   len(result.PDFs),
				"images": len(result.Images),
				"texts":  len(result.Texts),
			},
		},
	})
}

// GET /api/v1/views/recent
// RecentView godoc
// @Summary Most recent uploads per category
// @Description Sorts the whole collection by upload time, newest first, and returns up to five entries per category.
// @Tags Views
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/v1/views/recent [get]
func RecentView(w http.ResponseWriter, r *http.Request) {
	snap, err := Snapshots.Current(r.Context())
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to load files",
		})
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Recent uploads computed successfully",
		Data:    snap.Recent(),
	})
}

// GET /api/v1/views/search?q=diag
// SearchView godoc
// @Summary Search files by name
// @Description Case-insensitive substring match against file names only. A blank query returns no matches.
// @Tags Views
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} utils.Payload
// @Router /api/v1/views/search [get]
func SearchView(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	snap, err := Snapshots.Current(r.Context())
	if err != nil {
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Failed to load files",
		})
		return
	}

	matches := snap.Search(query)
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Search completed successfully",
		Data: map[string]any{
			"query":   query,
			"count":   len(matches),
			"matches": matches,
		},
	})
}
