package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kvacad/studyhub/internal/models"
	"github.com/kvacad/studyhub/internal/utils"
)

func stubDownloadDeps(t *testing.T, material models.Material, findErr error, exists bool) {
	t.Helper()
	prevFind, prevExists, prevPresign := findMaterial, objectExists, presignGet
	findMaterial = func(ctx context.Context, id string) (models.Material, error) {
		return material, findErr
	}
	objectExists = func(ctx context.Context, key string) (bool, error) {
		return exists, nil
	}
	presignGet = func(ctx context.Context, key string, expires time.Duration) (string, error) {
		return "https://storage.example.com/signed/" + key, nil
	}
	t.Cleanup(func() {
		findMaterial, objectExists, presignGet = prevFind, prevExists, prevPresign
	})
}

func getDownload(id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/files/"+id+"/download", nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	DownloadURL(rec, req)
	return rec
}

func TestDownloadURL(t *testing.T) {
	stubDownloadDeps(t, models.Material{
		OriginalName: "notes.pdf",
		MimeType:     "application/pdf",
		StorageKey:   "abc_notes.pdf",
	}, nil, true)

	rec := getDownload("some-id")

	require.Equal(t, http.StatusOK, rec.Code)
	var payload utils.Payload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.True(t, payload.Success)
	data := payload.Data.(map[string]any)
	assert.Equal(t, "https://storage.example.com/signed/abc_notes.pdf", data["url"])
	assert.Equal(t, "notes.pdf", data["filename"])
	assert.Equal(t, "application/pdf", data["content_type"])
}

func TestDownloadURLUnknownRecord(t *testing.T) {
	stubDownloadDeps(t, models.Material{}, gorm.ErrRecordNotFound, true)

	rec := getDownload("missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDownloadURLMissingObject(t *testing.T) {
	stubDownloadDeps(t, models.Material{StorageKey: "gone_key"}, nil, false)

	rec := getDownload("orphaned")

	// record exists but the object is gone from the bucket: 404, never a
	// presigned URL pointing at nothing
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var payload utils.Payload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.False(t, payload.Success)
}
