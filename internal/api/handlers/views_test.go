package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvacad/studyhub/internal/api/services"
	"github.com/kvacad/studyhub/internal/catalog"
	"github.com/kvacad/studyhub/internal/utils"
)

func useSnapshot(t *testing.T, raws []catalog.RawRecord) {
	t.Helper()
	prev := Snapshots
	Snapshots = services.NewSnapshotService(func(ctx context.Context) ([]catalog.RawRecord, error) {
		return raws, nil
	})
	t.Cleanup(func() { Snapshots = prev })
}

func sampleRaws() []catalog.RawRecord {
	return []catalog.RawRecord{
		{ID: "1", Name: "CSE--Sem-1--notes.pdf", URL: "u1", Type: "application/pdf", Branch: "CSE", Semester: "Sem-1"},
		{ID: "2", Name: "CSE--Sem-1--diagram.png", URL: "u2", Type: "image/png", Branch: "CSE", Semester: "Sem-1"},
		{ID: "3", Name: "NOTICE--ANNOUNCEMENTS--exam.pdf", URL: "u3", Type: "application/pdf", Branch: "NOTICE", Semester: "ANNOUNCEMENTS"},
	}
}

func decodePayload(t *testing.T, rec *httptest.ResponseRecorder) utils.Payload {
	t.Helper()
	var payload utils.Payload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestListFilesLegacyShape(t *testing.T) {
	useSnapshot(t, sampleRaws())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/files", nil)
	rec := httptest.NewRecorder()
	ListFiles(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// a flat JSON array, not the envelope
	var raws []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raws))
	require.Len(t, raws, 3)
	assert.Equal(t, "CSE--Sem-1--notes.pdf", raws[0]["name"])
	assert.Equal(t, "application/pdf", raws[0]["type"])
	assert.Equal(t, "CSE", raws[0]["branch"])
}

func TestPartitionView(t *testing.T) {
	useSnapshot(t, sampleRaws())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/partition?branch=CSE&semester=Sem-1", nil)
	rec := httptest.NewRecorder()
	PartitionView(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodePayload(t, rec)
	require.True(t, payload.Success)

	data := payload.Data.(map[string]any)
	counts := data["counts"].(map[string]any)
	assert.EqualValues(t, 1, counts["pdfs"])
	assert.EqualValues(t, 1, counts["images"])
	assert.EqualValues(t, 0, counts["texts"])

	pdfs := data["pdfs"].(map[string]any)
	assert.Equal(t, false, pdfs["hasMore"])
	assert.Len(t, pdfs["visible"], 1)
}

func TestPartitionViewMissingParams(t *testing.T) {
	useSnapshot(t, sampleRaws())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/partition?branch=CSE", nil)
	rec := httptest.NewRecorder()
	PartitionView(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPartitionViewUnknownScopeIsEmptyNotError(t *testing.T) {
	useSnapshot(t, sampleRaws())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/partition?branch=cse&semester=Sem-1", nil)
	rec := httptest.NewRecorder()
	PartitionView(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodePayload(t, rec).Data.(map[string]any)
	counts := data["counts"].(map[string]any)
	assert.EqualValues(t, 0, counts["pdfs"])
}

func TestPartitionViewPreviewGate(t *testing.T) {
	raws := make([]catalog.RawRecord, 0, 6)
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		raws = append(raws, catalog.RawRecord{
			ID: id, Name: id + ".pdf", URL: "u", Type: "application/pdf",
			Branch: "ECE", Semester: "Sem-2",
		})
	}
	useSnapshot(t, raws)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/partition?branch=ECE&semester=Sem-2", nil)
	rec := httptest.NewRecorder()
	PartitionView(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data := decodePayload(t, rec).Data.(map[string]any)
	pdfs := data["pdfs"].(map[string]any)
	assert.Len(t, pdfs["visible"], 4)
	assert.Len(t, pdfs["all"], 6, "modal tier lists all items")
	assert.Equal(t, true, pdfs["hasMore"])
	assert.EqualValues(t, 2, pdfs["overflowCount"])
}

func TestSearchView(t *testing.T) {
	useSnapshot(t, sampleRaws())

	search := func(q string) utils.Payload {
		target := "/api/v1/views/search"
		if q != "" {
			target += "?q=" + url.QueryEscape(q)
		}
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		SearchView(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		return decodePayload(t, rec)
	}

	data := search("diag").Data.(map[string]any)
	assert.EqualValues(t, 1, data["count"])

	data = search("").Data.(map[string]any)
	assert.EqualValues(t, 0, data["count"])

	data = search("   ").Data.(map[string]any)
	assert.EqualValues(t, 0, data["count"], "whitespace query must match nothing")
}

func TestRecentView(t *testing.T) {
	raws := make([]catalog.RawRecord, 0, 7)
	for i := 0; i < 7; i++ {
		raws = append(raws, catalog.RawRecord{
			ID: string(rune('a' + i)), Name: "f.pdf", URL: "u", Type: "application/pdf",
			Branch: "CSE", Semester: "Sem-1",
			Timestamp: int64(1700000000000 + i*1000),
		})
	}
	useSnapshot(t, raws)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/views/recent", nil)
	rec := httptest.NewRecorder()
	RecentView(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var payload struct {
		Data catalog.PartitionResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload.Data.PDFs, catalog.RecentPerCategory)
	assert.Equal(t, "g", payload.Data.PDFs[0].ID, "newest first")
}

func TestMutateFilesValidation(t *testing.T) {
	useSnapshot(t, nil)

	post := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/files", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		MutateFiles(rec, req)
		return rec
	}

	// unknown action
	rec := post(url.Values{"action": {"explode"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// upload with unknown branch rejected before any storage call
	rec = post(url.Values{
		"branch": {"MBA"}, "semester": {"Sem-1"},
		"filename": {"a.pdf"}, "mimetype": {"application/pdf"}, "filedata": {"aGk="},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// upload with no file data
	rec = post(url.Values{"branch": {"CSE"}, "semester": {"Sem-1"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// invalid base64
	rec = post(url.Values{
		"branch": {"CSE"}, "semester": {"Sem-1"},
		"filename": {"a.pdf"}, "mimetype": {"application/pdf"}, "filedata": {"%%%"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// rename without fileId
	rec = post(url.Values{"action": {"rename"}, "newName": {"new.pdf"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// delete without fileId
	rec = post(url.Values{"action": {"delete"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.ScriptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestBatchUploadValidation(t *testing.T) {
	useSnapshot(t, nil)

	form := url.Values{"branch": {"CSE"}, "semester": {"Sem-1"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/files/batch", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	BatchUpload(rec, req)

	// no files and no text note: rejected before any network round trip
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
