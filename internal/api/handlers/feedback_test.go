package handlers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvacad/studyhub/internal/models"
	"github.com/kvacad/studyhub/internal/utils"
)

func postFeedback(form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	SubmitFeedback(rec, req)
	return rec
}

func stubSaveFeedback(t *testing.T, saved *models.Feedback) {
	t.Helper()
	prev := saveFeedback
	saveFeedback = func(ctx context.Context, entry *models.Feedback) error {
		*saved = *entry
		return nil
	}
	t.Cleanup(func() { saveFeedback = prev })
}

func TestSubmitFeedback(t *testing.T) {
	var saved models.Feedback
	stubSaveFeedback(t, &saved)

	message := "Great site, the Sem-3 notes helped a lot!"
	rec := postFeedback(url.Values{
		"name":     {"Asha"},
		"email":    {"asha@example.com"},
		"mimetype": {"text/plain"},
		"filedata": {base64.StdEncoding.EncodeToString([]byte(message))},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp utils.ScriptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	assert.Equal(t, "Asha", saved.Name)
	assert.Equal(t, "asha@example.com", saved.Email)
	assert.Equal(t, message, saved.Message)
	// blob name defaulted when the client omits it
	assert.True(t, strings.HasPrefix(saved.Filename, "Feedback-"))
	assert.True(t, strings.HasSuffix(saved.Filename, ".txt"))
}

func TestSubmitFeedbackKeepsClientFilename(t *testing.T) {
	var saved models.Feedback
	stubSaveFeedback(t, &saved)

	rec := postFeedback(url.Values{
		"name":     {"Asha"},
		"email":    {"asha@example.com"},
		"filename": {"Feedback-1700000000000.txt"},
		"filedata": {base64.StdEncoding.EncodeToString([]byte("hi"))},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Feedback-1700000000000.txt", saved.Filename)
}

func TestSubmitFeedbackValidation(t *testing.T) {
	saveFeedbackCalled := false
	prev := saveFeedback
	saveFeedback = func(ctx context.Context, entry *models.Feedback) error {
		saveFeedbackCalled = true
		return nil
	}
	t.Cleanup(func() { saveFeedback = prev })

	// missing name
	rec := postFeedback(url.Values{
		"email":    {"asha@example.com"},
		"filedata": {"aGk="},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// missing email
	rec = postFeedback(url.Values{
		"name":     {"Asha"},
		"filedata": {"aGk="},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// missing message blob
	rec = postFeedback(url.Values{
		"name":  {"Asha"},
		"email": {"asha@example.com"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// invalid base64
	rec = postFeedback(url.Values{
		"name":     {"Asha"},
		"email":    {"asha@example.com"},
		"filedata": {"%%%"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// decodes to whitespace only
	rec = postFeedback(url.Values{
		"name":     {"Asha"},
		"email":    {"asha@example.com"},
		"filedata": {base64.StdEncoding.EncodeToString([]byte("   "))},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.False(t, saveFeedbackCalled, "nothing may be stored on a rejected submission")
}

func TestListFeedback(t *testing.T) {
	prev := loadFeedback
	loadFeedback = func(ctx context.Context) ([]models.Feedback, error) {
		return []models.Feedback{
			{Name: "Asha", Email: "asha@example.com", Message: "hi", CreatedAt: time.Now()},
		}, nil
	}
	t.Cleanup(func() { loadFeedback = prev })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feedback", nil)
	rec := httptest.NewRecorder()
	ListFeedback(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var payload utils.Payload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.True(t, payload.Success)
	data := payload.Data.(map[string]any)
	assert.EqualValues(t, 1, data["count"])
}
