package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadBatchStrictlySequential(t *testing.T) {
	var events []string
	uploader := NewUploader(func(ctx context.Context, file IncomingFile) (string, error) {
		events = append(events, "start:"+file.Name)
		time.Sleep(5 * time.Millisecond)
		events = append(events, "end:"+file.Name)
		return "id-" + file.Name, nil
	})

	files := []IncomingFile{
		{Name: "one.pdf", MimeType: "application/pdf"},
		{Name: "two.png", MimeType: "image/png"},
		{Name: "three.txt", MimeType: "text/plain"},
	}
	results := uploader.UploadBatch(context.Background(), files)

	require.Len(t, results, 3)
	// each upload completes before the next one starts, never interleaved
	assert.Equal(t, []string{
		"start:one.pdf", "end:one.pdf",
		"start:two.png", "end:two.png",
		"start:three.txt", "end:three.txt",
	}, events)
	for i, r := range results {
		assert.Equal(t, files[i].Name, r.Name)
		assert.Equal(t, "id-"+files[i].Name, r.FileID)
		assert.NoError(t, r.Err())
	}
}

func TestUploadBatchContinuesPastFailure(t *testing.T) {
	boom := errors.New("storage rejected file")
	uploader := NewUploader(func(ctx context.Context, file IncomingFile) (string, error) {
		if file.Name == "bad.pdf" {
			return "", boom
		}
		return "id-" + file.Name, nil
	})

	results := uploader.UploadBatch(context.Background(), []IncomingFile{
		{Name: "ok.pdf"},
		{Name: "bad.pdf"},
		{Name: "also-ok.pdf"},
	})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err())
	assert.ErrorIs(t, results[1].Err(), boom)
	assert.Empty(t, results[1].FileID)
	assert.NoError(t, results[2].Err(), "a failed file must not abort the batch")
}

func TestUploadBatchCancelledContext(t *testing.T) {
	var stored int
	uploader := NewUploader(func(ctx context.Context, file IncomingFile) (string, error) {
		stored++
		return fmt.Sprintf("id-%d", stored), nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := uploader.UploadBatch(ctx, []IncomingFile{{Name: "a"}, {Name: "b"}})
	require.Len(t, results, 2)
	assert.Zero(t, stored)
	for _, r := range results {
		assert.ErrorIs(t, r.Err(), context.Canceled)
	}
}
