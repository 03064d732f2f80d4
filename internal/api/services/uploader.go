package services

import (
	"context"
)

// IncomingFile is one file in an upload batch.
type IncomingFile struct {
	Name     string
	MimeType string
	Data     []byte
}

// StoreFunc persists one file and returns its new record ID.
type StoreFunc func(ctx context.Context, file IncomingFile) (fileID string, err error)

// UploadResult is the per-file outcome of a batch.
type UploadResult struct {
	Name   string `json:"name"`
	FileID string `json:"fileId,omitempty"`
	Error  string `json:"error,omitempty"`

	err error
}

// Err returns the underlying error for a failed file.
func (r UploadResult) Err() error { return r.err }

// Uploader runs upload batches against a store.
type Uploader struct {
	store StoreFunc
}

func NewUploader(store StoreFunc) *Uploader {
	return &Uploader{store: store}
}

// UploadBatch stores the files strictly one at a time, in order, each
// awaited before the next begins. Uploading in parallel would be an
// observable behavior change, not an optimization. A failed file records its
// error and the batch moves on; there are no retries.
func (u *Uploader) UploadBatch(ctx context.Context, files []IncomingFile) []UploadResult {
	results := make([]UploadResult, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			results = append(results, UploadResult{Name: file.Name, Error: err.Error(), err: err})
			continue
		}
		fileID, err := u.store(ctx, file)
		result := UploadResult{Name: file.Name, FileID: fileID, err: err}
		if err != nil {
			result.Error = err.Error()
			result.FileID = ""
		}
		results = append(results, result)
	}
	return results
}
