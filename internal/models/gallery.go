package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryItem is one entry in the events gallery. Items are either uploaded
// blobs (Kind image/video, StorageKey set) or external links (Kind link,
// Link and optional Cover set).
type GalleryItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	MimeType    string    `json:"mimeType"`
	Kind        string    `json:"type" gorm:"not null"` // "image", "video" or "link"
	Link        string    `json:"link"`
	Cover       string    `json:"cover"`
	StorageKey  string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
	Deleted     bool      `json:"deleted" gorm:"default:false"`
}
