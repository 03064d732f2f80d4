package models

import (
	"time"

	"github.com/google/uuid"
)

// Material is one uploaded study file. Branch, semester, the original name
// and the upload time are first-class columns; Name keeps the legacy
// branch--semester--originalName composite so existing clients keep working.
type Material struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name         string    `json:"name" gorm:"not null"` // legacy composite display name
	OriginalName string    `json:"originalName" gorm:"not null"`
	Branch       string    `json:"branch" gorm:"index;not null"`
	Semester     string    `json:"semester" gorm:"index;not null"`
	MimeType     string    `json:"mimeType" gorm:"not null"`
	Size         int64     `json:"size" gorm:"not null"` // bytes
	StorageKey   string    `json:"-" gorm:"not null"`    // object storage key
	Uploader     string    `json:"uploader"`             // "admin" or "student"
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
	Deleted      bool      `json:"deleted" gorm:"default:false"`
}
