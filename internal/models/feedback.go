package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is one submitted feedback-form entry. The form sends the message
// as a base64 text blob named Feedback-<epochMillis>.txt; the decoded text is
// stored directly and the filename kept for parity with the legacy archive.
type Feedback struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Filename  string    `json:"filename"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
