package repositories

import (
	"context"

	"github.com/kvacad/studyhub/internal/catalog"
	"github.com/kvacad/studyhub/internal/models"
)

// LoadRawRecords returns the undeleted collection in insertion order, shaped
// as the legacy raw records the front-end already consumes.
func LoadRawRecords(ctx context.Context) ([]catalog.RawRecord, error) {
	var materials []models.Material
	err := DB.WithContext(ctx).
		Where("deleted = ?", false).
		Order("created_at asc").
		Find(&materials).Error
	if err != nil {
		return nil, err
	}

	raws := make([]catalog.RawRecord, 0, len(materials))
	for _, m := range materials {
		raws = append(raws, catalog.RawRecord{
			ID:        m.ID.String(),
			Name:      m.Name,
			URL:       PublicObjectURL(m.StorageKey),
			Type:      m.MimeType,
			Branch:    m.Branch,
			Semester:  m.Semester,
			Timestamp: m.CreatedAt.UnixMilli(),
		})
	}
	return raws, nil
}
