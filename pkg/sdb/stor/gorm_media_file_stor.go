package stor

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormMediaFileStor struct {
	db *gorm.DB
}

func NewGormMediaFileStor(db *gorm.DB) *GormMediaFileStor {
	return &GormMediaFileStor{db: db}
}

func (s *GormMediaFileStor) CreateMediaFile(media *smodel.MediaFile) (*smodel.MediaFile, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(media).Error
	})

	if err != nil {
		return nil, err
	}

	return media, nil
}

func (s *GormMediaFileStor) GetMediaFileByID(mediaID int) (*smodel.MediaFile, error) {
	var media smodel.MediaFile
	if err := s.db.First(&media, mediaID).Error; err != nil {
		return nil, translateErr(err)
	}

	return &media, nil
}

func (s *GormMediaFileStor) ListMediaForEntity(entityType string, entityID int) ([]smodel.MediaFile, error) {
	var media []smodel.MediaFile
	err := s.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Where("file_type <> ?", smodel.MediaFileTypeDeleted).
		Order("created_at asc").
		Find(&media).Error
	return media, err
}

// SoftDeleteMediaFile clears the URL and tombstones the file type. The row
// stays so uploads remain auditable after the file itself is gone.
func (s *GormMediaFileStor) SoftDeleteMediaFile(mediaID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.MediaFile{ID: mediaID}).Updates(map[string]interface{}{
			"file_url":  "",
			"file_type": smodel.MediaFileTypeDeleted,
		}).Error
	})
}
