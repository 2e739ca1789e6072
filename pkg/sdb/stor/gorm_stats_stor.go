package stor

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormStatsStor struct {
	db *gorm.DB
}

func NewGormStatsStor(db *gorm.DB) *GormStatsStor {
	return &GormStatsStor{db: db}
}

func (s *GormStatsStor) CountUsersByRole() (map[string]int64, error) {
	type roleCount struct {
		Role  string
		Count int64
	}

	var rows []roleCount
	err := s.db.Model(&smodel.User{}).
		Select("role, count(*) as count").
		Where("is_active = ?", true).
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{}
	for _, row := range rows {
		counts[row.Role] = row.Count
	}

	return counts, nil
}

func (s *GormStatsStor) CountActiveRequests() (int64, error) {
	var count int64
	err := s.db.Model(&smodel.Request{}).
		Where("status = ?", smodel.RequestStatusPending).
		Count(&count).Error
	return count, err
}
