package stor

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormReportStor struct {
	db *gorm.DB
}

func NewGormReportStor(db *gorm.DB) *GormReportStor {
	return &GormReportStor{db: db}
}

func (s *GormReportStor) CreateReport(report *smodel.Report) (*smodel.Report, error) {
	if report.Status == "" {
		report.Status = smodel.ReportStatusPending
	}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(report).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetReportByID(report.ID)
}

func (s *GormReportStor) GetReportByID(reportID int) (*smodel.Report, error) {
	var report smodel.Report
	err := s.db.Preload("Reporter").First(&report, reportID).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return &report, nil
}

func (s *GormReportStor) ListReports() ([]smodel.Report, error) {
	var reports []smodel.Report
	err := s.db.Preload("Reporter").Order("created_at desc").Find(&reports).Error
	return reports, err
}

func (s *GormReportStor) ListReportsForUser(reporterID int) ([]smodel.Report, error) {
	var reports []smodel.Report
	err := s.db.Where("reporter_id = ?", reporterID).
		Order("created_at desc").
		Find(&reports).Error
	return reports, err
}

func (s *GormReportStor) ResolveReport(reportID int) (*smodel.Report, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.Report{ID: reportID}).
			Update("status", smodel.ReportStatusResolved).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetReportByID(reportID)
}
