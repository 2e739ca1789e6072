package stor

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormCompanyStor struct {
	db *gorm.DB
}

func NewGormCompanyStor(db *gorm.DB) *GormCompanyStor {
	return &GormCompanyStor{db: db}
}

func (s *GormCompanyStor) CreateCompany(company *smodel.Company) (*smodel.Company, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(company).Error
	})

	if err != nil {
		return nil, err
	}

	return company, nil
}

func (s *GormCompanyStor) GetCompanyByID(companyID int) (*smodel.Company, error) {
	var company smodel.Company
	if err := s.db.Preload("User").First(&company, companyID).Error; err != nil {
		return nil, translateErr(err)
	}

	return &company, nil
}

func (s *GormCompanyStor) GetCompanyByUserID(userID int) (*smodel.Company, error) {
	var company smodel.Company
	if err := s.db.Preload("User").Where("user_id = ?", userID).First(&company).Error; err != nil {
		return nil, translateErr(err)
	}

	return &company, nil
}

func (s *GormCompanyStor) UpdateCompany(company *smodel.Company, updates CompanyUpdate) (*smodel.Company, error) {
	changes := map[string]interface{}{}
	if updates.TaxID != nil {
		changes["tax_id"] = *updates.TaxID
	}
	if updates.Representative != nil {
		changes["representative"] = *updates.Representative
	}
	if updates.BusinessType != nil {
		changes["business_type"] = *updates.BusinessType
	}
	if updates.Description != nil {
		changes["description"] = *updates.Description
	}
	if updates.Industry != nil {
		changes["industry"] = *updates.Industry
	}
	if updates.Logo != nil {
		changes["logo"] = *updates.Logo
	}

	if len(changes) == 0 {
		return company, nil
	}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(company).Updates(changes).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetCompanyByID(company.ID)
}
