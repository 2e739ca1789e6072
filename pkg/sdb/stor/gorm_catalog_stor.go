package stor

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormCatalogStor struct {
	db *gorm.DB
}

func NewGormCatalogStor(db *gorm.DB) *GormCatalogStor {
	return &GormCatalogStor{db: db}
}

func (s *GormCatalogStor) CreateFAQ(faq *smodel.FAQ) (*smodel.FAQ, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(faq).Error
	})

	if err != nil {
		return nil, err
	}

	return faq, nil
}

func (s *GormCatalogStor) GetFAQByID(faqID int) (*smodel.FAQ, error) {
	var faq smodel.FAQ
	if err := s.db.First(&faq, faqID).Error; err != nil {
		return nil, translateErr(err)
	}

	return &faq, nil
}

func (s *GormCatalogStor) ListFAQs() ([]smodel.FAQ, error) {
	var faqs []smodel.FAQ
	err := s.db.Order("id asc").Find(&faqs).Error
	return faqs, err
}

func (s *GormCatalogStor) UpdateFAQ(faq *smodel.FAQ, question, answer string) (*smodel.FAQ, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(faq).Updates(map[string]interface{}{
			"question": question,
			"answer":   answer,
		}).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetFAQByID(faq.ID)
}

func (s *GormCatalogStor) DeleteFAQ(faqID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Delete(&smodel.FAQ{}, faqID).Error
	})
}

func (s *GormCatalogStor) CreateSkill(name string) (*smodel.Skill, error) {
	skill := &smodel.Skill{Name: name}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(skill).Error
	})

	if err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *GormCatalogStor) ListSkills() ([]smodel.Skill, error) {
	var skills []smodel.Skill
	err := s.db.Order("name asc").Find(&skills).Error
	return skills, err
}

func (s *GormCatalogStor) CreateCategory(name string) (*smodel.Category, error) {
	category := &smodel.Category{Name: name}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(category).Error
	})

	if err != nil {
		return nil, err
	}

	return category, nil
}

func (s *GormCatalogStor) ListCategories() ([]smodel.Category, error) {
	var categories []smodel.Category
	err := s.db.Order("name asc").Find(&categories).Error
	return categories, err
}
