package stor

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormFreelancerStor struct {
	db *gorm.DB
}

func NewGormFreelancerStor(db *gorm.DB) *GormFreelancerStor {
	return &GormFreelancerStor{db: db}
}

func (s *GormFreelancerStor) CreateFreelancer(freelancer *smodel.Freelancer) (*smodel.Freelancer, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(freelancer).Error
	})

	if err != nil {
		return nil, err
	}

	return freelancer, nil
}

func (s *GormFreelancerStor) GetFreelancerByID(freelancerID int) (*smodel.Freelancer, error) {
	var freelancer smodel.Freelancer
	if err := s.db.Preload("User").First(&freelancer, freelancerID).Error; err != nil {
		return nil, translateErr(err)
	}

	return &freelancer, nil
}

func (s *GormFreelancerStor) GetFreelancerByUserID(userID int) (*smodel.Freelancer, error) {
	var freelancer smodel.Freelancer
	if err := s.db.Preload("User").Where("user_id = ?", userID).First(&freelancer).Error; err != nil {
		return nil, translateErr(err)
	}

	return &freelancer, nil
}

func (s *GormFreelancerStor) UpdateFreelancer(freelancer *smodel.Freelancer, updates FreelancerUpdate) (*smodel.Freelancer, error) {
	changes := map[string]interface{}{}
	if updates.PhoneNumber != nil {
		changes["phone_number"] = *updates.PhoneNumber
	}
	if updates.Description != nil {
		changes["description"] = *updates.Description
	}
	if updates.Skills != nil {
		changes["skills"] = *updates.Skills
	}
	if updates.Categories != nil {
		changes["categories"] = *updates.Categories
	}
	if updates.City != nil {
		changes["city"] = *updates.City
	}
	if updates.Wilaya != nil {
		changes["wilaya"] = *updates.Wilaya
	}
	if updates.YearsExperience != nil {
		changes["years_experience"] = *updates.YearsExperience
	}
	if updates.SocialLinks != nil {
		changes["social_links"] = *updates.SocialLinks
	}
	if updates.Education != nil {
		changes["education"] = *updates.Education
	}
	if updates.CCPAccount != nil {
		changes["ccp_account"] = *updates.CCPAccount
	}
	if updates.BaridAccount != nil {
		changes["barid_account"] = *updates.BaridAccount
	}
	if updates.CVPath != nil {
		changes["cv_path"] = *updates.CVPath
	}
	if updates.ProfilePicture != nil {
		changes["profile_picture"] = *updates.ProfilePicture
	}

	if len(changes) == 0 {
		return freelancer, nil
	}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(freelancer).Updates(changes).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetFreelancerByID(freelancer.ID)
}

// UpdateFreelancerRate recomputes nothing itself; callers pass the new
// average after a review write.
func (s *GormFreelancerStor) UpdateFreelancerRate(freelancerID int, rate float64) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.Freelancer{ID: freelancerID}).Update("rate", rate).Error
	})
}
