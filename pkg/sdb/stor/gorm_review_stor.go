package stor

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormReviewStor struct {
	db *gorm.DB
}

func NewGormReviewStor(db *gorm.DB) *GormReviewStor {
	return &GormReviewStor{db: db}
}

// CreateReview relies on the unique (client_id, freelancer_id) index for the
// one-review-per-pair rule; a duplicate create surfaces gorm.ErrDuplicatedKey.
func (s *GormReviewStor) CreateReview(review *smodel.Review) (*smodel.Review, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(review).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetReviewByID(review.ID)
}

func (s *GormReviewStor) GetReviewByID(reviewID int) (*smodel.Review, error) {
	var review smodel.Review
	err := s.db.Preload("Client.User").First(&review, reviewID).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return &review, nil
}

func (s *GormReviewStor) ListReviewsForFreelancer(freelancerID int) ([]smodel.Review, error) {
	var reviews []smodel.Review
	err := s.db.Preload("Client.User").
		Where("freelancer_id = ?", freelancerID).
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&reviews).Error
	return reviews, err
}

func (s *GormReviewStor) UpdateReview(review *smodel.Review, updates ReviewUpdate) (*smodel.Review, error) {
	changes := map[string]interface{}{}
	if updates.Rating != nil {
		changes["rating"] = *updates.Rating
	}
	if updates.Feedback != nil {
		changes["feedback"] = *updates.Feedback
	}

	if len(changes) == 0 {
		return review, nil
	}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(review).Updates(changes).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetReviewByID(review.ID)
}

// SoftDeleteReview keeps the row so the pair stays unique; a client cannot
// delete and re-post a review for the same freelancer.
func (s *GormReviewStor) SoftDeleteReview(reviewID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.Review{ID: reviewID}).Update("is_deleted", true).Error
	})
}
