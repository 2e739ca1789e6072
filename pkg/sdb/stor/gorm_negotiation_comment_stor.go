package stor

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormNegotiationCommentStor struct {
	db *gorm.DB
}

func NewGormNegotiationCommentStor(db *gorm.DB) *GormNegotiationCommentStor {
	return &GormNegotiationCommentStor{db: db}
}

func (s *GormNegotiationCommentStor) AddComment(comment *smodel.NegotiationComment) (*smodel.NegotiationComment, error) {
	if comment.Status == "" {
		comment.Status = smodel.CommentStatusPending
	}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(comment).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetCommentByID(comment.ID)
}

func (s *GormNegotiationCommentStor) GetCommentByID(commentID int) (*smodel.NegotiationComment, error) {
	var comment smodel.NegotiationComment
	if err := s.db.Preload("User").First(&comment, commentID).Error; err != nil {
		return nil, translateErr(err)
	}

	return &comment, nil
}

// ListComments returns all non-tombstoned comments in thread order.
func (s *GormNegotiationCommentStor) ListComments(negotiationID int) ([]smodel.NegotiationComment, error) {
	var comments []smodel.NegotiationComment
	err := s.db.Preload("User").
		Where("negotiation_id = ?", negotiationID).
		Where("status <> ?", smodel.CommentStatusDeleted).
		Order("created_at asc, id asc").
		Find(&comments).Error
	return comments, err
}

func (s *GormNegotiationCommentStor) UpdateCommentText(commentID int, text string) (*smodel.NegotiationComment, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.NegotiationComment{ID: commentID}).Update("comment", text).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetCommentByID(commentID)
}

func (s *GormNegotiationCommentStor) SetCommentStatus(commentID int, status string) (*smodel.NegotiationComment, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.NegotiationComment{ID: commentID}).Update("status", status).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetCommentByID(commentID)
}
