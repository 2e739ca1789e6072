package stor

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormCommunityStor struct {
	db *gorm.DB
}

func NewGormCommunityStor(db *gorm.DB) *GormCommunityStor {
	return &GormCommunityStor{db: db}
}

func (s *GormCommunityStor) CreatePost(post *smodel.CommunityPost) (*smodel.CommunityPost, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(post).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetPostByID(post.ID)
}

func (s *GormCommunityStor) GetPostByID(postID int) (*smodel.CommunityPost, error) {
	var post smodel.CommunityPost
	err := s.db.Preload("Owner").First(&post, postID).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return &post, nil
}

// ListPosts returns all posts when ownerID is zero, otherwise only that
// owner's posts.
func (s *GormCommunityStor) ListPosts(ownerID int) ([]smodel.CommunityPost, error) {
	var posts []smodel.CommunityPost

	query := s.db.Preload("Owner").Order("created_at desc")
	if ownerID != 0 {
		query = query.Where("owner_id = ?", ownerID)
	}

	err := query.Find(&posts).Error
	return posts, err
}

func (s *GormCommunityStor) UpdatePost(post *smodel.CommunityPost, description, attachments string) (*smodel.CommunityPost, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(post).Updates(map[string]interface{}{
			"description": description,
			"attachments": attachments,
		}).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetPostByID(post.ID)
}

// DeletePost removes the post together with its comments and likes.
func (s *GormCommunityStor) DeletePost(postID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&smodel.CommunityComment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("post_id = ?", postID).Delete(&smodel.CommunityLike{}).Error; err != nil {
			return err
		}

		return tx.Delete(&smodel.CommunityPost{}, postID).Error
	})
}

func (s *GormCommunityStor) AddComment(comment *smodel.CommunityComment) (*smodel.CommunityComment, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(comment).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetCommentByID(comment.ID)
}

func (s *GormCommunityStor) GetCommentByID(commentID int) (*smodel.CommunityComment, error) {
	var comment smodel.CommunityComment
	err := s.db.Preload("User").First(&comment, commentID).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return &comment, nil
}

func (s *GormCommunityStor) ListComments(postID int) ([]smodel.CommunityComment, error) {
	var comments []smodel.CommunityComment
	err := s.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at asc, id asc").
		Find(&comments).Error
	return comments, err
}

func (s *GormCommunityStor) UpdateCommentText(commentID int, text string) (*smodel.CommunityComment, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.CommunityComment{ID: commentID}).Update("comment", text).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetCommentByID(commentID)
}

func (s *GormCommunityStor) DeleteComment(commentID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Delete(&smodel.CommunityComment{}, commentID).Error
	})
}

// AddLike relies on the unique (post_id, user_id) index; liking twice
// surfaces gorm.ErrDuplicatedKey.
func (s *GormCommunityStor) AddLike(postID, userID int) (*smodel.CommunityLike, error) {
	like := &smodel.CommunityLike{PostID: postID, UserID: userID}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(like).Error
	})

	if err != nil {
		return nil, err
	}

	return like, nil
}

func (s *GormCommunityStor) RemoveLike(postID, userID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&smodel.CommunityLike{}).Error
	})
}

func (s *GormCommunityStor) ListLikes(postID int) ([]smodel.CommunityLike, error) {
	var likes []smodel.CommunityLike
	err := s.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at asc").
		Find(&likes).Error
	return likes, err
}
