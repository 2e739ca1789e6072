package service

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
)

// CommentService handles the floating comments on a negotiation. Comments
// thread through an optional parent and are tombstoned rather than deleted.
type CommentService struct {
	stors *stor.Stors
}

func NewCommentService(stors *stor.Stors) *CommentService {
	return &CommentService{stors: stors}
}

type AddCommentRequest struct {
	Comment  string `json:"comment"`
	ParentID *int   `json:"parent_id"`
}

func (s *CommentService) AddComment(user *smodel.User, negotiationID int, req AddCommentRequest) (*smodel.NegotiationComment, error) {
	partySet, err := s.stors.NegotiationStor.GetPartySet(negotiationID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if !canAccess(user, partySet) {
		return nil, ErrForbidden
	}

	if strings.TrimSpace(req.Comment) == "" {
		return nil, errors.Wrap(ErrValidation, "comment text is required")
	}

	if req.ParentID != nil {
		parent, err := s.stors.NegotiationCommentStor.GetCommentByID(*req.ParentID)
		if err != nil {
			return nil, translateStorErr(err)
		}

		if parent.NegotiationID != negotiationID {
			return nil, errors.Wrap(ErrValidation, "parent comment belongs to a different negotiation")
		}
	}

	return s.stors.NegotiationCommentStor.AddComment(&smodel.NegotiationComment{
		NegotiationID: negotiationID,
		UserID:        user.ID,
		ParentID:      req.ParentID,
		Comment:       req.Comment,
	})
}

func (s *CommentService) ListComments(user *smodel.User, negotiationID int) ([]smodel.NegotiationComment, error) {
	partySet, err := s.stors.NegotiationStor.GetPartySet(negotiationID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if !canAccess(user, partySet) {
		return nil, ErrForbidden
	}

	return s.stors.NegotiationCommentStor.ListComments(negotiationID)
}

// UpdateComment edits the text. Only the author can edit.
func (s *CommentService) UpdateComment(user *smodel.User, commentID int, text string) (*smodel.NegotiationComment, error) {
	comment, err := s.stors.NegotiationCommentStor.GetCommentByID(commentID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if comment.UserID != user.ID {
		return nil, ErrForbidden
	}

	if strings.TrimSpace(text) == "" {
		return nil, errors.Wrap(ErrValidation, "comment text is required")
	}

	return s.stors.NegotiationCommentStor.UpdateCommentText(commentID, text)
}

// DeleteComment tombstones the comment. The author or staff can delete.
func (s *CommentService) DeleteComment(user *smodel.User, commentID int) error {
	comment, err := s.stors.NegotiationCommentStor.GetCommentByID(commentID)
	if err != nil {
		return translateStorErr(err)
	}

	if comment.UserID != user.ID && !user.IsStaff {
		return ErrForbidden
	}

	_, err = s.stors.NegotiationCommentStor.SetCommentStatus(commentID, smodel.CommentStatusDeleted)
	return translateStorErr(err)
}

// ResolveComment marks a comment resolved. Any participant can resolve.
func (s *CommentService) ResolveComment(user *smodel.User, commentID int) (*smodel.NegotiationComment, error) {
	comment, err := s.stors.NegotiationCommentStor.GetCommentByID(commentID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	partySet, err := s.stors.NegotiationStor.GetPartySet(comment.NegotiationID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if !canAccess(user, partySet) {
		return nil, ErrForbidden
	}

	return s.stors.NegotiationCommentStor.SetCommentStatus(commentID, smodel.CommentStatusResolved)
}
