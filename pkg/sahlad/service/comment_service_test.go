package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentThread(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	root, err := tc.commentService.AddComment(tc.clientUser, negotiation.ID, AddCommentRequest{
		Comment: "Can we lower the budget on phase two?",
	})
	require.NoError(t, err)
	assert.Equal(t, smodel.CommentStatusPending, root.Status)

	reply, err := tc.commentService.AddComment(tc.freelancerUser, negotiation.ID, AddCommentRequest{
		Comment:  "Only if the deadline moves too.",
		ParentID: &root.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, root.ID, *reply.ParentID)

	comments, err := tc.commentService.ListComments(tc.clientUser, negotiation.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestCommentGuards(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	_, err := tc.commentService.AddComment(tc.otherUser, negotiation.ID, AddCommentRequest{Comment: "hi"})
	assert.True(t, errors.Is(err, ErrForbidden))

	_, err = tc.commentService.ListComments(tc.otherUser, negotiation.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	_, err = tc.commentService.AddComment(tc.clientUser, negotiation.ID, AddCommentRequest{Comment: "  "})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestOnlyAuthorEditsComment(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	comment, err := tc.commentService.AddComment(tc.clientUser, negotiation.ID, AddCommentRequest{Comment: "original"})
	require.NoError(t, err)

	_, err = tc.commentService.UpdateComment(tc.freelancerUser, comment.ID, "hijacked")
	assert.True(t, errors.Is(err, ErrForbidden))

	updated, err := tc.commentService.UpdateComment(tc.clientUser, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Comment)
}

func TestDeletedCommentsAreTombstoned(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	comment, err := tc.commentService.AddComment(tc.clientUser, negotiation.ID, AddCommentRequest{Comment: "remove me"})
	require.NoError(t, err)

	// The author or staff may delete, others may not.
	err = tc.commentService.DeleteComment(tc.freelancerUser, comment.ID)
	assert.True(t, errors.Is(err, ErrForbidden))

	require.NoError(t, tc.commentService.DeleteComment(tc.clientUser, comment.ID))

	comments, err := tc.commentService.ListComments(tc.clientUser, negotiation.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 0)

	// The row is still there, status deleted.
	stored, err := tc.stors.NegotiationCommentStor.GetCommentByID(comment.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.CommentStatusDeleted, stored.Status)
}

func TestResolveComment(t *testing.T) {
	tc := newTestCase(t)
	negotiation := tc.createNegotiation()

	comment, err := tc.commentService.AddComment(tc.clientUser, negotiation.ID, AddCommentRequest{Comment: "resolved soon"})
	require.NoError(t, err)

	resolved, err := tc.commentService.ResolveComment(tc.freelancerUser, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, smodel.CommentStatusResolved, resolved.Status)
}
