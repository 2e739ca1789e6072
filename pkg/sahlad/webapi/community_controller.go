package webapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sahlad/webapi/apimiddleware"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
	"gorm.io/gorm"
)

type CommunityController struct {
	stors *stor.Stors
}

func NewCommunityController(stors *stor.Stors) *CommunityController {
	return &CommunityController{stors: stors}
}

func (c *CommunityController) CreatePost(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	var req struct {
		Description string `json:"description"`
		Attachments string `json:"attachments"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if req.Description == "" {
		return jsonError(ctx, errors.Wrap(service.ErrValidation, "description is required"))
	}

	post, err := c.stors.CommunityStor.CreatePost(&smodel.CommunityPost{
		OwnerID:     user.ID,
		Description: req.Description,
		Attachments: req.Attachments,
	})
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, post)
}

// ListPosts serves the whole feed, or one user's posts with ?owner_id=.
func (c *CommunityController) ListPosts(ctx echo.Context) error {
	ownerID := 0
	if v := ctx.QueryParam("owner_id"); v != "" {
		var err error
		if ownerID, err = strconv.Atoi(v); err != nil {
			return echo.ErrBadRequest
		}
	}

	posts, err := c.stors.CommunityStor.ListPosts(ownerID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, posts)
}

func (c *CommunityController) GetPost(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	post, err := c.stors.CommunityStor.GetPostByID(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, post)
}

func (c *CommunityController) UpdatePost(ctx echo.Context) error {
	post, err := c.ownedPost(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	var req struct {
		Description string `json:"description"`
		Attachments string `json:"attachments"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	updated, err := c.stors.CommunityStor.UpdatePost(post, req.Description, req.Attachments)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (c *CommunityController) DeletePost(ctx echo.Context) error {
	post, err := c.ownedPost(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := c.stors.CommunityStor.DeletePost(post.ID); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *CommunityController) AddComment(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	if _, err := c.stors.CommunityStor.GetPostByID(postID); err != nil {
		return jsonError(ctx, err)
	}

	var req struct {
		Comment  string `json:"comment"`
		ParentID *int   `json:"parent_id"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if req.Comment == "" {
		return jsonError(ctx, errors.Wrap(service.ErrValidation, "comment text is required"))
	}

	comment, err := c.stors.CommunityStor.AddComment(&smodel.CommunityComment{
		PostID:   postID,
		UserID:   user.ID,
		ParentID: req.ParentID,
		Comment:  req.Comment,
	})
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, comment)
}

func (c *CommunityController) ListComments(ctx echo.Context) error {
	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	comments, err := c.stors.CommunityStor.ListComments(postID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, comments)
}

func (c *CommunityController) UpdateComment(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	commentID, err := strconv.Atoi(ctx.Param("comment_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	comment, err := c.stors.CommunityStor.GetCommentByID(commentID)
	if err != nil {
		return jsonError(ctx, err)
	}

	if comment.UserID != user.ID {
		return jsonError(ctx, service.ErrForbidden)
	}

	var req struct {
		Comment string `json:"comment"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	updated, err := c.stors.CommunityStor.UpdateCommentText(commentID, req.Comment)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (c *CommunityController) DeleteComment(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	commentID, err := strconv.Atoi(ctx.Param("comment_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	comment, err := c.stors.CommunityStor.GetCommentByID(commentID)
	if err != nil {
		return jsonError(ctx, err)
	}

	if comment.UserID != user.ID && !user.IsStaff {
		return jsonError(ctx, service.ErrForbidden)
	}

	if err := c.stors.CommunityStor.DeleteComment(commentID); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *CommunityController) LikePost(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	if _, err := c.stors.CommunityStor.GetPostByID(postID); err != nil {
		return jsonError(ctx, err)
	}

	like, err := c.stors.CommunityStor.AddLike(postID, user.ID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return jsonError(ctx, errors.Wrap(service.ErrConflict, "already liked"))
	}
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, like)
}

func (c *CommunityController) UnlikePost(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	if err := c.stors.CommunityStor.RemoveLike(postID, user.ID); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *CommunityController) ListLikes(ctx echo.Context) error {
	postID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	likes, err := c.stors.CommunityStor.ListLikes(postID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, likes)
}

func (c *CommunityController) ownedPost(ctx echo.Context) (*smodel.CommunityPost, error) {
	user := apimiddleware.GetUser(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, service.ErrNotFound
	}

	post, err := c.stors.CommunityStor.GetPostByID(id)
	if err != nil {
		return nil, err
	}

	if post.OwnerID != user.ID && !user.IsStaff {
		return nil, service.ErrForbidden
	}

	return post, nil
}
