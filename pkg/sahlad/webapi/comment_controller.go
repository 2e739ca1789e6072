package webapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sahlad/webapi/apimiddleware"
)

type CommentController struct {
	commentService *service.CommentService
}

func NewCommentController(commentService *service.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

func (c *CommentController) ListComments(ctx echo.Context) error {
	negotiationID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	comments, err := c.commentService.ListComments(apimiddleware.GetUser(ctx), negotiationID)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, comments)
}

func (c *CommentController) AddComment(ctx echo.Context) error {
	negotiationID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	var req service.AddCommentRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	comment, err := c.commentService.AddComment(apimiddleware.GetUser(ctx), negotiationID, req)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, comment)
}

func (c *CommentController) UpdateComment(ctx echo.Context) error {
	commentID, err := strconv.Atoi(ctx.Param("comment_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	var req struct {
		Comment string `json:"comment"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	comment, err := c.commentService.UpdateComment(apimiddleware.GetUser(ctx), commentID, req.Comment)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, comment)
}

func (c *CommentController) DeleteComment(ctx echo.Context) error {
	commentID, err := strconv.Atoi(ctx.Param("comment_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	if err := c.commentService.DeleteComment(apimiddleware.GetUser(ctx), commentID); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *CommentController) ResolveComment(ctx echo.Context) error {
	commentID, err := strconv.Atoi(ctx.Param("comment_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	comment, err := c.commentService.ResolveComment(apimiddleware.GetUser(ctx), commentID)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, comment)
}
