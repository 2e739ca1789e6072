package webapi

import (
	"net/http"
	"strconv"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sahlad/webapi/apimiddleware"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
	"gorm.io/gorm"
)

type ReviewController struct {
	stors *stor.Stors
}

func NewReviewController(stors *stor.Stors) *ReviewController {
	return &ReviewController{stors: stors}
}

func (c *ReviewController) CreateReview(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	client, err := c.stors.ClientStor.GetClientByUserID(user.ID)
	if err != nil {
		return jsonError(ctx, errors.Wrap(service.ErrForbidden, "only clients can review freelancers"))
	}

	var req struct {
		FreelancerID int    `json:"freelancer_id"`
		Rating       int    `json:"rating"`
		Feedback     string `json:"feedback"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if req.Rating < 1 || req.Rating > 5 {
		return jsonError(ctx, errors.Wrap(service.ErrValidation, "rating must be between 1 and 5"))
	}

	if _, err := c.stors.FreelancerStor.GetFreelancerByID(req.FreelancerID); err != nil {
		return jsonError(ctx, err)
	}

	review, err := c.stors.ReviewStor.CreateReview(&smodel.Review{
		ClientID:     client.ID,
		FreelancerID: req.FreelancerID,
		Rating:       req.Rating,
		Feedback:     req.Feedback,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return jsonError(ctx, errors.Wrap(service.ErrConflict, "you already reviewed this freelancer"))
	}
	if err != nil {
		return jsonError(ctx, err)
	}

	c.refreshFreelancerRate(review.FreelancerID)

	return ctx.JSON(http.StatusCreated, review)
}

// refreshFreelancerRate recomputes the freelancer's average rating from the
// live reviews. Failures don't fail the request that triggered the refresh.
func (c *ReviewController) refreshFreelancerRate(freelancerID int) {
	reviews, err := c.stors.ReviewStor.ListReviewsForFreelancer(freelancerID)
	if err != nil {
		log.Errorf("failed refreshing rate for freelancer %d: %s", freelancerID, err)
		return
	}

	var rate float64
	if len(reviews) != 0 {
		total := 0
		for _, review := range reviews {
			total += review.Rating
		}
		rate = float64(total) / float64(len(reviews))
	}

	if err := c.stors.FreelancerStor.UpdateFreelancerRate(freelancerID, rate); err != nil {
		log.Errorf("failed storing rate for freelancer %d: %s", freelancerID, err)
	}
}

func (c *ReviewController) ListReviewsForFreelancer(ctx echo.Context) error {
	freelancerID, err := strconv.Atoi(ctx.Param("freelancer_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	reviews, err := c.stors.ReviewStor.ListReviewsForFreelancer(freelancerID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, reviews)
}

func (c *ReviewController) UpdateReview(ctx echo.Context) error {
	review, err := c.ownedReview(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	var updates stor.ReviewUpdate
	if err := ctx.Bind(&updates); err != nil {
		return err
	}

	if updates.Rating != nil && (*updates.Rating < 1 || *updates.Rating > 5) {
		return jsonError(ctx, errors.Wrap(service.ErrValidation, "rating must be between 1 and 5"))
	}

	updated, err := c.stors.ReviewStor.UpdateReview(review, updates)
	if err != nil {
		return jsonError(ctx, err)
	}

	c.refreshFreelancerRate(updated.FreelancerID)

	return ctx.JSON(http.StatusOK, updated)
}

func (c *ReviewController) DeleteReview(ctx echo.Context) error {
	review, err := c.ownedReview(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := c.stors.ReviewStor.SoftDeleteReview(review.ID); err != nil {
		return jsonError(ctx, err)
	}

	c.refreshFreelancerRate(review.FreelancerID)

	return ctx.NoContent(http.StatusNoContent)
}

func (c *ReviewController) ownedReview(ctx echo.Context) (*smodel.Review, error) {
	user := apimiddleware.GetUser(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, service.ErrNotFound
	}

	review, err := c.stors.ReviewStor.GetReviewByID(id)
	if err != nil {
		return nil, err
	}

	if user.IsStaff {
		return review, nil
	}

	if review.Client == nil || review.Client.UserID != user.ID {
		return nil, service.ErrForbidden
	}

	return review, nil
}
