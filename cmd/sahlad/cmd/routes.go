package cmd

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sahla-platform/sahla/pkg/fstore"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sahlad/webapi"
	"github.com/sahla-platform/sahla/pkg/sahlad/webapi/apimiddleware"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
)

type RouteOpts struct {
	stors              *stor.Stors
	jwtSecret          string
	fileStore          *fstore.LocalStore
	accountService     *service.AccountService
	negotiationService *service.NegotiationService
	commentService     *service.CommentService
	projectService     *service.ProjectService
	phaseService       *service.PhaseService
}

func setupRoutes(e *echo.Echo, opts RouteOpts) {
	g := e.Group("/api")

	g.Use(apimiddleware.TokenAuth(apimiddleware.TokenAuthConfig{
		Skipper: func(c echo.Context) bool {
			// Registration, login and the public catalog don't require a token.
			switch {
			case strings.HasPrefix(c.Path(), "/api/auth/"):
				return true
			case c.Request().Method == "GET" && strings.HasPrefix(c.Path(), "/api/catalog/"):
				return true
			default:
				return false
			}
		},
		Secret:      opts.jwtSecret,
		GetUserByID: opts.stors.UserStor.GetUserByID,
	}))

	authController := webapi.NewAuthController(opts.accountService, opts.jwtSecret)
	g.POST("/auth/register/freelancer", authController.RegisterFreelancer)
	g.POST("/auth/register/client", authController.RegisterClient)
	g.POST("/auth/register/company", authController.RegisterCompany)
	g.POST("/auth/login", authController.Login)
	g.POST("/auth/logout", authController.Logout)

	profileController := webapi.NewProfileController(opts.stors, opts.accountService)
	g.GET("/freelancers/:id", profileController.GetFreelancer)
	g.PUT("/freelancers/:id", profileController.UpdateFreelancer)
	g.GET("/clients/:id", profileController.GetClient)
	g.PUT("/clients/:id", profileController.UpdateClient)
	g.GET("/companies/:id", profileController.GetCompany)
	g.PUT("/companies/:id", profileController.UpdateCompany)
	g.PUT("/users/password", profileController.UpdatePassword)
	g.DELETE("/users/:id", profileController.DeactivateUser)

	requestController := webapi.NewRequestController(opts.stors)
	g.GET("/requests", requestController.ListRequests)
	g.POST("/requests", requestController.CreateRequest)
	g.GET("/requests/client/:client_id", requestController.ListRequestsForClient)
	g.GET("/requests/:id", requestController.GetRequest)
	g.PUT("/requests/:id", requestController.UpdateRequest)
	g.DELETE("/requests/:id", requestController.CancelRequest)

	negotiationController := webapi.NewNegotiationController(opts.negotiationService)
	g.POST("/negotiations/directhire", negotiationController.CreateDirectHire)
	g.POST("/negotiations/from-request", negotiationController.CreateFromRequest)
	g.GET("/negotiations/:id", negotiationController.GetNegotiation)
	g.POST("/negotiations/:id/agree", negotiationController.Agree)
	g.POST("/negotiations/:id/decline", negotiationController.Decline)
	g.DELETE("/negotiations/:id", negotiationController.Decline)
	g.POST("/negotiations/:id/phases", negotiationController.AddPhase)
	g.PUT("/negotiations/phases/:phase_id", negotiationController.UpdatePhase)
	g.DELETE("/negotiations/phases/:phase_id", negotiationController.DeletePhase)

	commentController := webapi.NewCommentController(opts.commentService)
	g.GET("/negotiations/:id/comments", commentController.ListComments)
	g.POST("/negotiations/:id/comments", commentController.AddComment)
	g.PUT("/negotiations/comments/:comment_id", commentController.UpdateComment)
	g.DELETE("/negotiations/comments/:comment_id", commentController.DeleteComment)
	g.POST("/negotiations/comments/:comment_id/resolve", commentController.ResolveComment)

	projectController := webapi.NewProjectController(opts.projectService, opts.phaseService)
	g.GET("/projects", projectController.ListProjects)
	g.POST("/projects", projectController.CreateProject)
	g.GET("/projects/:id", projectController.GetProject)
	g.GET("/projects/:id/phases", projectController.ListPhases)
	g.POST("/projects/:id/phases", projectController.AddPhase)
	g.PUT("/projects/phases/:phase_id", projectController.UpdatePhase)
	g.DELETE("/projects/phases/:phase_id", projectController.DeletePhase)
	g.POST("/projects/phases/:phase_id/start", projectController.StartPhase)
	g.POST("/projects/phases/:phase_id/submit", projectController.SubmitPhase)
	g.POST("/projects/phases/:phase_id/approve", projectController.ApprovePhase)
	g.POST("/projects/phases/:phase_id/reject", projectController.RejectPhase)
	g.POST("/projects/phases/:phase_id/next", projectController.NextPhase)
	g.GET("/projects/phases/:phase_id/deliverables", projectController.ListDeliverables)

	reviewController := webapi.NewReviewController(opts.stors)
	g.POST("/reviews", reviewController.CreateReview)
	g.GET("/reviews/freelancer/:freelancer_id", reviewController.ListReviewsForFreelancer)
	g.PUT("/reviews/:id", reviewController.UpdateReview)
	g.DELETE("/reviews/:id", reviewController.DeleteReview)

	mediaController := webapi.NewMediaController(opts.stors, opts.fileStore)
	g.POST("/media", mediaController.UploadMedia)
	g.GET("/media/:entity_type/:entity_id", mediaController.ListMedia)
	g.DELETE("/media/:id", mediaController.DeleteMedia)

	communityController := webapi.NewCommunityController(opts.stors)
	g.GET("/community/posts", communityController.ListPosts)
	g.POST("/community/posts", communityController.CreatePost)
	g.GET("/community/posts/:id", communityController.GetPost)
	g.PUT("/community/posts/:id", communityController.UpdatePost)
	g.DELETE("/community/posts/:id", communityController.DeletePost)
	g.GET("/community/posts/:id/comments", communityController.ListComments)
	g.POST("/community/posts/:id/comments", communityController.AddComment)
	g.PUT("/community/comments/:comment_id", communityController.UpdateComment)
	g.DELETE("/community/comments/:comment_id", communityController.DeleteComment)
	g.GET("/community/posts/:id/likes", communityController.ListLikes)
	g.POST("/community/posts/:id/likes", communityController.LikePost)
	g.DELETE("/community/posts/:id/likes", communityController.UnlikePost)

	offerController := webapi.NewOfferController(opts.stors)
	g.GET("/offers", offerController.ListOffers)
	g.POST("/offers", offerController.CreateOffer)
	g.GET("/offers/company/:company_id", offerController.ListOffersForCompany)
	g.GET("/offers/:id", offerController.GetOffer)
	g.PUT("/offers/:id", offerController.UpdateOffer)
	g.DELETE("/offers/:id", offerController.DeleteOffer)

	reportController := webapi.NewReportController(opts.stors)
	g.POST("/reports", reportController.CreateReport)
	g.GET("/reports/mine", reportController.ListMyReports)

	notificationController := webapi.NewNotificationController(opts.stors)
	g.GET("/notifications", notificationController.ListNotifications)
	g.POST("/notifications/:id/seen", notificationController.MarkSeen)

	helpController := webapi.NewHelpController(opts.stors)
	g.POST("/help", helpController.CreateTicket)
	g.GET("/help/mine", helpController.ListMyTickets)

	catalogController := webapi.NewCatalogController(opts.stors)
	g.GET("/catalog/faqs", catalogController.ListFAQs)
	g.GET("/catalog/skills", catalogController.ListSkills)
	g.GET("/catalog/categories", catalogController.ListCategories)

	adminController := webapi.NewAdminController(opts.stors)
	admin := g.Group("/admin", webapi.RequireStaff)
	admin.GET("/stats", adminController.GetStats)
	admin.GET("/reports", adminController.ListReports)
	admin.POST("/reports/:id/resolve", adminController.ResolveReport)
	admin.POST("/help/:id/resolve", adminController.ResolveHelpTicket)
	admin.POST("/faqs", adminController.CreateFAQ)
	admin.PUT("/faqs/:id", adminController.UpdateFAQ)
	admin.DELETE("/faqs/:id", adminController.DeleteFAQ)
	admin.POST("/skills", adminController.CreateSkill)
	admin.POST("/categories", adminController.CreateCategory)
}
