package stor

import (
	"errors"

	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

// ErrNotFound is returned by every stor when the requested record does not
// exist. Gorm implementations translate gorm.ErrRecordNotFound into it so
// callers never see driver errors for missing rows.
var ErrNotFound = errors.New("record not found")

// Party identifies which side of a negotiation an actor is on.
type Party int

const (
	PartyClient Party = iota
	PartyFreelancer
)

// PartySet is the precomputed authorization set for a negotiation or
// anything owned by one (project, project phase). It is resolvable in a
// single stor call so permission checks never walk the
// phase -> project -> negotiation -> profile chain themselves.
type PartySet struct {
	ClientID         int
	FreelancerID     int
	ClientUserID     int
	FreelancerUserID int
}

type UserStor interface {
	CreateUser(user *smodel.User) (*smodel.User, error)
	GetUserByID(userID int) (*smodel.User, error)
	GetUserByEmail(email string) (*smodel.User, error)
	UpdateUserPassword(userID int, hashedPassword string) error
	DeactivateUser(userID int) error
}

type ClientStor interface {
	CreateClient(client *smodel.Client) (*smodel.Client, error)
	GetClientByID(clientID int) (*smodel.Client, error)
	GetClientByUserID(userID int) (*smodel.Client, error)
	UpdateClient(client *smodel.Client, updates ClientUpdate) (*smodel.Client, error)
}

type FreelancerStor interface {
	CreateFreelancer(freelancer *smodel.Freelancer) (*smodel.Freelancer, error)
	GetFreelancerByID(freelancerID int) (*smodel.Freelancer, error)
	GetFreelancerByUserID(userID int) (*smodel.Freelancer, error)
	UpdateFreelancer(freelancer *smodel.Freelancer, updates FreelancerUpdate) (*smodel.Freelancer, error)
	UpdateFreelancerRate(freelancerID int, rate float64) error
}

type CompanyStor interface {
	CreateCompany(company *smodel.Company) (*smodel.Company, error)
	GetCompanyByID(companyID int) (*smodel.Company, error)
	GetCompanyByUserID(userID int) (*smodel.Company, error)
	UpdateCompany(company *smodel.Company, updates CompanyUpdate) (*smodel.Company, error)
}

type RequestStor interface {
	CreateRequest(request *smodel.Request) (*smodel.Request, error)
	GetRequestByID(requestID int) (*smodel.Request, error)
	ListRequests() ([]smodel.Request, error)
	ListRequestsForClient(clientID int) ([]smodel.Request, error)
	UpdateRequest(request *smodel.Request, updates RequestUpdate) (*smodel.Request, error)
	CancelRequest(requestID int) error
}

type NegotiationStor interface {
	CreateNegotiation(negotiation *smodel.Negotiation) (*smodel.Negotiation, error)
	GetNegotiationByID(negotiationID int) (*smodel.Negotiation, error)
	GetPartySet(negotiationID int) (*PartySet, error)

	// Agree is an atomic read-modify-write: the flag update and the
	// both-flags-set status transition happen in one transaction so two
	// concurrent calls cannot both observe stale flags.
	Agree(negotiationID int, party Party) (*smodel.Negotiation, error)
	Decline(negotiationID int, declinedByUserID int, reason string) (*smodel.Negotiation, error)
	Complete(negotiationID int) (*smodel.Negotiation, error)

	AddPhase(phase *smodel.NegotiationPhase) (*smodel.NegotiationPhase, error)
	GetPhaseByID(phaseID int) (*smodel.NegotiationPhase, error)
	ListPhases(negotiationID int) ([]smodel.NegotiationPhase, error)
	UpdatePhase(phase *smodel.NegotiationPhase, updates NegotiationPhaseUpdate) (*smodel.NegotiationPhase, error)
	DeletePhase(phaseID int) error

	CountByStatuses(statuses []string) (int64, error)
}

type NegotiationCommentStor interface {
	AddComment(comment *smodel.NegotiationComment) (*smodel.NegotiationComment, error)
	GetCommentByID(commentID int) (*smodel.NegotiationComment, error)
	ListComments(negotiationID int) ([]smodel.NegotiationComment, error)
	UpdateCommentText(commentID int, text string) (*smodel.NegotiationComment, error)
	SetCommentStatus(commentID int, status string) (*smodel.NegotiationComment, error)
}

type ProjectStor interface {
	CreateProject(project *smodel.Project) (*smodel.Project, error)
	GetProjectByID(projectID int) (*smodel.Project, error)
	GetProjectBySlug(slug string) (*smodel.Project, error)
	GetProjectByNegotiationID(negotiationID int) (*smodel.Project, error)
	ListProjectsForUser(userID int) ([]smodel.Project, error)
	GetPartySetForProject(projectID int) (*PartySet, error)
	CountByNegotiationStatus(declined bool) (int64, error)
}

type ProjectPhaseStor interface {
	CreatePhase(phase *smodel.ProjectPhase) (*smodel.ProjectPhase, error)
	GetPhaseByID(phaseID int) (*smodel.ProjectPhase, error)

	// ListPhases excludes soft-deleted phases.
	ListPhases(projectID int) ([]smodel.ProjectPhase, error)
	UpdatePhase(phase *smodel.ProjectPhase, updates ProjectPhaseUpdate) (*smodel.ProjectPhase, error)
	SetPhaseStatus(phaseID int, status string) (*smodel.ProjectPhase, error)
	SoftDeletePhase(phaseID int) error

	// NextPhase returns the earliest non-deleted phase of the same project
	// created strictly after the given phase, or ErrNotFound.
	NextPhase(phase *smodel.ProjectPhase) (*smodel.ProjectPhase, error)
	GetPartySetForPhase(phaseID int) (*PartySet, error)

	AddDeliverable(deliverable *smodel.Deliverable) (*smodel.Deliverable, error)
	ListDeliverables(phaseID int) ([]smodel.Deliverable, error)
}

type ReviewStor interface {
	CreateReview(review *smodel.Review) (*smodel.Review, error)
	GetReviewByID(reviewID int) (*smodel.Review, error)
	ListReviewsForFreelancer(freelancerID int) ([]smodel.Review, error)
	UpdateReview(review *smodel.Review, updates ReviewUpdate) (*smodel.Review, error)
	SoftDeleteReview(reviewID int) error
}

type MediaFileStor interface {
	CreateMediaFile(media *smodel.MediaFile) (*smodel.MediaFile, error)
	GetMediaFileByID(mediaID int) (*smodel.MediaFile, error)
	ListMediaForEntity(entityType string, entityID int) ([]smodel.MediaFile, error)
	SoftDeleteMediaFile(mediaID int) error
}

type ReportStor interface {
	CreateReport(report *smodel.Report) (*smodel.Report, error)
	GetReportByID(reportID int) (*smodel.Report, error)
	ListReports() ([]smodel.Report, error)
	ListReportsForUser(reporterID int) ([]smodel.Report, error)
	ResolveReport(reportID int) (*smodel.Report, error)
}

type NotificationStor interface {
	CreateNotification(notification *smodel.Notification) (*smodel.Notification, error)
	GetNotificationByID(notificationID int) (*smodel.Notification, error)
	ListNotificationsForUser(receiverID int) ([]smodel.Notification, error)
	MarkNotificationSeen(notificationID int) (*smodel.Notification, error)
}

type HelpStor interface {
	CreateHelpTicket(ticket *smodel.HelpTicket) (*smodel.HelpTicket, error)
	GetHelpTicketByID(ticketID int) (*smodel.HelpTicket, error)
	ListHelpTicketsForUser(userID int) ([]smodel.HelpTicket, error)
	ResolveHelpTicket(ticketID int) (*smodel.HelpTicket, error)
}

type OfferStor interface {
	CreateOffer(offer *smodel.Offer) (*smodel.Offer, error)
	GetOfferByID(offerID int) (*smodel.Offer, error)
	ListOffers() ([]smodel.Offer, error)
	ListOffersForCompany(companyID int) ([]smodel.Offer, error)
	UpdateOffer(offer *smodel.Offer, updates OfferUpdate) (*smodel.Offer, error)
	DeleteOffer(offerID int) error
	CountOffers() (int64, error)
}

type CommunityStor interface {
	CreatePost(post *smodel.CommunityPost) (*smodel.CommunityPost, error)
	GetPostByID(postID int) (*smodel.CommunityPost, error)
	ListPosts(ownerID int) ([]smodel.CommunityPost, error)
	UpdatePost(post *smodel.CommunityPost, description, attachments string) (*smodel.CommunityPost, error)
	DeletePost(postID int) error

	AddComment(comment *smodel.CommunityComment) (*smodel.CommunityComment, error)
	GetCommentByID(commentID int) (*smodel.CommunityComment, error)
	ListComments(postID int) ([]smodel.CommunityComment, error)
	UpdateCommentText(commentID int, text string) (*smodel.CommunityComment, error)
	DeleteComment(commentID int) error

	AddLike(postID, userID int) (*smodel.CommunityLike, error)
	RemoveLike(postID, userID int) error
	ListLikes(postID int) ([]smodel.CommunityLike, error)
}

type CatalogStor interface {
	CreateFAQ(faq *smodel.FAQ) (*smodel.FAQ, error)
	GetFAQByID(faqID int) (*smodel.FAQ, error)
	ListFAQs() ([]smodel.FAQ, error)
	UpdateFAQ(faq *smodel.FAQ, question, answer string) (*smodel.FAQ, error)
	DeleteFAQ(faqID int) error

	CreateSkill(name string) (*smodel.Skill, error)
	ListSkills() ([]smodel.Skill, error)
	CreateCategory(name string) (*smodel.Category, error)
	ListCategories() ([]smodel.Category, error)
}

type StatsStor interface {
	CountUsersByRole() (map[string]int64, error)
	CountActiveRequests() (int64, error)
}

type Stors struct {
	UserStor               UserStor
	ClientStor             ClientStor
	FreelancerStor         FreelancerStor
	CompanyStor            CompanyStor
	RequestStor            RequestStor
	NegotiationStor        NegotiationStor
	NegotiationCommentStor NegotiationCommentStor
	ProjectStor            ProjectStor
	ProjectPhaseStor       ProjectPhaseStor
	ReviewStor             ReviewStor
	MediaFileStor          MediaFileStor
	ReportStor             ReportStor
	NotificationStor       NotificationStor
	HelpStor               HelpStor
	OfferStor              OfferStor
	CommunityStor          CommunityStor
	CatalogStor            CatalogStor
	StatsStor              StatsStor
}

func NewGormStors(db *gorm.DB) *Stors {
	return &Stors{
		UserStor:               NewGormUserStor(db),
		ClientStor:             NewGormClientStor(db),
		FreelancerStor:         NewGormFreelancerStor(db),
		CompanyStor:            NewGormCompanyStor(db),
		RequestStor:            NewGormRequestStor(db),
		NegotiationStor:        NewGormNegotiationStor(db),
		NegotiationCommentStor: NewGormNegotiationCommentStor(db),
		ProjectStor:            NewGormProjectStor(db),
		ProjectPhaseStor:       NewGormProjectPhaseStor(db),
		ReviewStor:             NewGormReviewStor(db),
		MediaFileStor:          NewGormMediaFileStor(db),
		ReportStor:             NewGormReportStor(db),
		NotificationStor:       NewGormNotificationStor(db),
		HelpStor:               NewGormHelpStor(db),
		OfferStor:              NewGormOfferStor(db),
		CommunityStor:          NewGormCommunityStor(db),
		CatalogStor:            NewGormCatalogStor(db),
		StatsStor:              NewGormStatsStor(db),
	}
}
