package stor

import (
	"errors"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/hashicorp/go-uuid"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormProjectStor struct {
	db *gorm.DB
}

func NewGormProjectStor(db *gorm.DB) *GormProjectStor {
	return &GormProjectStor{db: db}
}

// CreateProject creates a project for a negotiation. The one-to-one is
// enforced by the unique index on negotiation_id; a second create for the
// same negotiation fails.
func (s *GormProjectStor) CreateProject(project *smodel.Project) (*smodel.Project, error) {
	var err error

	if project.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	if project.Status == "" {
		project.Status = smodel.ProjectStatusInProgress
	}

	slugOfTitle := slug.Make(project.Title)
	project.Slug = slugOfTitle
	slugNext := 1

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
	CreateLoop:
		for {
			err := tx.Create(project).Error
			switch {
			case err == nil:
				break CreateLoop
			case errors.Is(err, gorm.ErrDuplicatedKey) && slugTaken(tx, project.Slug):
				// Slug collision. Add an incrementing integer and try again.
				project.Slug = fmt.Sprintf("%s-%d", slugOfTitle, slugNext)
				slugNext = slugNext + 1
			default:
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return s.GetProjectByID(project.ID)
}

func slugTaken(tx *gorm.DB, candidate string) bool {
	var count int64
	tx.Model(&smodel.Project{}).Where("slug = ?", candidate).Count(&count)
	return count != 0
}

func (s *GormProjectStor) GetProjectByID(projectID int) (*smodel.Project, error) {
	var project smodel.Project
	err := s.db.Preload("Negotiation.Client.User").
		Preload("Negotiation.Freelancer.User").
		First(&project, projectID).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return &project, nil
}

func (s *GormProjectStor) GetProjectBySlug(slug string) (*smodel.Project, error) {
	var project smodel.Project
	err := s.db.Preload("Negotiation.Client.User").
		Preload("Negotiation.Freelancer.User").
		Where("slug = ?", slug).
		First(&project).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return &project, nil
}

func (s *GormProjectStor) GetProjectByNegotiationID(negotiationID int) (*smodel.Project, error) {
	var project smodel.Project
	err := s.db.Where("negotiation_id = ?", negotiationID).First(&project).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return &project, nil
}

func (s *GormProjectStor) ListProjectsForUser(userID int) ([]smodel.Project, error) {
	var projects []smodel.Project

	err := s.db.Preload("Negotiation.Client.User").
		Preload("Negotiation.Freelancer.User").
		Where(`negotiation_id in (select id from negotiations
			where client_id in (select id from clients where user_id = ?)
			or freelancer_id in (select id from freelancers where user_id = ?))`, userID, userID).
		Order("created_at desc").
		Find(&projects).Error
	return projects, err
}

func (s *GormProjectStor) GetPartySetForProject(projectID int) (*PartySet, error) {
	var project smodel.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		return nil, translateErr(err)
	}

	return partySetForNegotiation(s.db, project.NegotiationID)
}

// CountByNegotiationStatus counts projects whose owning negotiation is (or
// is not) declined, for the admin stats endpoint.
func (s *GormProjectStor) CountByNegotiationStatus(declined bool) (int64, error) {
	op := "="
	if !declined {
		op = "<>"
	}

	var count int64
	err := s.db.Model(&smodel.Project{}).
		Where(fmt.Sprintf("negotiation_id in (select id from negotiations where status %s ?)", op),
			smodel.NegotiationStatusDeclined).
		Count(&count).Error
	return count, err
}
