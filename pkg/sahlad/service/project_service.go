package service

import (
	"strings"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
)

// ProjectService turns agreed negotiations into projects and serves project
// reads. Parties are always derived from the owning negotiation, projects
// carry no party references of their own.
type ProjectService struct {
	stors *stor.Stors
}

func NewProjectService(stors *stor.Stors) *ProjectService {
	return &ProjectService{stors: stors}
}

type CreateProjectRequest struct {
	NegotiationID int    `json:"negotiation_id"`
	Title         string `json:"title"`
}

// CreateFromNegotiation creates the one project an agreed negotiation can
// have. The bargained phases are carried over as the project's milestone
// plan, and the negotiation moves to completed.
func (s *ProjectService) CreateFromNegotiation(user *smodel.User, req CreateProjectRequest) (*smodel.Project, error) {
	partySet, err := s.stors.NegotiationStor.GetPartySet(req.NegotiationID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if !canAccess(user, partySet) {
		return nil, ErrForbidden
	}

	negotiation, err := s.stors.NegotiationStor.GetNegotiationByID(req.NegotiationID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if negotiation.Status != smodel.NegotiationStatusAgreed {
		return nil, errors.Wrap(ErrConflict, "negotiation is not agreed")
	}

	if _, err := s.stors.ProjectStor.GetProjectByNegotiationID(req.NegotiationID); err == nil {
		return nil, errors.Wrap(ErrConflict, "negotiation already has a project")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = negotiation.ClientDescription
	}
	if title == "" {
		return nil, errors.Wrap(ErrValidation, "project title is required")
	}

	project, err := s.stors.ProjectStor.CreateProject(&smodel.Project{
		NegotiationID: req.NegotiationID,
		Title:         title,
	})
	if err != nil {
		return nil, translateStorErr(err)
	}

	// The agreed milestone plan becomes the project's phases.
	bargained, err := s.stors.NegotiationStor.ListPhases(req.NegotiationID)
	if err != nil {
		return nil, err
	}

	for _, phase := range bargained {
		_, err = s.stors.ProjectPhaseStor.CreatePhase(&smodel.ProjectPhase{
			ProjectID:    project.ID,
			Title:        phase.Title,
			Description:  phase.Description,
			Budget:       phase.Budget,
			Deliverables: phase.Deliverables,
		})
		if err != nil {
			return nil, err
		}
	}

	if _, err := s.stors.NegotiationStor.Complete(req.NegotiationID); err != nil {
		return nil, translateStorErr(err)
	}

	log.Infof("created project %d (%s) from negotiation %d", project.ID, project.Slug, req.NegotiationID)
	return project, nil
}

// ProjectDetail is a project with its phases and their deliverables.
type ProjectDetail struct {
	Project      *smodel.Project            `json:"project"`
	Phases       []smodel.ProjectPhase      `json:"phases"`
	Deliverables map[int][]smodel.Deliverable `json:"deliverables"`
}

func (s *ProjectService) GetProject(user *smodel.User, projectID int) (*ProjectDetail, error) {
	project, err := s.stors.ProjectStor.GetProjectByID(projectID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	return s.projectDetail(user, project)
}

func (s *ProjectService) GetProjectBySlug(user *smodel.User, slug string) (*ProjectDetail, error) {
	project, err := s.stors.ProjectStor.GetProjectBySlug(slug)
	if err != nil {
		return nil, translateStorErr(err)
	}

	return s.projectDetail(user, project)
}

func (s *ProjectService) projectDetail(user *smodel.User, project *smodel.Project) (*ProjectDetail, error) {
	partySet, err := s.stors.ProjectStor.GetPartySetForProject(project.ID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if !canAccess(user, partySet) {
		return nil, ErrForbidden
	}

	phases, err := s.stors.ProjectPhaseStor.ListPhases(project.ID)
	if err != nil {
		return nil, err
	}

	deliverables := map[int][]smodel.Deliverable{}
	for _, phase := range phases {
		items, err := s.stors.ProjectPhaseStor.ListDeliverables(phase.ID)
		if err != nil {
			return nil, err
		}
		if len(items) != 0 {
			deliverables[phase.ID] = items
		}
	}

	return &ProjectDetail{Project: project, Phases: phases, Deliverables: deliverables}, nil
}

func (s *ProjectService) ListProjectsForUser(user *smodel.User) ([]smodel.Project, error) {
	return s.stors.ProjectStor.ListProjectsForUser(user.ID)
}
