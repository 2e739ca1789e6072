package service

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
	"github.com/shopspring/decimal"
)

// PhaseService drives the project phase state machine:
//
//	pending -> in_progress -> waiting_client_review -> done
//	                ^                    |
//	                +------- reject -----+
//
// The freelancer starts and submits, the client approves, rejects and
// advances to the next phase; staff may drive any transition. Transitions
// from any other state are conflicts.
type PhaseService struct {
	stors *stor.Stors
}

func NewPhaseService(stors *stor.Stors) *PhaseService {
	return &PhaseService{stors: stors}
}

type AddProjectPhaseRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Budget        decimal.Decimal `json:"budget"`
	EstimatedDays int             `json:"estimated_days"`
	Deliverables  string          `json:"deliverables"`
}

func (s *PhaseService) AddPhase(user *smodel.User, projectID int, req AddProjectPhaseRequest) (*smodel.ProjectPhase, error) {
	partySet, err := s.stors.ProjectStor.GetPartySetForProject(projectID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if !canAccess(user, partySet) {
		return nil, ErrForbidden
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.Wrap(ErrValidation, "phase title is required")
	}

	return s.stors.ProjectPhaseStor.CreatePhase(&smodel.ProjectPhase{
		ProjectID:     projectID,
		Title:         req.Title,
		Description:   req.Description,
		Budget:        req.Budget,
		EstimatedDays: req.EstimatedDays,
		Deliverables:  req.Deliverables,
	})
}

func (s *PhaseService) ListPhases(user *smodel.User, projectID int) ([]smodel.ProjectPhase, error) {
	partySet, err := s.stors.ProjectStor.GetPartySetForProject(projectID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if !canAccess(user, partySet) {
		return nil, ErrForbidden
	}

	return s.stors.ProjectPhaseStor.ListPhases(projectID)
}

func (s *PhaseService) UpdatePhase(user *smodel.User, phaseID int, updates stor.ProjectPhaseUpdate) (*smodel.ProjectPhase, error) {
	phase, _, err := s.guardedPhase(user, phaseID)
	if err != nil {
		return nil, err
	}

	if phase.Status == smodel.PhaseStatusDone {
		return nil, errors.Wrap(ErrConflict, "phase is done")
	}

	return s.stors.ProjectPhaseStor.UpdatePhase(phase, updates)
}

// SoftDeletePhase tombstones a phase; it disappears from listings but stays
// in storage.
func (s *PhaseService) SoftDeletePhase(user *smodel.User, phaseID int) error {
	_, _, err := s.guardedPhase(user, phaseID)
	if err != nil {
		return err
	}

	return translateStorErr(s.stors.ProjectPhaseStor.SoftDeletePhase(phaseID))
}

// Start moves a pending phase to in_progress. Freelancer or staff.
func (s *PhaseService) Start(user *smodel.User, phaseID int) (*smodel.ProjectPhase, error) {
	phase, partySet, err := s.guardedPhase(user, phaseID)
	if err != nil {
		return nil, err
	}

	if user.ID != partySet.FreelancerUserID && !user.IsStaff {
		return nil, ErrForbidden
	}

	if phase.Status != smodel.PhaseStatusPending {
		return nil, errors.Wrapf(ErrConflict, "cannot start phase in status %s", phase.Status)
	}

	return s.stors.ProjectPhaseStor.SetPhaseStatus(phaseID, smodel.PhaseStatusInProgress)
}

type SubmitPhaseRequest struct {
	Title       string `json:"title"`
	Attachment  string `json:"attachment"`
	TextContent string `json:"text_content"`
}

func (r SubmitPhaseRequest) isEmpty() bool {
	return r.Title == "" && r.Attachment == "" && r.TextContent == ""
}

// Submit moves an in_progress phase to waiting_client_review. Freelancer or
// staff. A non-empty payload records exactly one deliverable; an empty
// payload records none, the transition alone stands.
func (s *PhaseService) Submit(user *smodel.User, phaseID int, req SubmitPhaseRequest) (*smodel.ProjectPhase, error) {
	phase, partySet, err := s.guardedPhase(user, phaseID)
	if err != nil {
		return nil, err
	}

	if user.ID != partySet.FreelancerUserID && !user.IsStaff {
		return nil, ErrForbidden
	}

	if phase.Status != smodel.PhaseStatusInProgress {
		return nil, errors.Wrapf(ErrConflict, "cannot submit phase in status %s", phase.Status)
	}

	if !req.isEmpty() {
		_, err = s.stors.ProjectPhaseStor.AddDeliverable(&smodel.Deliverable{
			PhaseID:     phaseID,
			Title:       req.Title,
			Attachment:  req.Attachment,
			TextContent: req.TextContent,
		})
		if err != nil {
			return nil, err
		}
	}

	updated, err := s.stors.ProjectPhaseStor.SetPhaseStatus(phaseID, smodel.PhaseStatusWaitingClientReview)
	if err != nil {
		return nil, err
	}

	s.notify(partySet.ClientUserID, fmt.Sprintf("phase %q was submitted for your review", phase.Title))
	return updated, nil
}

// Approve moves waiting_client_review to done. Client or staff, and only
// from waiting_client_review.
func (s *PhaseService) Approve(user *smodel.User, phaseID int) (*smodel.ProjectPhase, error) {
	return s.review(user, phaseID, smodel.PhaseStatusDone, "approved")
}

// Reject sends waiting_client_review back to in_progress for rework.
func (s *PhaseService) Reject(user *smodel.User, phaseID int) (*smodel.ProjectPhase, error) {
	return s.review(user, phaseID, smodel.PhaseStatusInProgress, "rejected")
}

func (s *PhaseService) review(user *smodel.User, phaseID int, nextStatus, verb string) (*smodel.ProjectPhase, error) {
	phase, partySet, err := s.guardedPhase(user, phaseID)
	if err != nil {
		return nil, err
	}

	if user.ID != partySet.ClientUserID && !user.IsStaff {
		return nil, ErrForbidden
	}

	if phase.Status != smodel.PhaseStatusWaitingClientReview {
		return nil, errors.Wrapf(ErrConflict, "phase is not waiting for review (status %s)", phase.Status)
	}

	updated, err := s.stors.ProjectPhaseStor.SetPhaseStatus(phaseID, nextStatus)
	if err != nil {
		return nil, err
	}

	s.notify(partySet.FreelancerUserID, fmt.Sprintf("phase %q was %s", phase.Title, verb))
	return updated, nil
}

// Next advances the project to the phase that follows this one in creation
// order, moving it to in_progress. Client or staff; NotFound at the tail.
func (s *PhaseService) Next(user *smodel.User, phaseID int) (*smodel.ProjectPhase, error) {
	phase, partySet, err := s.guardedPhase(user, phaseID)
	if err != nil {
		return nil, err
	}

	if user.ID != partySet.ClientUserID && !user.IsStaff {
		return nil, ErrForbidden
	}

	next, err := s.stors.ProjectPhaseStor.NextPhase(phase)
	if err != nil {
		return nil, translateStorErr(err)
	}

	started, err := s.stors.ProjectPhaseStor.SetPhaseStatus(next.ID, smodel.PhaseStatusInProgress)
	if err != nil {
		return nil, err
	}

	s.notify(partySet.FreelancerUserID, fmt.Sprintf("phase %q is up next", started.Title))
	return started, nil
}

func (s *PhaseService) ListDeliverables(user *smodel.User, phaseID int) ([]smodel.Deliverable, error) {
	_, _, err := s.guardedPhase(user, phaseID)
	if err != nil {
		return nil, err
	}

	return s.stors.ProjectPhaseStor.ListDeliverables(phaseID)
}

func (s *PhaseService) guardedPhase(user *smodel.User, phaseID int) (*smodel.ProjectPhase, *stor.PartySet, error) {
	phase, err := s.stors.ProjectPhaseStor.GetPhaseByID(phaseID)
	if err != nil {
		return nil, nil, translateStorErr(err)
	}

	if phase.Status == smodel.PhaseStatusDeleted {
		return nil, nil, ErrNotFound
	}

	partySet, err := s.stors.ProjectPhaseStor.GetPartySetForPhase(phaseID)
	if err != nil {
		return nil, nil, translateStorErr(err)
	}

	if !canAccess(user, partySet) {
		return nil, nil, ErrForbidden
	}

	return phase, partySet, nil
}

func (s *PhaseService) notify(receiverID int, content string) {
	// Best effort, same as the negotiation service.
	_, _ = s.stors.NotificationStor.CreateNotification(&smodel.Notification{
		ReceiverID: receiverID,
		Content:    content,
	})
}
