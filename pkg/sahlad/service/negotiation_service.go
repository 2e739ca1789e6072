package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
	"github.com/shopspring/decimal"
)

// NegotiationService owns the negotiation lifecycle: creation from a direct
// hire or a posted request, the bilateral agreement protocol, terminal
// decline, and the milestone plan (phases) being bargained over.
type NegotiationService struct {
	stors *stor.Stors
}

func NewNegotiationService(stors *stor.Stors) *NegotiationService {
	return &NegotiationService{stors: stors}
}

type CreateDirectHireRequest struct {
	FreelancerID int    `json:"freelancer_id"`
	Description  string `json:"description"`
}

// CreateDirectHire starts a negotiation with the client as initiator. The
// initiator's agreement flag is set on creation; only the other side still
// has to agree.
func (s *NegotiationService) CreateDirectHire(user *smodel.User, req CreateDirectHireRequest) (*smodel.Negotiation, error) {
	client, err := s.stors.ClientStor.GetClientByUserID(user.ID)
	if err != nil {
		return nil, errors.Wrap(ErrForbidden, "only clients can direct-hire")
	}

	freelancer, err := s.stors.FreelancerStor.GetFreelancerByID(req.FreelancerID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	negotiation, err := s.stors.NegotiationStor.CreateNegotiation(&smodel.Negotiation{
		OriginType:        smodel.NegotiationOriginDirectHire,
		ClientID:          client.ID,
		FreelancerID:      freelancer.ID,
		ClientDescription: req.Description,
		ClientAgreed:      true,
	})
	if err != nil {
		return nil, translateStorErr(err)
	}

	s.notify(freelancer.UserID, fmt.Sprintf("%s wants to hire you", user.FullName()))
	return negotiation, nil
}

type CreateFromRequestRequest struct {
	RequestID    int `json:"request_id"`
	FreelancerID int `json:"freelancer_id"`
}

// CreateFromRequest starts a negotiation linked to a posted request, with a
// freelancer the client picked. Only the request's client or staff may
// initiate; neither side's agreement flag is set on creation.
func (s *NegotiationService) CreateFromRequest(user *smodel.User, req CreateFromRequestRequest) (*smodel.Negotiation, error) {
	request, err := s.stors.RequestStor.GetRequestByID(req.RequestID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if !user.IsStaff && (request.Client == nil || request.Client.UserID != user.ID) {
		return nil, errors.Wrap(ErrForbidden, "only the request's client can start a negotiation for it")
	}

	if request.Status != smodel.RequestStatusPending {
		return nil, errors.Wrap(ErrConflict, "request is no longer open")
	}

	freelancer, err := s.stors.FreelancerStor.GetFreelancerByID(req.FreelancerID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	negotiation, err := s.stors.NegotiationStor.CreateNegotiation(&smodel.Negotiation{
		OriginType:        smodel.NegotiationOriginRequest,
		RequestID:         &request.ID,
		ClientID:          request.ClientID,
		FreelancerID:      freelancer.ID,
		ClientDescription: request.Title,
	})
	if err != nil {
		return nil, translateStorErr(err)
	}

	s.notify(freelancer.UserID, fmt.Sprintf("%s wants to negotiate the request %q with you", user.FullName(), request.Title))

	return negotiation, nil
}

// NegotiationDetail is a negotiation together with its bargained phases.
type NegotiationDetail struct {
	Negotiation *smodel.Negotiation       `json:"negotiation"`
	Phases      []smodel.NegotiationPhase `json:"phases"`
}

func (s *NegotiationService) GetNegotiation(user *smodel.User, negotiationID int) (*NegotiationDetail, error) {
	partySet, err := s.stors.NegotiationStor.GetPartySet(negotiationID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if !canAccess(user, partySet) {
		return nil, ErrForbidden
	}

	negotiation, err := s.stors.NegotiationStor.GetNegotiationByID(negotiationID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	phases, err := s.stors.NegotiationStor.ListPhases(negotiationID)
	if err != nil {
		return nil, err
	}

	return &NegotiationDetail{Negotiation: negotiation, Phases: phases}, nil
}

// Agree records the calling party's agreement. Staff cannot agree on a
// party's behalf. Agreeing again is a no-op, agreeing on a declined or
// completed negotiation is a conflict.
func (s *NegotiationService) Agree(user *smodel.User, negotiationID int) (*smodel.Negotiation, error) {
	partySet, err := s.stors.NegotiationStor.GetPartySet(negotiationID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	party, ok := partyOf(user, partySet)
	if !ok {
		return nil, ErrForbidden
	}

	negotiation, err := s.stors.NegotiationStor.Agree(negotiationID, party)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if negotiation.Status == smodel.NegotiationStatusAgreed {
		log.Infof("negotiation %d fully agreed", negotiationID)
		s.notify(partySet.ClientUserID, "your negotiation reached full agreement")
		s.notify(partySet.FreelancerUserID, "your negotiation reached full agreement")
	}

	return negotiation, nil
}

// Decline terminally declines a negotiation, recording who declined and why.
// Restricted to the two participants and staff.
func (s *NegotiationService) Decline(user *smodel.User, negotiationID int, reason string) (*smodel.Negotiation, error) {
	partySet, err := s.stors.NegotiationStor.GetPartySet(negotiationID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if !canAccess(user, partySet) {
		return nil, ErrForbidden
	}

	negotiation, err := s.stors.NegotiationStor.Decline(negotiationID, user.ID, reason)
	if err != nil {
		return nil, translateStorErr(err)
	}

	for _, receiverID := range []int{partySet.ClientUserID, partySet.FreelancerUserID} {
		if receiverID != user.ID {
			s.notify(receiverID, fmt.Sprintf("%s declined the negotiation", user.FullName()))
		}
	}

	return negotiation, nil
}

type PhaseRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Budget       decimal.Decimal `json:"budget"`
	Deadline     *time.Time      `json:"deadline"`
	Deliverables string          `json:"deliverables"`
}

func (s *NegotiationService) AddPhase(user *smodel.User, negotiationID int, req PhaseRequest) (*smodel.NegotiationPhase, error) {
	negotiation, err := s.guardedNegotiation(user, negotiationID)
	if err != nil {
		return nil, err
	}

	if negotiation.IsDeclined() {
		return nil, errors.Wrap(ErrConflict, "negotiation is declined")
	}

	if strings.TrimSpace(req.Title) == "" {
		return nil, errors.Wrap(ErrValidation, "phase title is required")
	}

	return s.stors.NegotiationStor.AddPhase(&smodel.NegotiationPhase{
		NegotiationID: negotiationID,
		Title:         req.Title,
		Description:   req.Description,
		Budget:        req.Budget,
		Deadline:      req.Deadline,
		Deliverables:  req.Deliverables,
	})
}

func (s *NegotiationService) UpdatePhase(user *smodel.User, phaseID int, updates stor.NegotiationPhaseUpdate) (*smodel.NegotiationPhase, error) {
	phase, err := s.stors.NegotiationStor.GetPhaseByID(phaseID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if _, err := s.guardedNegotiation(user, phase.NegotiationID); err != nil {
		return nil, err
	}

	return s.stors.NegotiationStor.UpdatePhase(phase, updates)
}

func (s *NegotiationService) DeletePhase(user *smodel.User, phaseID int) error {
	phase, err := s.stors.NegotiationStor.GetPhaseByID(phaseID)
	if err != nil {
		return translateStorErr(err)
	}

	if _, err := s.guardedNegotiation(user, phase.NegotiationID); err != nil {
		return err
	}

	return translateStorErr(s.stors.NegotiationStor.DeletePhase(phaseID))
}

func (s *NegotiationService) guardedNegotiation(user *smodel.User, negotiationID int) (*smodel.Negotiation, error) {
	partySet, err := s.stors.NegotiationStor.GetPartySet(negotiationID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	if !canAccess(user, partySet) {
		return nil, ErrForbidden
	}

	negotiation, err := s.stors.NegotiationStor.GetNegotiationByID(negotiationID)
	if err != nil {
		return nil, translateStorErr(err)
	}

	return negotiation, nil
}

// notify creates a notification best-effort; a failed insert never fails the
// operation that triggered it.
func (s *NegotiationService) notify(receiverID int, content string) {
	_, err := s.stors.NotificationStor.CreateNotification(&smodel.Notification{
		ReceiverID: receiverID,
		Content:    content,
	})
	if err != nil {
		log.Errorf("failed creating notification for user %d: %s", receiverID, err)
	}
}
