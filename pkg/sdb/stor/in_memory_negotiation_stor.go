package stor

import (
	"sync"

	"github.com/hashicorp/go-uuid"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
)

// InMemoryNegotiationStor is a mutex guarded NegotiationStor for tests. Agree
// runs under the stor lock, so it has the same exactly-once transition
// behavior the transactional Gorm implementation has.
type InMemoryNegotiationStor struct {
	mu           sync.Mutex
	nextID       int
	nextPhaseID  int
	negotiations map[int]*smodel.Negotiation
	phases       map[int]*smodel.NegotiationPhase
	partySets    map[int]PartySet
}

func NewInMemoryNegotiationStor() *InMemoryNegotiationStor {
	return &InMemoryNegotiationStor{
		nextID:       1,
		nextPhaseID:  1,
		negotiations: map[int]*smodel.Negotiation{},
		phases:       map[int]*smodel.NegotiationPhase{},
		partySets:    map[int]PartySet{},
	}
}

// SetPartySet registers the party set returned by GetPartySet for a
// negotiation; tests set this up in place of the profile rows a database
// would join against.
func (s *InMemoryNegotiationStor) SetPartySet(negotiationID int, partySet PartySet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partySets[negotiationID] = partySet
}

func (s *InMemoryNegotiationStor) CreateNegotiation(negotiation *smodel.Negotiation) (*smodel.Negotiation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if negotiation.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	if negotiation.Status == "" {
		negotiation.Status = smodel.NegotiationStatusInProgress
	}

	negotiation.ID = s.nextID
	s.nextID++

	saved := *negotiation
	s.negotiations[saved.ID] = &saved
	return negotiation, nil
}

func (s *InMemoryNegotiationStor) GetNegotiationByID(negotiationID int) (*smodel.Negotiation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(negotiationID)
}

func (s *InMemoryNegotiationStor) getLocked(negotiationID int) (*smodel.Negotiation, error) {
	n, ok := s.negotiations[negotiationID]
	if !ok {
		return nil, ErrNotFound
	}

	found := *n
	return &found, nil
}

func (s *InMemoryNegotiationStor) GetPartySet(negotiationID int) (*PartySet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	partySet, ok := s.partySets[negotiationID]
	if !ok {
		return nil, ErrNotFound
	}

	return &partySet, nil
}

func (s *InMemoryNegotiationStor) Agree(negotiationID int, party Party) (*smodel.Negotiation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.negotiations[negotiationID]
	if !ok {
		return nil, ErrNotFound
	}

	if n.Status == smodel.NegotiationStatusDeclined || n.Status == smodel.NegotiationStatusCompleted {
		return nil, ErrInvalidState
	}

	if party == PartyClient {
		n.ClientAgreed = true
	} else {
		n.FreelancerAgreed = true
	}

	if n.IsAgreed() && n.Status == smodel.NegotiationStatusInProgress {
		n.Status = smodel.NegotiationStatusAgreed
	}

	return s.getLocked(negotiationID)
}

func (s *InMemoryNegotiationStor) Decline(negotiationID int, declinedByUserID int, reason string) (*smodel.Negotiation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.negotiations[negotiationID]
	if !ok {
		return nil, ErrNotFound
	}

	if n.Status == smodel.NegotiationStatusDeclined {
		return nil, ErrInvalidState
	}

	n.Status = smodel.NegotiationStatusDeclined
	n.DeclinedByID = &declinedByUserID
	n.DeclineReason = reason

	return s.getLocked(negotiationID)
}

func (s *InMemoryNegotiationStor) Complete(negotiationID int) (*smodel.Negotiation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.negotiations[negotiationID]
	if !ok {
		return nil, ErrNotFound
	}

	if n.Status != smodel.NegotiationStatusAgreed {
		return nil, ErrInvalidState
	}

	n.Status = smodel.NegotiationStatusCompleted
	return s.getLocked(negotiationID)
}

func (s *InMemoryNegotiationStor) AddPhase(phase *smodel.NegotiationPhase) (*smodel.NegotiationPhase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if phase.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	if phase.Status == "" {
		phase.Status = smodel.NegotiationPhaseStatusPending
	}

	phase.ID = s.nextPhaseID
	s.nextPhaseID++

	saved := *phase
	s.phases[saved.ID] = &saved
	return phase, nil
}

func (s *InMemoryNegotiationStor) GetPhaseByID(phaseID int) (*smodel.NegotiationPhase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.phases[phaseID]
	if !ok {
		return nil, ErrNotFound
	}

	found := *p
	return &found, nil
}

func (s *InMemoryNegotiationStor) ListPhases(negotiationID int) ([]smodel.NegotiationPhase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var phases []smodel.NegotiationPhase
	for id := 1; id < s.nextPhaseID; id++ {
		if p, ok := s.phases[id]; ok && p.NegotiationID == negotiationID {
			phases = append(phases, *p)
		}
	}

	return phases, nil
}

func (s *InMemoryNegotiationStor) UpdatePhase(phase *smodel.NegotiationPhase, updates NegotiationPhaseUpdate) (*smodel.NegotiationPhase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.phases[phase.ID]
	if !ok {
		return nil, ErrNotFound
	}

	if updates.Title != nil {
		p.Title = *updates.Title
	}
	if updates.Description != nil {
		p.Description = *updates.Description
	}
	if updates.Budget != nil {
		p.Budget = *updates.Budget
	}
	if updates.Deadline != nil {
		p.Deadline = updates.Deadline
	}
	if updates.Deliverables != nil {
		p.Deliverables = *updates.Deliverables
	}
	if updates.Status != nil {
		p.Status = *updates.Status
	}

	found := *p
	return &found, nil
}

func (s *InMemoryNegotiationStor) DeletePhase(phaseID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.phases[phaseID]; !ok {
		return ErrNotFound
	}

	delete(s.phases, phaseID)
	return nil
}

func (s *InMemoryNegotiationStor) CountByStatuses(statuses []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, n := range s.negotiations {
		for _, status := range statuses {
			if n.Status == status {
				count++
				break
			}
		}
	}

	return count, nil
}
