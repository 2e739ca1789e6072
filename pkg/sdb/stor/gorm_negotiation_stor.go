package stor

import (
	"errors"

	"github.com/hashicorp/go-uuid"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

// ErrInvalidState is returned when a lifecycle write is attempted from a
// state that doesn't allow it (agreeing on a declined negotiation, declining
// twice, completing a negotiation that was never agreed).
var ErrInvalidState = errors.New("invalid state transition")

type GormNegotiationStor struct {
	db *gorm.DB
}

func NewGormNegotiationStor(db *gorm.DB) *GormNegotiationStor {
	return &GormNegotiationStor{db: db}
}

func (s *GormNegotiationStor) CreateNegotiation(negotiation *smodel.Negotiation) (*smodel.Negotiation, error) {
	var err error

	if negotiation.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	if negotiation.Status == "" {
		negotiation.Status = smodel.NegotiationStatusInProgress
	}

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(negotiation).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetNegotiationByID(negotiation.ID)
}

func (s *GormNegotiationStor) GetNegotiationByID(negotiationID int) (*smodel.Negotiation, error) {
	var negotiation smodel.Negotiation
	err := s.db.Preload("Client.User").
		Preload("Freelancer.User").
		Preload("Request").
		First(&negotiation, negotiationID).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return &negotiation, nil
}

func (s *GormNegotiationStor) GetPartySet(negotiationID int) (*PartySet, error) {
	return partySetForNegotiation(s.db, negotiationID)
}

// Agree sets the party's flag and, when both flags are set, moves the status
// to agreed. The whole read-modify-write runs in one transaction; the flag
// UPDATE takes the row lock, so two concurrent calls serialize and the agreed
// transition fires exactly once.
func (s *GormNegotiationStor) Agree(negotiationID int, party Party) (*smodel.Negotiation, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		var n smodel.Negotiation
		if err := tx.First(&n, negotiationID).Error; err != nil {
			return translateErr(err)
		}

		if n.Status == smodel.NegotiationStatusDeclined || n.Status == smodel.NegotiationStatusCompleted {
			return ErrInvalidState
		}

		column := "client_agreed"
		if party == PartyFreelancer {
			column = "freelancer_agreed"
		}

		if err := tx.Model(&n).Update(column, true).Error; err != nil {
			return err
		}

		// Re-read under the row lock before deciding on the transition.
		if err := tx.First(&n, negotiationID).Error; err != nil {
			return err
		}

		if n.IsAgreed() && n.Status == smodel.NegotiationStatusInProgress {
			return tx.Model(&n).Update("status", smodel.NegotiationStatusAgreed).Error
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return s.GetNegotiationByID(negotiationID)
}

// Decline is terminal: a declined negotiation cannot be declined again, and
// Agree refuses it as well.
func (s *GormNegotiationStor) Decline(negotiationID int, declinedByUserID int, reason string) (*smodel.Negotiation, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		var n smodel.Negotiation
		if err := tx.First(&n, negotiationID).Error; err != nil {
			return translateErr(err)
		}

		if n.Status == smodel.NegotiationStatusDeclined {
			return ErrInvalidState
		}

		return tx.Model(&n).Updates(map[string]interface{}{
			"status":         smodel.NegotiationStatusDeclined,
			"declined_by_id": declinedByUserID,
			"decline_reason": reason,
		}).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetNegotiationByID(negotiationID)
}

// Complete marks an agreed negotiation as completed; this happens when the
// project is created from it.
func (s *GormNegotiationStor) Complete(negotiationID int) (*smodel.Negotiation, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		var n smodel.Negotiation
		if err := tx.First(&n, negotiationID).Error; err != nil {
			return translateErr(err)
		}

		if n.Status != smodel.NegotiationStatusAgreed {
			return ErrInvalidState
		}

		return tx.Model(&n).Update("status", smodel.NegotiationStatusCompleted).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetNegotiationByID(negotiationID)
}

func (s *GormNegotiationStor) AddPhase(phase *smodel.NegotiationPhase) (*smodel.NegotiationPhase, error) {
	var err error

	if phase.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	if phase.Status == "" {
		phase.Status = smodel.NegotiationPhaseStatusPending
	}

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(phase).Error
	})

	if err != nil {
		return nil, err
	}

	return phase, nil
}

func (s *GormNegotiationStor) GetPhaseByID(phaseID int) (*smodel.NegotiationPhase, error) {
	var phase smodel.NegotiationPhase
	if err := s.db.First(&phase, phaseID).Error; err != nil {
		return nil, translateErr(err)
	}

	return &phase, nil
}

func (s *GormNegotiationStor) ListPhases(negotiationID int) ([]smodel.NegotiationPhase, error) {
	var phases []smodel.NegotiationPhase
	err := s.db.Where("negotiation_id = ?", negotiationID).
		Order("created_at asc, id asc").
		Find(&phases).Error
	return phases, err
}

func (s *GormNegotiationStor) UpdatePhase(phase *smodel.NegotiationPhase, updates NegotiationPhaseUpdate) (*smodel.NegotiationPhase, error) {
	changes := map[string]interface{}{}
	if updates.Title != nil {
		changes["title"] = *updates.Title
	}
	if updates.Description != nil {
		changes["description"] = *updates.Description
	}
	if updates.Budget != nil {
		changes["budget"] = *updates.Budget
	}
	if updates.Deadline != nil {
		changes["deadline"] = *updates.Deadline
	}
	if updates.Deliverables != nil {
		changes["deliverables"] = *updates.Deliverables
	}
	if updates.Status != nil {
		changes["status"] = *updates.Status
	}

	if len(changes) == 0 {
		return phase, nil
	}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(phase).Updates(changes).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetPhaseByID(phase.ID)
}

// DeletePhase is a hard delete. Negotiation phases are bargaining notes, not
// execution history, so there is nothing to tombstone.
func (s *GormNegotiationStor) DeletePhase(phaseID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Delete(&smodel.NegotiationPhase{}, phaseID).Error
	})
}

func (s *GormNegotiationStor) CountByStatuses(statuses []string) (int64, error) {
	var count int64
	err := s.db.Model(&smodel.Negotiation{}).Where("status IN ?", statuses).Count(&count).Error
	return count, err
}
