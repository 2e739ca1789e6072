package stor

import (
	"time"

	"github.com/hashicorp/go-uuid"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormProjectPhaseStor struct {
	db *gorm.DB
}

func NewGormProjectPhaseStor(db *gorm.DB) *GormProjectPhaseStor {
	return &GormProjectPhaseStor{db: db}
}

func (s *GormProjectPhaseStor) CreatePhase(phase *smodel.ProjectPhase) (*smodel.ProjectPhase, error) {
	var err error

	if phase.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	if phase.Status == "" {
		phase.Status = smodel.PhaseStatusPending
	}

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(phase).Error
	})

	if err != nil {
		return nil, err
	}

	return phase, nil
}

func (s *GormProjectPhaseStor) GetPhaseByID(phaseID int) (*smodel.ProjectPhase, error) {
	var phase smodel.ProjectPhase
	if err := s.db.First(&phase, phaseID).Error; err != nil {
		return nil, translateErr(err)
	}

	return &phase, nil
}

func (s *GormProjectPhaseStor) ListPhases(projectID int) ([]smodel.ProjectPhase, error) {
	var phases []smodel.ProjectPhase
	err := s.db.Where("project_id = ?", projectID).
		Where("status <> ?", smodel.PhaseStatusDeleted).
		Order("created_at asc, id asc").
		Find(&phases).Error
	return phases, err
}

func (s *GormProjectPhaseStor) UpdatePhase(phase *smodel.ProjectPhase, updates ProjectPhaseUpdate) (*smodel.ProjectPhase, error) {
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
	if updates.EstimatedDays != nil {
		changes["estimated_days"] = *updates.EstimatedDays
	}
	if updates.Deliverables != nil {
		changes["deliverables"] = *updates.Deliverables
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

func (s *GormProjectPhaseStor) SetPhaseStatus(phaseID int, status string) (*smodel.ProjectPhase, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.ProjectPhase{ID: phaseID}).Update("status", status).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetPhaseByID(phaseID)
}

// SoftDeletePhase tombstones the phase. The row stays so deliverable history
// is preserved; listings skip it.
func (s *GormProjectPhaseStor) SoftDeletePhase(phaseID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.ProjectPhase{ID: phaseID}).
			Update("status", smodel.PhaseStatusDeleted).Error
	})
}

// NextPhase finds the phase that follows the given one in creation order.
// Ties on created_at (bulk inserts within the same clock tick) break on id.
func (s *GormProjectPhaseStor) NextPhase(phase *smodel.ProjectPhase) (*smodel.ProjectPhase, error) {
	var next smodel.ProjectPhase
	err := s.db.Where("project_id = ?", phase.ProjectID).
		Where("status <> ?", smodel.PhaseStatusDeleted).
		Where("created_at > ? or (created_at = ? and id > ?)", phase.CreatedAt, phase.CreatedAt, phase.ID).
		Order("created_at asc, id asc").
		First(&next).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return &next, nil
}

func (s *GormProjectPhaseStor) GetPartySetForPhase(phaseID int) (*PartySet, error) {
	var phase smodel.ProjectPhase
	if err := s.db.First(&phase, phaseID).Error; err != nil {
		return nil, translateErr(err)
	}

	var project smodel.Project
	if err := s.db.First(&project, phase.ProjectID).Error; err != nil {
		return nil, translateErr(err)
	}

	return partySetForNegotiation(s.db, project.NegotiationID)
}

func (s *GormProjectPhaseStor) AddDeliverable(deliverable *smodel.Deliverable) (*smodel.Deliverable, error) {
	if deliverable.SubmittedAt.IsZero() {
		deliverable.SubmittedAt = time.Now()
	}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(deliverable).Error
	})

	if err != nil {
		return nil, err
	}

	return deliverable, nil
}

func (s *GormProjectPhaseStor) ListDeliverables(phaseID int) ([]smodel.Deliverable, error) {
	var deliverables []smodel.Deliverable
	err := s.db.Where("phase_id = ?", phaseID).
		Order("submitted_at asc, id asc").
		Find(&deliverables).Error
	return deliverables, err
}
