package stor

import (
	"errors"

	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// partySetForNegotiation resolves the authorization party set for a
// negotiation in one place, for use by the negotiation, project and phase
// stors.
func partySetForNegotiation(db *gorm.DB, negotiationID int) (*PartySet, error) {
	var negotiation smodel.Negotiation
	err := db.Preload("Client").Preload("Freelancer").First(&negotiation, negotiationID).Error
	if err != nil {
		return nil, translateErr(err)
	}

	if negotiation.Client == nil || negotiation.Freelancer == nil {
		return nil, ErrNotFound
	}

	return &PartySet{
		ClientID:         negotiation.ClientID,
		FreelancerID:     negotiation.FreelancerID,
		ClientUserID:     negotiation.Client.UserID,
		FreelancerUserID: negotiation.Freelancer.UserID,
	}, nil
}
