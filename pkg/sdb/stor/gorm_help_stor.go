package stor

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormHelpStor struct {
	db *gorm.DB
}

func NewGormHelpStor(db *gorm.DB) *GormHelpStor {
	return &GormHelpStor{db: db}
}

func (s *GormHelpStor) CreateHelpTicket(ticket *smodel.HelpTicket) (*smodel.HelpTicket, error) {
	if ticket.Status == "" {
		ticket.Status = smodel.HelpStatusPending
	}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(ticket).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetHelpTicketByID(ticket.ID)
}

func (s *GormHelpStor) GetHelpTicketByID(ticketID int) (*smodel.HelpTicket, error) {
	var ticket smodel.HelpTicket
	err := s.db.Preload("User").First(&ticket, ticketID).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return &ticket, nil
}

func (s *GormHelpStor) ListHelpTicketsForUser(userID int) ([]smodel.HelpTicket, error) {
	var tickets []smodel.HelpTicket
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&tickets).Error
	return tickets, err
}

func (s *GormHelpStor) ResolveHelpTicket(ticketID int) (*smodel.HelpTicket, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.HelpTicket{ID: ticketID}).
			Update("status", smodel.HelpStatusResolved).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetHelpTicketByID(ticketID)
}
