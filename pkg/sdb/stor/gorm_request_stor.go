package stor

import (
	"github.com/hashicorp/go-uuid"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormRequestStor struct {
	db *gorm.DB
}

func NewGormRequestStor(db *gorm.DB) *GormRequestStor {
	return &GormRequestStor{db: db}
}

func (s *GormRequestStor) CreateRequest(request *smodel.Request) (*smodel.Request, error) {
	var err error

	if request.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	if request.Status == "" {
		request.Status = smodel.RequestStatusPending
	}

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(request).Error
	})

	if err != nil {
		return nil, err
	}

	return request, nil
}

func (s *GormRequestStor) GetRequestByID(requestID int) (*smodel.Request, error) {
	var request smodel.Request
	if err := s.db.Preload("Client.User").First(&request, requestID).Error; err != nil {
		return nil, translateErr(err)
	}

	return &request, nil
}

func (s *GormRequestStor) ListRequests() ([]smodel.Request, error) {
	var requests []smodel.Request
	err := s.db.Preload("Client.User").Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (s *GormRequestStor) ListRequestsForClient(clientID int) ([]smodel.Request, error) {
	var requests []smodel.Request
	err := s.db.Where("client_id = ?", clientID).Order("created_at desc").Find(&requests).Error
	return requests, err
}

func (s *GormRequestStor) UpdateRequest(request *smodel.Request, updates RequestUpdate) (*smodel.Request, error) {
	changes := map[string]interface{}{}
	if updates.Title != nil {
		changes["title"] = *updates.Title
	}
	if updates.Category != nil {
		changes["category"] = *updates.Category
	}
	if updates.Attachments != nil {
		changes["attachments"] = *updates.Attachments
	}
	if updates.BudgetMin != nil {
		changes["budget_min"] = *updates.BudgetMin
	}
	if updates.BudgetMax != nil {
		changes["budget_max"] = *updates.BudgetMax
	}
	if updates.Status != nil {
		changes["status"] = *updates.Status
	}

	if len(changes) == 0 {
		return request, nil
	}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(request).Updates(changes).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetRequestByID(request.ID)
}

// CancelRequest is the soft delete for requests.
func (s *GormRequestStor) CancelRequest(requestID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.Request{ID: requestID}).
			Update("status", smodel.RequestStatusCancelled).Error
	})
}
