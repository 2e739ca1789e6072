package stor

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormClientStor struct {
	db *gorm.DB
}

func NewGormClientStor(db *gorm.DB) *GormClientStor {
	return &GormClientStor{db: db}
}

func (s *GormClientStor) CreateClient(client *smodel.Client) (*smodel.Client, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(client).Error
	})

	if err != nil {
		return nil, err
	}

	return client, nil
}

func (s *GormClientStor) GetClientByID(clientID int) (*smodel.Client, error) {
	var client smodel.Client
	if err := s.db.Preload("User").First(&client, clientID).Error; err != nil {
		return nil, translateErr(err)
	}

	return &client, nil
}

func (s *GormClientStor) GetClientByUserID(userID int) (*smodel.Client, error) {
	var client smodel.Client
	if err := s.db.Preload("User").Where("user_id = ?", userID).First(&client).Error; err != nil {
		return nil, translateErr(err)
	}

	return &client, nil
}

func (s *GormClientStor) UpdateClient(client *smodel.Client, updates ClientUpdate) (*smodel.Client, error) {
	changes := map[string]interface{}{}
	if updates.PhoneNumber != nil {
		changes["phone_number"] = *updates.PhoneNumber
	}
	if updates.City != nil {
		changes["city"] = *updates.City
	}
	if updates.Wilaya != nil {
		changes["wilaya"] = *updates.Wilaya
	}
	if updates.ProfilePicture != nil {
		changes["profile_picture"] = *updates.ProfilePicture
	}

	if len(changes) == 0 {
		return client, nil
	}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(client).Updates(changes).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetClientByID(client.ID)
}
