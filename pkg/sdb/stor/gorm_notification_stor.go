package stor

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormNotificationStor struct {
	db *gorm.DB
}

func NewGormNotificationStor(db *gorm.DB) *GormNotificationStor {
	return &GormNotificationStor{db: db}
}

func (s *GormNotificationStor) CreateNotification(notification *smodel.Notification) (*smodel.Notification, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(notification).Error
	})

	if err != nil {
		return nil, err
	}

	return notification, nil
}

func (s *GormNotificationStor) GetNotificationByID(notificationID int) (*smodel.Notification, error) {
	var notification smodel.Notification
	if err := s.db.First(&notification, notificationID).Error; err != nil {
		return nil, translateErr(err)
	}

	return &notification, nil
}

func (s *GormNotificationStor) ListNotificationsForUser(receiverID int) ([]smodel.Notification, error) {
	var notifications []smodel.Notification
	err := s.db.Where("receiver_id = ?", receiverID).
		Order("created_at desc").
		Find(&notifications).Error
	return notifications, err
}

func (s *GormNotificationStor) MarkNotificationSeen(notificationID int) (*smodel.Notification, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.Notification{ID: notificationID}).Update("seen", true).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetNotificationByID(notificationID)
}
