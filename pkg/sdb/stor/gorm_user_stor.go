package stor

import (
	"github.com/hashicorp/go-uuid"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormUserStor struct {
	db *gorm.DB
}

func NewGormUserStor(db *gorm.DB) *GormUserStor {
	return &GormUserStor{db: db}
}

// CreateUser creates a new user account.
func (s *GormUserStor) CreateUser(user *smodel.User) (*smodel.User, error) {
	var err error

	if user.UUID, err = uuid.GenerateUUID(); err != nil {
		return nil, err
	}

	user.IsActive = true

	err = WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *GormUserStor) GetUserByID(userID int) (*smodel.User, error) {
	var user smodel.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, translateErr(err)
	}

	return &user, nil
}

func (s *GormUserStor) GetUserByEmail(email string) (*smodel.User, error) {
	var user smodel.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateErr(err)
	}

	return &user, nil
}

func (s *GormUserStor) UpdateUserPassword(userID int, hashedPassword string) error {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.User{ID: userID}).Update("password", hashedPassword).Error
	})

	return err
}

// DeactivateUser is the soft form of account deletion, the row stays but the
// account no longer authenticates.
func (s *GormUserStor) DeactivateUser(userID int) error {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(&smodel.User{ID: userID}).Update("is_active", false).Error
	})

	return err
}
