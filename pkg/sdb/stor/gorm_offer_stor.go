package stor

import (
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"gorm.io/gorm"
)

type GormOfferStor struct {
	db *gorm.DB
}

func NewGormOfferStor(db *gorm.DB) *GormOfferStor {
	return &GormOfferStor{db: db}
}

func (s *GormOfferStor) CreateOffer(offer *smodel.Offer) (*smodel.Offer, error) {
	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Create(offer).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetOfferByID(offer.ID)
}

func (s *GormOfferStor) GetOfferByID(offerID int) (*smodel.Offer, error) {
	var offer smodel.Offer
	err := s.db.Preload("Company.User").First(&offer, offerID).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return &offer, nil
}

func (s *GormOfferStor) ListOffers() ([]smodel.Offer, error) {
	var offers []smodel.Offer
	err := s.db.Preload("Company").Order("created_at desc").Find(&offers).Error
	return offers, err
}

func (s *GormOfferStor) ListOffersForCompany(companyID int) ([]smodel.Offer, error) {
	var offers []smodel.Offer
	err := s.db.Where("company_id = ?", companyID).
		Order("created_at desc").
		Find(&offers).Error
	return offers, err
}

func (s *GormOfferStor) UpdateOffer(offer *smodel.Offer, updates OfferUpdate) (*smodel.Offer, error) {
	changes := map[string]interface{}{}
	if updates.Title != nil {
		changes["title"] = *updates.Title
	}
	if updates.Requirements != nil {
		changes["requirements"] = *updates.Requirements
	}
	if updates.Duration != nil {
		changes["duration"] = *updates.Duration
	}
	if updates.WhatWeOffer != nil {
		changes["what_we_offer"] = *updates.WhatWeOffer
	}
	if updates.Attachment != nil {
		changes["attachment"] = *updates.Attachment
	}

	if len(changes) == 0 {
		return offer, nil
	}

	err := WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Model(offer).Updates(changes).Error
	})

	if err != nil {
		return nil, err
	}

	return s.GetOfferByID(offer.ID)
}

func (s *GormOfferStor) DeleteOffer(offerID int) error {
	return WithTxRetry(s.db, func(tx *gorm.DB) error {
		return tx.Delete(&smodel.Offer{}, offerID).Error
	})
}

func (s *GormOfferStor) CountOffers() (int64, error) {
	var count int64
	err := s.db.Model(&smodel.Offer{}).Count(&count).Error
	return count, err
}
