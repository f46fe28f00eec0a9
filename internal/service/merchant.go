package service

import (
	"context"
	"errors"

	"bank_reporting/internal/contracts"
	"bank_reporting/internal/domain"
	"bank_reporting/internal/repository"

	"github.com/sirupsen/logrus"
)

// MerchantService reads and boards merchants
type MerchantService struct {
	merchants MerchantStore
	partners  PartnerStore
	log       logrus.FieldLogger
}

func NewMerchantService(merchants MerchantStore, partners PartnerStore, log logrus.FieldLogger) *MerchantService {
	return &MerchantService{merchants: merchants, partners: partners, log: log.WithField("service", "merchant")}
}

// GetByID returns the merchant with id or a NotFound error
func (s *MerchantService) GetByID(ctx context.Context, id uint) (*domain.Merchant, error) {
	m, err := s.merchants.GetByID(ctx, id)
	return lookup(m, err, "Merchant with id %d was not found", id)
}

// List returns one page of merchants matching f
func (s *MerchantService) List(ctx context.Context, f domain.MerchantFilter) (domain.Page[domain.Merchant], error) {
	f.PageFilter = f.PageFilter.Normalize()
	return s.merchants.List(ctx, f)
}

// Create boards a merchant under partnerID. The partner is resolved before
// anything is written.
func (s *MerchantService) Create(ctx context.Context, partnerID uint, in contracts.Merchant) (*domain.Merchant, error) {
	log := s.log.WithFields(logrus.Fields{"partner_id": partnerID, "name": in.Name})

	partner, err := s.partners.GetByID(ctx, partnerID)
	if _, err = lookup(partner, err, "Partner with id %d does not exist", partnerID); err != nil {
		logFailure(log, err, "Merchant creation failed")
		return nil, err
	}

	m := in.ToMerchant(partner.ID)
	if err := s.merchants.Create(ctx, &m); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			err = domain.Duplicate(err, "Merchant with name %q already exists", m.Name)
		}
		logFailure(log, err, "Merchant creation failed")
		return nil, err
	}
	log.WithField("merchant_id", m.ID).Info("Merchant created")
	return &m, nil
}
