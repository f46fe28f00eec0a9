package service

import (
	"context"
	"errors"

	"bank_reporting/internal/contracts"
	"bank_reporting/internal/domain"
	"bank_reporting/internal/repository"

	"github.com/sirupsen/logrus"
)

// PartnerService reads and registers partners
type PartnerService struct {
	partners PartnerStore
	log      logrus.FieldLogger
}

func NewPartnerService(partners PartnerStore, log logrus.FieldLogger) *PartnerService {
	return &PartnerService{partners: partners, log: log.WithField("service", "partner")}
}

// GetByID returns the partner with id or a NotFound error
func (s *PartnerService) GetByID(ctx context.Context, id uint) (*domain.Partner, error) {
	p, err := s.partners.GetByID(ctx, id)
	return lookup(p, err, "Partner with id %d was not found", id)
}

// List returns one page of partners ordered by id
func (s *PartnerService) List(ctx context.Context, page domain.PageFilter) (domain.Page[domain.Partner], error) {
	return s.partners.List(ctx, page.Normalize())
}

// Create stores a new partner; the name must be unique
func (s *PartnerService) Create(ctx context.Context, in contracts.Partner) (*domain.Partner, error) {
	p := in.ToPartner()
	log := s.log.WithField("name", p.Name)
	if err := s.partners.Create(ctx, &p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			err = domain.Duplicate(err, "Partner with name %q already exists", p.Name)
		}
		logFailure(log, err, "Partner creation failed")
		return nil, err
	}
	log.WithField("partner_id", p.ID).Info("Partner created")
	return &p, nil
}
