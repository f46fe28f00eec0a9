// Package service implements the read and create operations of the
// reporting resources on top of the repository stores.
package service

import (
	"context"
	"errors"

	"bank_reporting/internal/domain"
	"bank_reporting/internal/repository"

	"github.com/sirupsen/logrus"
)

// PartnerStore is the persistence used by PartnerService and MerchantService
type PartnerStore interface {
	GetByID(ctx context.Context, id uint) (*domain.Partner, error)
	List(ctx context.Context, page domain.PageFilter) (domain.Page[domain.Partner], error)
	Create(ctx context.Context, p *domain.Partner) error
}

// MerchantStore is the persistence used by MerchantService and TransactionService
type MerchantStore interface {
	GetByID(ctx context.Context, id uint) (*domain.Merchant, error)
	List(ctx context.Context, f domain.MerchantFilter) (domain.Page[domain.Merchant], error)
	Create(ctx context.Context, m *domain.Merchant) error
}

// TransactionStore is the persistence used by TransactionService
type TransactionStore interface {
	GetByID(ctx context.Context, id uint) (*domain.Transaction, error)
	List(ctx context.Context, f domain.TransactionFilter) (domain.Page[domain.Transaction], error)
	CreateBatch(ctx context.Context, txs []domain.Transaction) error
	ExistingExternalIDs(ctx context.Context, ids []string) ([]string, error)
}

// lookup maps a repository miss onto a NotFound error carrying msg
func lookup[T any](entity *T, err error, msg string, args ...any) (*T, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.NotFound(msg, args...)
	}
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// logFailure records err at a level matching its kind
func logFailure(log logrus.FieldLogger, err error, msg string) {
	entry := log.WithError(err)
	switch domain.KindOf(err) {
	case domain.KindNotFound, domain.KindValidation:
		entry.Warn(msg)
	default:
		entry.Error(msg)
	}
}
