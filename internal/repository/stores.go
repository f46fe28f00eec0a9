package repository

import (
	"context"

	"bank_reporting/internal/domain"

	"gorm.io/gorm"
)

// PartnerRepository persists partners.
type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) GetByID(ctx context.Context, id uint) (*domain.Partner, error) {
	return findByID[domain.Partner](ctx, r.db, id)
}

func (r *PartnerRepository) List(ctx context.Context, page domain.PageFilter) (domain.Page[domain.Partner], error) {
	return findPage[domain.Partner](ctx, r.db, page)
}

func (r *PartnerRepository) Create(ctx context.Context, p *domain.Partner) error {
	return insert(ctx, r.db, p)
}

// MerchantRepository persists merchants.
type MerchantRepository struct {
	db *gorm.DB
}

func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

func (r *MerchantRepository) GetByID(ctx context.Context, id uint) (*domain.Merchant, error) {
	return findByID[domain.Merchant](ctx, r.db, id)
}

func (r *MerchantRepository) List(ctx context.Context, f domain.MerchantFilter) (domain.Page[domain.Merchant], error) {
	return findPage[domain.Merchant](ctx, r.db, f.PageFilter, MerchantFilter(f))
}

func (r *MerchantRepository) Create(ctx context.Context, m *domain.Merchant) error {
	return insert(ctx, r.db, m)
}

// TransactionRepository persists transactions.
type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uint) (*domain.Transaction, error) {
	return findByID[domain.Transaction](ctx, r.db, id)
}

func (r *TransactionRepository) List(ctx context.Context, f domain.TransactionFilter) (domain.Page[domain.Transaction], error) {
	return findPage[domain.Transaction](ctx, r.db, f.PageFilter, TransactionFilter(f))
}

// CreateBatch inserts every transaction or none of them.
func (r *TransactionRepository) CreateBatch(ctx context.Context, txs []domain.Transaction) error {
	return insert(ctx, r.db, &txs)
}

// ExistingExternalIDs returns which of ids are already stored.
func (r *TransactionRepository) ExistingExternalIDs(ctx context.Context, ids []string) ([]string, error) {
	var found []string
	err := r.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("external_id IN ?", ids).
		Order("external_id").
		Pluck("external_id", &found).Error
	return found, err
}
