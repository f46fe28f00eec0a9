package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"bank_reporting/internal/contracts"
	"bank_reporting/internal/domain"
	"bank_reporting/internal/events"
	"bank_reporting/internal/repository"

	"github.com/sirupsen/logrus"
)

// TransactionService reads transactions and ingests transaction batches
type TransactionService struct {
	transactions TransactionStore
	merchants    MerchantStore
	publisher    events.Publisher
	log          logrus.FieldLogger
	now          func() time.Time
}

// NewTransactionService wires the service; a nil publisher disables events
func NewTransactionService(transactions TransactionStore, merchants MerchantStore, publisher events.Publisher, log logrus.FieldLogger) *TransactionService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &TransactionService{
		transactions: transactions,
		merchants:    merchants,
		publisher:    publisher,
		log:          log.WithField("service", "transaction"),
		now:          time.Now,
	}
}

// GetByID returns the transaction with id or a NotFound error
func (s *TransactionService) GetByID(ctx context.Context, id uint) (*domain.Transaction, error) {
	t, err := s.transactions.GetByID(ctx, id)
	return lookup(t, err, "Transaction with id %d was not found", id)
}

// List returns one page of transactions matching f
func (s *TransactionService) List(ctx context.Context, f domain.TransactionFilter) (domain.Page[domain.Transaction], error) {
	f.PageFilter = f.PageFilter.Normalize()
	return s.transactions.List(ctx, f)
}

// Create stores every transaction of op under merchantID, or none of them.
func (s *TransactionService) Create(ctx context.Context, merchantID uint, op contracts.Operation) ([]domain.Transaction, error) {
	log := s.log.WithFields(logrus.Fields{"merchant_id": merchantID, "batch_size": len(op.Transactions)})

	if len(op.Transactions) == 0 {
		err := domain.Invalid("Operation contains no transactions")
		logFailure(log, err, "Transaction batch rejected")
		return nil, err
	}

	merchant, err := s.merchants.GetByID(ctx, merchantID)
	if _, err = lookup(merchant, err, "Merchant with id %d does not exist", merchantID); err != nil {
		logFailure(log, err, "Transaction batch rejected")
		return nil, err
	}

	txs := make([]domain.Transaction, 0, len(op.Transactions))
	ids := make([]string, 0, len(op.Transactions))
	for _, in := range op.Transactions {
		t := in.ToTransaction(merchant.ID)
		txs = append(txs, t)
		ids = append(ids, t.ExternalID)
	}
	if repeated := repeatedIDs(ids); len(repeated) > 0 {
		err := domain.Duplicate(nil, "Transactions with external ids %s are repeated in the batch", strings.Join(repeated, ", "))
		logFailure(log, err, "Transaction batch rejected")
		return nil, err
	}

	if err := s.transactions.CreateBatch(ctx, txs); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			err = s.duplicateBatch(ctx, ids, err)
		}
		logFailure(log, err, "Transaction batch failed")
		return nil, err
	}
	log.Info("Transaction batch stored")

	s.publish(ctx, log, merchant.ID, ids, op.FileTime())
	return txs, nil
}

// duplicateBatch names the external ids of the batch that are already stored
func (s *TransactionService) duplicateBatch(ctx context.Context, ids []string, cause error) error {
	existing, err := s.transactions.ExistingExternalIDs(ctx, ids)
	if err != nil || len(existing) == 0 {
		return domain.Duplicate(cause, "Transactions in the batch already exist")
	}
	return domain.Duplicate(cause, "Transactions with external ids %s already exist", strings.Join(existing, ", "))
}

// publish announces a committed batch. Failures never fail the request.
func (s *TransactionService) publish(ctx context.Context, log logrus.FieldLogger, merchantID uint, ids []string, fileDate *time.Time) {
	evt := events.TransactionsIngested{
		MerchantID:  merchantID,
		Count:       len(ids),
		ExternalIDs: ids,
		FileDate:    fileDate,
		OccurredAt:  s.now().UTC(),
	}
	if err := s.publisher.PublishTransactionsIngested(ctx, evt); err != nil {
		log.WithError(err).Warn("Failed to publish transactions ingested event")
	}
}

// repeatedIDs returns, sorted, every id occurring more than once
func repeatedIDs(ids []string) []string {
	seen := make(map[string]int, len(ids))
	for _, id := range ids {
		seen[id]++
	}
	var out []string
	for id, n := range seen {
		if n > 1 {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
