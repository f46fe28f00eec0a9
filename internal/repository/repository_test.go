package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"bank_reporting/internal/config"
	"bank_reporting/internal/db"
	"bank_reporting/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{DBDriver: config.DriverSQLite, DBPath: filepath.Join(t.TempDir(), "repo.db")}
	gdb, err := db.Open(cfg, logrus.New())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func seedMerchants(t *testing.T, repo *MerchantRepository, partnerID uint, countries ...string) []domain.Merchant {
	t.Helper()
	var out []domain.Merchant
	for i, country := range countries {
		m := domain.Merchant{
			Name:          fmt.Sprintf("Merchant %d-%d", partnerID, i),
			URL:           "merchant.example",
			Country:       country,
			FirstAddress:  "1 Main St",
			SecondAddress: "Suite 1",
			BoardingDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			PartnerID:     partnerID,
		}
		require.NoError(t, repo.Create(context.Background(), &m))
		out = append(out, m)
	}
	return out
}

func makeTransaction(externalID string, merchantID uint, dir domain.Direction, status domain.Status, amount string, day int) domain.Transaction {
	return domain.Transaction{
		Direction:       dir,
		Amount:          decimal.RequireFromString(amount),
		Currency:        "EUR",
		DebtorIBAN:      "DE89370400440532013000",
		BeneficiaryIBAN: "GB29NWBK60161331926819",
		Status:          status,
		ExternalID:      externalID,
		CreateDate:      time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC),
		MerchantID:      merchantID,
	}
}

func uintPtr(v uint) *uint { return &v }

func TestPartnerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPartnerRepository(openTestDB(t))

	p := domain.Partner{Name: "Acme"}
	require.NoError(t, repo.Create(ctx, &p))
	require.NotZero(t, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, *got)

	_, err = repo.GetByID(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)

	err = repo.Create(ctx, &domain.Partner{Name: "Acme"})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestPaginationStableAndCounted(t *testing.T) {
	ctx := context.Background()
	repo := NewPartnerRepository(openTestDB(t))
	for i := 1; i <= 7; i++ {
		require.NoError(t, repo.Create(ctx, &domain.Partner{Name: fmt.Sprintf("Partner %d", i)}))
	}

	page, err := repo.List(ctx, domain.PageFilter{PageNumber: 2, PageSize: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 7, page.TotalCount)
	require.Len(t, page.Results, 3)
	assert.Equal(t, "Partner 4", page.Results[0].Name)
	assert.Equal(t, "Partner 6", page.Results[2].Name)

	last, err := repo.List(ctx, domain.PageFilter{PageNumber: 3, PageSize: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 7, last.TotalCount)
	require.Len(t, last.Results, 1)

	beyond, err := repo.List(ctx, domain.PageFilter{PageNumber: 10, PageSize: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 7, beyond.TotalCount)
	assert.NotNil(t, beyond.Results)
	assert.Empty(t, beyond.Results)
}

func TestMerchantFilter(t *testing.T) {
	ctx := context.Background()
	gdb := openTestDB(t)
	partners := NewPartnerRepository(gdb)
	merchants := NewMerchantRepository(gdb)

	p1, p2 := domain.Partner{Name: "P1"}, domain.Partner{Name: "P2"}
	require.NoError(t, partners.Create(ctx, &p1))
	require.NoError(t, partners.Create(ctx, &p2))
	seedMerchants(t, merchants, p1.ID, "BG", "DE", "BG")
	seedMerchants(t, merchants, p2.ID, "BG", "FR")

	cases := []struct {
		name   string
		filter domain.MerchantFilter
		want   int64
	}{
		{"no filter", domain.MerchantFilter{}, 5},
		{"blank country ignored", domain.MerchantFilter{Country: "  "}, 5},
		{"country", domain.MerchantFilter{Country: "BG"}, 3},
		{"partner", domain.MerchantFilter{PartnerID: uintPtr(p1.ID)}, 3},
		{"country and partner", domain.MerchantFilter{Country: "BG", PartnerID: uintPtr(p2.ID)}, 1},
		{"no match", domain.MerchantFilter{Country: "US"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.filter.PageFilter = domain.PageFilter{PageNumber: 1, PageSize: 2}
			page, err := merchants.List(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, page.TotalCount)
			assert.LessOrEqual(t, len(page.Results), 2)
			for _, m := range page.Results {
				if tc.filter.Country != "" && tc.filter.Country != "  " {
					assert.Equal(t, tc.filter.Country, m.Country)
				}
				if tc.filter.PartnerID != nil {
					assert.Equal(t, *tc.filter.PartnerID, m.PartnerID)
				}
			}
		})
	}
}

func TestTransactionFilter(t *testing.T) {
	ctx := context.Background()
	gdb := openTestDB(t)
	partners := NewPartnerRepository(gdb)
	merchants := NewMerchantRepository(gdb)
	txs := NewTransactionRepository(gdb)

	p := domain.Partner{Name: "P"}
	require.NoError(t, partners.Create(ctx, &p))
	ms := seedMerchants(t, merchants, p.ID, "BG", "DE")

	require.NoError(t, txs.CreateBatch(ctx, []domain.Transaction{
		makeTransaction("T1", ms[0].ID, domain.Debit, domain.Successful, "10.50", 1),
		makeTransaction("T2", ms[0].ID, domain.Credit, domain.Failed, "100", 2),
		makeTransaction("T3", ms[0].ID, domain.Debit, domain.Failed, "250.25", 3),
		makeTransaction("T4", ms[1].ID, domain.Credit, domain.Successful, "99.99", 4),
		makeTransaction("T5", ms[1].ID, domain.Debit, domain.Successful, "1000", 5),
	}))

	date := func(day int) *time.Time {
		v := time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC)
		return &v
	}
	amount := func(s string) *decimal.Decimal {
		v := decimal.RequireFromString(s)
		return &v
	}
	debit, credit := domain.Debit, domain.Credit
	failed, successful := domain.Failed, domain.Successful

	cases := []struct {
		name   string
		filter domain.TransactionFilter
		want   []string
	}{
		{"all", domain.TransactionFilter{}, []string{"T1", "T2", "T3", "T4", "T5"}},
		{"start date inclusive", domain.TransactionFilter{StartDate: date(4)}, []string{"T4", "T5"}},
		{"end date inclusive", domain.TransactionFilter{EndDate: date(2)}, []string{"T1", "T2"}},
		{"date range", domain.TransactionFilter{StartDate: date(2), EndDate: date(3)}, []string{"T2", "T3"}},
		{"direction", domain.TransactionFilter{Direction: &credit}, []string{"T2", "T4"}},
		{"min amount inclusive", domain.TransactionFilter{MinAmount: amount("100")}, []string{"T2", "T3", "T5"}},
		{"max amount inclusive", domain.TransactionFilter{MaxAmount: amount("99.99")}, []string{"T1", "T4"}},
		{"amount range", domain.TransactionFilter{MinAmount: amount("50"), MaxAmount: amount("300")}, []string{"T2", "T3", "T4"}},
		{"status", domain.TransactionFilter{Status: &failed}, []string{"T2", "T3"}},
		{"merchant", domain.TransactionFilter{MerchantID: uintPtr(ms[1].ID)}, []string{"T4", "T5"}},
		{"combined", domain.TransactionFilter{Direction: &debit, Status: &successful, MinAmount: amount("20")}, []string{"T5"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.filter.PageFilter = domain.PageFilter{PageNumber: 1, PageSize: 10}
			page, err := txs.List(ctx, tc.filter)
			require.NoError(t, err)
			assert.EqualValues(t, len(tc.want), page.TotalCount)
			var got []string
			for _, tx := range page.Results {
				got = append(got, tx.ExternalID)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTransactionBatchIsAtomic(t *testing.T) {
	ctx := context.Background()
	gdb := openTestDB(t)
	partners := NewPartnerRepository(gdb)
	merchants := NewMerchantRepository(gdb)
	txs := NewTransactionRepository(gdb)

	p := domain.Partner{Name: "P"}
	require.NoError(t, partners.Create(ctx, &p))
	m := seedMerchants(t, merchants, p.ID, "BG")[0]

	require.NoError(t, txs.CreateBatch(ctx, []domain.Transaction{makeTransaction("EXT1", m.ID, domain.Debit, domain.Successful, "1", 1)}))

	err := txs.CreateBatch(ctx, []domain.Transaction{
		makeTransaction("EXT2", m.ID, domain.Debit, domain.Successful, "2", 2),
		makeTransaction("EXT1", m.ID, domain.Credit, domain.Failed, "3", 3),
	})
	require.ErrorIs(t, err, ErrDuplicate)

	page, err := txs.List(ctx, domain.TransactionFilter{PageFilter: domain.PageFilter{PageNumber: 1, PageSize: 10}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalCount)

	existing, err := txs.ExistingExternalIDs(ctx, []string{"EXT1", "EXT2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"EXT1"}, existing)
}

func TestTransactionAmountRoundTrip(t *testing.T) {
	ctx := context.Background()
	gdb := openTestDB(t)
	txs := NewTransactionRepository(gdb)

	batch := []domain.Transaction{makeTransaction("EXT-A", 1, domain.Credit, domain.Successful, "200.75", 9)}
	require.NoError(t, txs.CreateBatch(ctx, batch))

	got, err := txs.GetByID(ctx, batch[0].ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("200.75").Equal(got.Amount))
	assert.Equal(t, domain.Credit, got.Direction)
	assert.Equal(t, domain.Successful, got.Status)
	assert.True(t, batch[0].CreateDate.Equal(got.CreateDate))
}
