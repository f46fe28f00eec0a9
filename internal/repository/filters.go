package repository

import (
	"strings"

	"bank_reporting/internal/domain"

	"gorm.io/gorm"
)

// Scope narrows a query; filters are expressed as scopes so they compose
// with counting and paging.
type Scope = func(*gorm.DB) *gorm.DB

// Paginate applies offset and limit for the page. Rows are ordered by
// primary key so pages are stable.
func Paginate(p domain.PageFilter) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id").Offset(p.Offset()).Limit(p.PageSize)
	}
}

// MerchantFilter adds one predicate per set field of f.
func MerchantFilter(f domain.MerchantFilter) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if country := strings.TrimSpace(f.Country); country != "" {
			db = db.Where("country = ?", country)
		}
		if f.PartnerID != nil {
			db = db.Where("partner_id = ?", *f.PartnerID)
		}
		return db
	}
}

// TransactionFilter adds one predicate per set field of f. Ranges are inclusive.
func TransactionFilter(f domain.TransactionFilter) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if f.StartDate != nil {
			db = db.Where("create_date >= ?", *f.StartDate)
		}
		if f.EndDate != nil {
			db = db.Where("create_date <= ?", *f.EndDate)
		}
		if f.Direction != nil {
			db = db.Where("direction = ?", string(*f.Direction))
		}
		if f.MinAmount != nil {
			db = db.Where("amount >= ?", *f.MinAmount)
		}
		if f.MaxAmount != nil {
			db = db.Where("amount <= ?", *f.MaxAmount)
		}
		if f.Status != nil {
			db = db.Where("status = ?", string(*f.Status))
		}
		if f.MerchantID != nil {
			db = db.Where("merchant_id = ?", *f.MerchantID)
		}
		return db
	}
}
