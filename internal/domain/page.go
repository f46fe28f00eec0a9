package domain

import (
	"math" // Page number bound
	"time" // Date range filters

	"github.com/shopspring/decimal" // Amount range filters
)

const (
	DefaultPageNumber = 1   // First page
	DefaultPageSize   = 10  // Results per page when not specified
	MaxPageSize       = 100 // Upper bound on results per page

	MaxPageNumber = math.MaxInt / MaxPageSize // Keeps Offset from overflowing
)

// Page is a bounded slice of a filtered result set plus the total matching count
type Page[T any] struct {
	TotalCount int64 `json:"totalCount"` // Matching records before paging
	Results    []T   `json:"results"`    // Records on the requested page
}

// PageFilter selects a page of a result set; PageNumber is 1-based
type PageFilter struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// Normalize clamps the page to valid bounds
func (p PageFilter) Normalize() PageFilter {
	if p.PageNumber < 1 {
		p.PageNumber = DefaultPageNumber
	}
	if p.PageNumber > MaxPageNumber {
		p.PageNumber = MaxPageNumber
	}
	switch {
	case p.PageSize < 1:
		p.PageSize = DefaultPageSize
	case p.PageSize > MaxPageSize:
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset is the number of records skipped before the page starts
func (p PageFilter) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// MerchantFilter narrows a merchant listing; zero values are ignored
type MerchantFilter struct {
	PageFilter
	Country   string `json:"country,omitempty"`   // Exact country match
	PartnerID *uint  `json:"partnerId,omitempty"` // Owning partner
}

// TransactionFilter narrows a transaction listing; nil fields are ignored
type TransactionFilter struct {
	PageFilter
	StartDate  *time.Time       `json:"startDate,omitempty"`  // Inclusive lower bound on CreateDate
	EndDate    *time.Time       `json:"endDate,omitempty"`    // Inclusive upper bound on CreateDate
	Direction  *Direction       `json:"direction,omitempty"`  // Debit or Credit
	MinAmount  *decimal.Decimal `json:"minAmount,omitempty"`  // Inclusive lower bound on Amount
	MaxAmount  *decimal.Decimal `json:"maxAmount,omitempty"`  // Inclusive upper bound on Amount
	Status     *Status          `json:"status,omitempty"`     // Failed or Successful
	MerchantID *uint            `json:"merchantId,omitempty"` // Owning merchant
}
