package domain

import (
	"time" // Creation timestamp

	"github.com/shopspring/decimal" // Exact decimal amounts
)

// Transaction Model
type Transaction struct {
	ID              uint            `gorm:"primaryKey" json:"id" csv:"Id"`                           // Primary key
	Direction       Direction       `gorm:"size:16;not null;index" json:"direction" csv:"Direction"` // Debit or Credit
	Amount          decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"amount" csv:"Amount"`  // Transaction amount
	Currency        string          `gorm:"size:3;not null" json:"currency" csv:"Currency"`          // ISO 4217 currency code
	DebtorIBAN      string          `gorm:"column:debtor_iban;size:34;not null" json:"debtorIBAN" csv:"DebtorIBAN"`
	BeneficiaryIBAN string          `gorm:"column:beneficiary_iban;size:34;not null" json:"beneficiaryIBAN" csv:"BeneficiaryIBAN"`
	Status          Status          `gorm:"size:16;not null;index" json:"status" csv:"Status"`               // Failed or Successful
	ExternalID      string          `gorm:"size:64;not null;uniqueIndex" json:"externalId" csv:"ExternalId"` // Idempotency key from the submitter
	CreateDate      time.Time       `gorm:"not null;index" json:"createDate" csv:"CreateDate"`               // When the transaction happened
	MerchantID      uint            `gorm:"not null;index" json:"merchantId" csv:"MerchantId"`               // Foreign key to Merchant
}
