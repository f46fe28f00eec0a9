// Package contracts holds the XML documents accepted by the write endpoints.
// Required fields are enforced by gin's validator through `binding` tags
// before a payload reaches a service. Text fields are trimmed when mapped, so
// they are also tagged notblank (see RegisterValidators).
package contracts

import (
	"encoding/xml"
	"strings"
	"time"

	"bank_reporting/internal/domain"

	"github.com/shopspring/decimal"
)

// Partner is the payload of POST /partners
type Partner struct {
	XMLName xml.Name `xml:"Partner"`
	Name    string   `xml:"Name" binding:"required,notblank,max=255"`
}

// Merchant is the payload of POST /merchants
type Merchant struct {
	XMLName       xml.Name          `xml:"Merchant"`
	Name          string            `xml:"Name" binding:"required,notblank,max=255"`
	URL           string            `xml:"URL" binding:"required,notblank,max=512"`
	Country       string            `xml:"Country" binding:"required,notblank,max=100"`
	FirstAddress  string            `xml:"FirstAddress" binding:"required,notblank,max=255"`
	SecondAddress string            `xml:"SecondAddress" binding:"required,notblank,max=255"`
	BoardingDate  *domain.Timestamp `xml:"BoardingDate" binding:"required"`
}

// Operation is the payload of POST /transactions: a batch of transactions
type Operation struct {
	XMLName      xml.Name          `xml:"Operation"`
	FileDate     *domain.Timestamp `xml:"FileDate"`
	Transactions []Transaction     `xml:"Transactions>Transaction" binding:"required,min=1,dive"`
}

// Transaction is one entry of an Operation
type Transaction struct {
	ExternalID  string            `xml:"ExternalId" binding:"required,notblank,max=64"`
	CreateDate  *domain.Timestamp `xml:"CreateDate" binding:"required"`
	Amount      *Amount           `xml:"Amount" binding:"required"`
	Status      *domain.Status    `xml:"Status" binding:"required"`
	Debtor      *Account          `xml:"Debtor" binding:"required"`
	Beneficiary *Account          `xml:"Beneficiary" binding:"required"`
}

// Amount carries the value, currency and direction of a transaction
type Amount struct {
	Direction *domain.Direction `xml:"Direction" binding:"required"`
	Value     *decimal.Decimal  `xml:"Value" binding:"required"`
	Currency  string            `xml:"Currency" binding:"required,notblank,max=3"`
}

// Account identifies a debtor or beneficiary; only the IBAN is persisted
type Account struct {
	BankName string `xml:"BankName"`
	BIC      string `xml:"BIC"`
	IBAN     string `xml:"IBAN" binding:"required,notblank,max=34"`
}

// ToPartner maps the payload onto a new Partner
func (p Partner) ToPartner() domain.Partner {
	return domain.Partner{Name: strings.TrimSpace(p.Name)}
}

// ToMerchant maps the payload onto a new Merchant owned by partnerID
func (m Merchant) ToMerchant(partnerID uint) domain.Merchant {
	return domain.Merchant{
		Name:          strings.TrimSpace(m.Name),
		URL:           strings.TrimSpace(m.URL),
		Country:       strings.TrimSpace(m.Country),
		FirstAddress:  strings.TrimSpace(m.FirstAddress),
		SecondAddress: strings.TrimSpace(m.SecondAddress),
		BoardingDate:  timeOf(m.BoardingDate),
		PartnerID:     partnerID,
	}
}

// ToTransaction maps the payload onto a new Transaction owned by merchantID
func (t Transaction) ToTransaction(merchantID uint) domain.Transaction {
	tx := domain.Transaction{
		ExternalID: strings.TrimSpace(t.ExternalID),
		CreateDate: timeOf(t.CreateDate),
		MerchantID: merchantID,
	}
	if t.Amount != nil {
		if t.Amount.Direction != nil {
			tx.Direction = *t.Amount.Direction
		}
		if t.Amount.Value != nil {
			tx.Amount = *t.Amount.Value
		}
		tx.Currency = strings.TrimSpace(t.Amount.Currency)
	}
	if t.Status != nil {
		tx.Status = *t.Status
	}
	if t.Debtor != nil {
		tx.DebtorIBAN = strings.TrimSpace(t.Debtor.IBAN)
	}
	if t.Beneficiary != nil {
		tx.BeneficiaryIBAN = strings.TrimSpace(t.Beneficiary.IBAN)
	}
	return tx
}

// FileTime returns the operation file date, if present
func (o Operation) FileTime() *time.Time {
	if o.FileDate == nil {
		return nil
	}
	t := o.FileDate.Time
	return &t
}

func timeOf(ts *domain.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.Time.UTC()
}
