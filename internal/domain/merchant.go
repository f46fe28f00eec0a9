package domain

import "time" // Boarding date

// Merchant Model
type Merchant struct {
	ID            uint      `gorm:"primaryKey" json:"id" csv:"Id"`                              // Primary key
	Name          string    `gorm:"size:255;not null;uniqueIndex" json:"name" csv:"Name"`       // Unique merchant name
	URL           string    `gorm:"column:url;size:512;not null" json:"url" csv:"URL"`          // Merchant web site
	Country       string    `gorm:"size:100;not null;index" json:"country" csv:"Country"`       // Country of registration
	FirstAddress  string    `gorm:"size:255;not null" json:"firstAddress" csv:"FirstAddress"`   // Address line 1
	SecondAddress string    `gorm:"size:255;not null" json:"secondAddress" csv:"SecondAddress"` // Address line 2
	BoardingDate  time.Time `gorm:"not null" json:"boardingDate" csv:"BoardingDate"`            // Date the merchant was onboarded
	PartnerID     uint      `gorm:"not null;index" json:"partnerId" csv:"PartnerId"`            // Foreign key to Partner
}
