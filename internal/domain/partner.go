package domain

// Partner Model
type Partner struct {
	ID   uint   `gorm:"primaryKey" json:"id" csv:"Id"`                        // Primary key
	Name string `gorm:"size:255;not null;uniqueIndex" json:"name" csv:"Name"` // Unique partner name
}
