package db

import (
	"fmt" // Error wrapping

	"bank_reporting/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus"
	"gorm.io/gorm" // GORM ORM library
)

// foreignKey describes a constraint AutoMigrate cannot derive, because the
// models reference their parents by id only.
type foreignKey struct {
	name   string
	model  any
	table  string
	column string
	parent string
}

var foreignKeys = []foreignKey{
	{"fk_merchants_partner", &domain.Merchant{}, "merchants", "partner_id", "partners"},
	{"fk_transactions_merchant", &domain.Transaction{}, "transactions", "merchant_id", "merchants"},
}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing columns and unique indexes
	if err := db.AutoMigrate(&domain.Partner{}, &domain.Merchant{}, &domain.Transaction{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	// SQLite cannot add constraints to existing tables
	if db.Dialector.Name() == "sqlite" {
		return nil
	}
	for _, fk := range foreignKeys {
		if db.Migrator().HasConstraint(fk.model, fk.name) {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(id)", fk.table, fk.name, fk.column, fk.parent)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
		logrus.WithField("constraint", fk.name).Info("Foreign key created")
	}
	return nil
}
