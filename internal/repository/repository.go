package repository

import (
	"context"
	"errors"
	"fmt"

	"bank_reporting/internal/db"
	"bank_reporting/internal/domain"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row has the requested primary key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate wraps a unique constraint violation reported by the store.
	ErrDuplicate = errors.New("duplicate record")
)

// findByID fetches a single row by primary key.
func findByID[T any](ctx context.Context, gdb *gorm.DB, id uint) (*T, error) {
	var row T
	err := gdb.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// findPage counts every row matching scopes, then loads the requested page.
func findPage[T any](ctx context.Context, gdb *gorm.DB, page domain.PageFilter, scopes ...Scope) (domain.Page[T], error) {
	query := gdb.WithContext(ctx).Model(new(T)).Scopes(scopes...)

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return domain.Page[T]{}, fmt.Errorf("count: %w", err)
	}
	results := []T{}
	if err := query.Session(&gorm.Session{}).Scopes(Paginate(page)).Find(&results).Error; err != nil {
		return domain.Page[T]{}, fmt.Errorf("find: %w", err)
	}
	return domain.Page[T]{TotalCount: total, Results: results}, nil
}

// insert stores value, a model pointer or a pointer to a slice of models, in
// a single database transaction. Generated ids are written back into value.
func insert(ctx context.Context, gdb *gorm.DB, value any) error {
	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(value).Error
	})
	return classify(err)
}

func classify(err error) error {
	if err != nil && db.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	}
	return err
}
