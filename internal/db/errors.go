package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const (
	mysqlDuplicateEntry = 1062    // ER_DUP_ENTRY
	pgUniqueViolation   = "23505" // unique_violation
)

// IsUniqueViolation reports whether err is a unique constraint violation.
// gorm translates driver errors when TranslateError is set; the raw driver
// errors are checked as well for connections opened without it.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) && isSQLiteUnique(liteErr) {
		return true
	}
	var liteErrPtr *sqlite3.Error
	if errors.As(err, &liteErrPtr) && isSQLiteUnique(*liteErrPtr) {
		return true
	}
	return false
}

func isSQLiteUnique(e sqlite3.Error) bool {
	return e.ExtendedCode == sqlite3.ErrConstraintUnique || e.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
