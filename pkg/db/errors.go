package db

import (
	"errors"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// IsDuplicateKey reports whether the provided error is a sqlite uniqueness
// violation (explicit key or unique column collision on add).
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	// The gorm sqlite driver sometimes surfaces the message without the
	// typed error.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
