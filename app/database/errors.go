package database

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL error classes the handlers care about. Integrity violations are
// raised by the database itself and always reject the whole statement, so a
// failed write never leaves a partial row behind.
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
)

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsForeignKeyViolation reports whether err is a referential-integrity
// failure (a referenced row does not exist).
func IsForeignKeyViolation(err error) bool {
	return pqCode(err) == pqForeignKeyViolation
}

// IsUniqueViolation reports whether err is a duplicate-key failure, such as
// a second stock row for the same (center, resource) pair.
func IsUniqueViolation(err error) bool {
	return pqCode(err) == pqUniqueViolation
}

// IsCheckViolation reports whether err failed a CHECK constraint, such as
// current_load exceeding capacity.
func IsCheckViolation(err error) bool {
	return pqCode(err) == pqCheckViolation
}
