package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// violatedConstraintContains reports whether the violated constraint or column
// mentioned in the driver message matches the given fragment. GORM translates
// the error class but keeps the original message, which names the index.
func violatedConstraintContains(err error, fragment string) bool {
	if err == nil {
		return false
	}

	return strings.Contains(strings.ToLower(err.Error()), strings.ToLower(fragment))
}
