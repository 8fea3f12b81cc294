package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsIntegrityViolationError(t *testing.T) {
	require.False(t, isIntegrityViolationError(nil))
	require.False(t, isIntegrityViolationError(errors.New("connection reset")))

	require.True(t, isIntegrityViolationError(gorm.ErrDuplicatedKey))
	require.True(t, isIntegrityViolationError(gorm.ErrForeignKeyViolated))

	// SQLite surfaces violations as plain text.
	require.True(t, isIntegrityViolationError(errors.New("UNIQUE constraint failed: organizations.slug")))
	require.True(t, isIntegrityViolationError(errors.New("FOREIGN KEY constraint failed")))
}
