package postgres

import (
	"testing"

	"atrium/internal/infra/persistence/model"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: constraint,
	}
}

func TestViolatedConstraint(t *testing.T) {
	assert.Equal(t, model.ConstraintAccountsHandle, violatedConstraint(uniqueViolation(model.ConstraintAccountsHandle)))
	assert.Equal(t, model.ConstraintAccountsEmail, violatedConstraint(uniqueViolation(model.ConstraintAccountsEmail)))

	// The driver error stays recognizable through wrapping.
	wrapped := errors.Wrap(uniqueViolation(model.ConstraintAccountsEmail), "insert accounts")
	assert.Equal(t, model.ConstraintAccountsEmail, violatedConstraint(wrapped))

	assert.Empty(t, violatedConstraint(nil))
	assert.Empty(t, violatedConstraint(errors.New("timeout")))
	assert.Empty(t, violatedConstraint(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(uniqueViolation("some_index")))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(errors.New("timeout")))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(uniqueViolation("some_index")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgerrcode.NotNullViolation}))
	assert.False(t, isNotNullConstraintViolation(errors.New("timeout")))
}
