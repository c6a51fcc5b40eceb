// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Unique constraint names. The repository maps a violated constraint back to
// the field-specific domain error, so the names must match the index tags below.
const (
	ConstraintAccountsHandle = "idx_accounts_handle"
	ConstraintAccountsEmail  = "idx_accounts_email"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). It is an exported type so it can be used by the GORM Gen
// tool from other packages.
type AccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Handle         string    `gorm:"type:varchar(80);not null;uniqueIndex:idx_accounts_handle"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_email"`
	CredentialHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Sessions []SessionModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
