package gen

import (
	"database/sql"
	"time"
)

type User struct {
	ID                  string
	Name                string
	Email               string
	PasswordHash        string
	Role                string
	Status              string
	TotpSecretEncrypted sql.NullString
	TwoFactorEnabled    bool
	TotpConfirmedAt     sql.NullTime
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
