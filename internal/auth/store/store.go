package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite) implement
// this. Sub-repositories are exposed as methods so a Tx-scoped Store hands out
// repos bound to the same transaction, and nothing can open a transaction
// inside another one.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Users is the credential store. Callers normalise emails with
// domain.NormalizeEmail before calling it; the store compares verbatim.
type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used by login and registration.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts u and returns the stored record. The id (ULID),
	// timestamps, status (pending) and role (user) are filled in when empty.
	// A duplicate email returns ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// UpdateUser applies a partial update and bumps updated_at. Unset patch
	// fields are left untouched; an unknown id returns ErrNotFound.
	UpdateUser(ctx context.Context, id string, patch domain.UserPatch) error

	// ListUsers returns every user, oldest first.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CountAdmins counts users with role admin, regardless of status.
	CountAdmins(ctx context.Context) (int64, error)
}
