package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
	"github.com/aussiebroadwan/pitwall/internal/auth/store"
)

type UserService struct {
	Store store.Store
}

// Me returns the caller's profile. A session outlives a later rejection, so
// the status is checked again here.
func (s *UserService) Me(ctx context.Context, userID string) (domain.SanitizedUser, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.SanitizedUser{}, ErrNotFound
		}
		return domain.SanitizedUser{}, storageErr("get user", err)
	}
	if u.Status != domain.StatusApproved {
		return domain.SanitizedUser{}, ErrNotApproved
	}
	return u.Sanitize(), nil
}
