package service

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/pitwall/internal/auth/domain"
	"github.com/aussiebroadwan/pitwall/pkg/idx"
	"github.com/aussiebroadwan/pitwall/pkg/jwtx"
)

// Session is a signed bearer token handed out after a completed login.
type Session struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int
	ExpiresAt   time.Time
}

// SessionIssuer mints session tokens for users who passed every required factor.
type SessionIssuer struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

func (s *SessionIssuer) ttl() time.Duration {
	if s.TTL <= 0 {
		return jwtx.DefaultSessionTTL
	}
	return s.TTL
}

// Issue signs a token for u carrying the given authentication methods.
func (s *SessionIssuer) Issue(u domain.User, amr []string) (Session, error) {
	now := nowUTC(s.Now)
	ttl := s.ttl()

	claims := jwtx.NewSessionClaims(
		u.ID,
		idx.NewAt(now).String(),
		amr,
		string(u.Role),
		u.Name,
		ttl,
		s.Issuer,
		now,
	)

	tok, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, fmt.Errorf("sign session token: %w", err)
	}

	return Session{
		AccessToken: tok,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
		ExpiresAt:   now.Add(ttl),
	}, nil
}
