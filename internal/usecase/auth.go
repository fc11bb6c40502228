package usecase

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gottliebdinh/moggi-admin/internal/pkg/clock"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/errs"
	"github.com/gottliebdinh/moggi-admin/internal/pkg/session"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrTokenIssue      = errors.New("failed to issue session token")
)

type AuthUseCase interface {
	Login(password string) (string, error)
	ValidateSession(token string) error
}

type authUseCaseImpl struct {
	adminPassword string
	sessions      *session.Service
	clock         clock.Clock
}

func NewAuthUseCase(adminPassword string, sessions *session.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		adminPassword: adminPassword,
		sessions:      sessions,
		clock:         clk,
	}
}

// Login checks the supplied password against the configured admin secret
// and issues a session token. The configured value may be a bcrypt hash or
// a plain password; plain values are compared in constant time.
func (u *authUseCaseImpl) Login(password string) (string, error) {
	if !u.passwordMatches(password) {
		return "", ErrInvalidPassword
	}
	token, err := u.sessions.Issue(u.clock.Now())
	if err != nil {
		return "", errs.Mark(err, ErrTokenIssue)
	}
	return token, nil
}

func (u *authUseCaseImpl) ValidateSession(token string) error {
	return u.sessions.Validate(token)
}

func (u *authUseCaseImpl) passwordMatches(password string) bool {
	if strings.HasPrefix(u.adminPassword, "$2a$") || strings.HasPrefix(u.adminPassword, "$2b$") || strings.HasPrefix(u.adminPassword, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(u.adminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(u.adminPassword), []byte(password)) == 1
}
