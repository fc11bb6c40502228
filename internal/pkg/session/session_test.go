//go:build unit

package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gottliebdinh/moggi-admin/internal/pkg/session"
)

func TestIssueAndValidate(t *testing.T) {
	svc := session.NewService("test-secret", time.Hour)

	token, err := svc.Issue(time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.Validate(token))
}

func TestValidateExpired(t *testing.T) {
	svc := session.NewService("test-secret", time.Hour)

	token, err := svc.Issue(time.Now().Add(-2 * time.Hour))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Validate(token), session.ErrExpiredToken)
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := session.NewService("secret-a", time.Hour)
	verifier := session.NewService("secret-b", time.Hour)

	token, err := issuer.Issue(time.Now())
	require.NoError(t, err)

	assert.ErrorIs(t, verifier.Validate(token), session.ErrInvalidToken)
}

func TestValidateGarbage(t *testing.T) {
	svc := session.NewService("test-secret", time.Hour)

	assert.ErrorIs(t, svc.Validate("not-a-token"), session.ErrInvalidToken)
	assert.ErrorIs(t, svc.Validate(""), session.ErrInvalidToken)
}

func TestDuration(t *testing.T) {
	svc := session.NewService("test-secret", 30*24*time.Hour)
	assert.Equal(t, 30*24*time.Hour, svc.Duration())
}
