package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guest_management/internal/repository"
	"guest_management/internal/testutil"
	"guest_management/internal/utils"
)

func TestCreateAdminRejectsDuplicateEmail(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	admin, err := svc.Auth.CreateAdmin(ctx, "Root@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", admin.Email)
	assert.True(t, admin.IsActive)

	_, err = svc.Auth.CreateAdmin(ctx, "root@example.com", "another-pass")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Email already registered")
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Auth.CreateAdmin(ctx, "root@example.com", "password123")
	require.NoError(t, err)

	token, err := svc.Auth.Login(ctx, "root@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)

	admin, err := svc.Auth.ResolveToken(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", admin.Email)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	_, err := svc.Auth.CreateAdmin(ctx, "root@example.com", "password123")
	require.NoError(t, err)

	_, wrongPassword := svc.Auth.Login(ctx, "root@example.com", "nope")
	_, unknownEmail := svc.Auth.Login(ctx, "ghost@example.com", "password123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestResolveTokenRejectsUnknownAdminAndExpiredToken(t *testing.T) {
	db := testutil.NewDB(t)
	repos := repository.NewRepositories(db)
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	auth := NewAuthService(repos.Admin, tokens)
	ctx := context.Background()

	orphan, err := tokens.GenerateToken("ghost@example.com", time.Hour)
	require.NoError(t, err)
	_, err = auth.ResolveToken(ctx, orphan)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = auth.ResolveToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = auth.CreateAdmin(ctx, "root@example.com", "password123")
	require.NoError(t, err)

	expired := utils.NewTokenManager("test-secret", time.Hour)
	token, err := expired.GenerateToken("root@example.com", time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	_, err = auth.ResolveToken(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	created, err := svc.Auth.EnsureAdmin(ctx, "root@example.com", "password123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = svc.Auth.EnsureAdmin(ctx, "root@example.com", "password123")
	require.NoError(t, err)
	assert.False(t, created)
}
