package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"flightly/internal/shared/storage"
	"flightly/pkg/logger"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	store, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	return NewService(NewRepository(store), bcrypt.MinCost, logger.GetDefault())
}

func TestCreateHashesPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	u, err := svc.Create(ctx, CreateParams{Username: "alice", Password: "secret1", Role: RolePassenger})
	require.NoError(t, err)
	assert.Equal(t, "PAS-", string(u.ID[:4]))
	assert.NotEqual(t, "secret1", u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))
}

func TestRolePrefixes(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	admin, err := svc.Create(ctx, CreateParams{Username: "root", Password: "secret1", Role: RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "ADM-", string(admin.ID[:4]))

	manager, err := svc.Create(ctx, CreateParams{Username: "desk", Password: "secret1", Role: RoleBookingManager})
	require.NoError(t, err)
	assert.Equal(t, "BM-", string(manager.ID[:3]))
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	_, err := svc.Create(ctx, CreateParams{Username: "alice", Password: "secret1", Role: RolePassenger})
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDuplicateUsernameRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	_, err := svc.Create(ctx, CreateParams{Username: "alice", Password: "secret1", Role: RolePassenger})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateParams{Username: "alice", Password: "other12", Role: RoleAdmin})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestCreateValidatesParams(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Create(ctx, CreateParams{Username: "al", Password: "secret1", Role: RolePassenger})
	assert.Error(t, err, "username too short")

	_, err = svc.Create(ctx, CreateParams{Username: "alice", Password: "short", Role: RolePassenger})
	assert.Error(t, err, "password too short")

	_, err = svc.Create(ctx, CreateParams{Username: "alice", Password: "secret1", Role: Role("Ghost")})
	assert.Error(t, err, "unknown role")

	_, err = svc.Create(ctx, CreateParams{Username: "alice", Password: "secret1", Role: RolePassenger, LoyaltyPoints: 150})
	assert.Error(t, err, "loyalty points above cap")
}

func TestUpdatePassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	u, err := svc.Create(ctx, CreateParams{Username: "alice", Password: "secret1", Role: RolePassenger})
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePassword(ctx, u.ID, "changed1"))

	_, err = svc.Authenticate(ctx, "alice", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate(ctx, "alice", "changed1")
	assert.NoError(t, err)
}
