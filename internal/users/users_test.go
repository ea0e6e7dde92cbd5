package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/RahatGithub/QBoard/internal/storage"
	"github.com/RahatGithub/QBoard/pkg/types"
)

func setup(t *testing.T) *Service {
	db, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewService(db, zap.NewNop())
}

func TestRegister(t *testing.T) {
	service := setup(t)
	ctx := context.Background()

	user, err := service.Register(ctx, RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Greater(t, user.ID, int64(0))
	assert.Equal(t, types.RoleUser, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func TestRegister_EmptyPassword(t *testing.T) {
	service := setup(t)

	_, err := service.Register(context.Background(), RegisterRequest{Username: "alice"})
	assert.Error(t, err)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	service := setup(t)
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	_, err = service.Register(ctx, RegisterRequest{Username: "alice", Password: "other456"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegister_ExplicitRole(t *testing.T) {
	service := setup(t)

	user, err := service.Register(context.Background(), RegisterRequest{
		Username: "boss",
		Password: "secret123",
		Role:     types.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, types.RoleAdmin, user.Role)
}

func TestUpdate_PreservesPasswordHash(t *testing.T) {
	service := setup(t)
	ctx := context.Background()

	user, err := service.Register(ctx, RegisterRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	originalHash := user.PasswordHash

	user.Email = "new@example.com"
	require.NoError(t, service.Update(ctx, user))

	reloaded, err := service.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", reloaded.Email)
	assert.Equal(t, originalHash, reloaded.PasswordHash)
}

func TestDelete(t *testing.T) {
	service := setup(t)
	ctx := context.Background()

	user, err := service.Register(ctx, RegisterRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, user.ID))

	_, err = service.Get(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
