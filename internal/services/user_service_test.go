package services

import (
	"testing"

	"github.com/asifnewaz/blogsphere/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest(username string) *models.RegisterRequest {
	return &models.RegisterRequest{
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     username + "@example.com",
		Password:  "password123",
	}
}

func TestRegisterFirstUserIsAdmin(t *testing.T) {
	env := newTestEnv(t)

	first, err := env.users.Register(registerRequest("alice"))
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, first.Role)

	second, err := env.users.Register(registerRequest("bob"))
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleUser, second.Role)
}

func TestRegisterDuplicateIsConflict(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.users.Register(registerRequest("alice"))
	require.NoError(t, err)

	_, err = env.users.Register(registerRequest("alice"))
	assert.Equal(t, KindConflict, KindOf(err))

	// Same username, different email still collides.
	req := registerRequest("alice")
	req.Email = "other@example.com"
	_, err = env.users.Register(req)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.users.Register(registerRequest("alice"))
	require.NoError(t, err)

	// Either the email or the username works as identifier.
	user, err := env.users.Login(&models.LoginRequest{Identifier: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	user, err = env.users.Login(&models.LoginRequest{Identifier: "alice@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.users.Register(registerRequest("alice"))
	require.NoError(t, err)

	_, err = env.users.Login(&models.LoginRequest{Identifier: "nobody", Password: "password123"})
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = env.users.Login(&models.LoginRequest{Identifier: "alice", Password: "wrong-password"})
	assert.Equal(t, KindBadRequest, KindOf(err))

	require.NoError(t, env.db.Model(&models.User{}).Where("id = ?", created.ID).
		Update("status", models.UserStatusBanned).Error)
	_, err = env.users.Login(&models.LoginRequest{Identifier: "alice", Password: "password123"})
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestIssueToken(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.users.Register(registerRequest("alice"))
	require.NoError(t, err)

	token, err := env.users.IssueToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
