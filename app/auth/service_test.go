package auth

import (
	"testing"

	"blogview/app/repositories/mock"

	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	svc := NewService(mock.NewUserRepository())

	t.Run("creates an account with a hashed password", func(t *testing.T) {
		user, err := svc.Register("alice", "correct horse", "alice@example.com")
		assert.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "correct horse", user.PasswordHash)
	})

	t.Run("rejects a short password", func(t *testing.T) {
		_, err := svc.Register("bob", "short", "")
		assert.Error(t, err)
	})

	t.Run("rejects a duplicate username", func(t *testing.T) {
		_, err := svc.Register("alice", "another pass", "")
		assert.Error(t, err)
	})

	t.Run("rejects an invalid username", func(t *testing.T) {
		_, err := svc.Register("x", "long enough", "")
		assert.Error(t, err)
	})
}

func TestAuthenticate(t *testing.T) {
	svc := NewService(mock.NewUserRepository())
	_, err := svc.Register("alice", "correct horse", "")
	assert.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate("alice", "correct horse")
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("alice", "battery staple")
		assert.Equal(t, ErrInvalidCredentials, err)
	})

	t.Run("unknown username looks the same", func(t *testing.T) {
		_, err := svc.Authenticate("mallory", "whatever here")
		assert.Equal(t, ErrInvalidCredentials, err)
	})
}
