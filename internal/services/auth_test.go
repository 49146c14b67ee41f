package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/reelkeep/reeldb/internal/services"
	"github.com/reelkeep/reeldb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesToken(t *testing.T) {
	sessions := services.NewSessions("secret", time.Hour)

	token, err := sessions.Login("secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, sessions.Validate(token))

	// Each login gets its own token.
	second, err := sessions.Login("secret")
	require.NoError(t, err)
	assert.NotEqual(t, token, second)
}

func TestLoginEmptyPassword(t *testing.T) {
	sessions := services.NewSessions("secret", time.Hour)

	_, err := sessions.Login("")
	var custom *types.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, 400, custom.Code)
	assert.Equal(t, "Password is required", custom.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	sessions := services.NewSessions("secret", time.Hour)

	_, err := sessions.Login("guess")
	var custom *types.CustomError
	require.True(t, errors.As(err, &custom))
	assert.Equal(t, 401, custom.Code)
	assert.Equal(t, "Invalid password", custom.Message)
}

func TestValidateUnknownToken(t *testing.T) {
	sessions := services.NewSessions("secret", time.Hour)

	assert.False(t, sessions.Validate(""))
	assert.False(t, sessions.Validate("not-a-token"))
}

func TestLogoutInvalidatesToken(t *testing.T) {
	sessions := services.NewSessions("secret", time.Hour)

	token, err := sessions.Login("secret")
	require.NoError(t, err)

	sessions.Logout(token)
	assert.False(t, sessions.Validate(token))

	// Unknown tokens are a no-op.
	sessions.Logout("never-issued")
}

func TestExpiredTokenRejected(t *testing.T) {
	// A negative TTL makes every issued token already expired.
	sessions := services.NewSessions("secret", -time.Minute)

	token, err := sessions.Login("secret")
	require.NoError(t, err)
	assert.False(t, sessions.Validate(token))
}
