package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("user-1", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "insiderdm", claims.Issuer)
}

func TestValidToken_Garbage(t *testing.T) {
	_, err := ValidToken("not.a.token")
	assert.Error(t, err)
}

func TestValidToken_Tampered(t *testing.T) {
	token, err := GenerateToken("user-1", "alice")
	require.NoError(t, err)

	_, err = ValidToken(token + "x")
	assert.Error(t, err)
}
