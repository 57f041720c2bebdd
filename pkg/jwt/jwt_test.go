package jwt

import (
	"testing"
	"time"

	"liber-server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(secret string, ttl time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: secret, TTL: ttl})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService("test-secret", time.Hour)

	token, err := svc.GenerateToken("ana.souza", []string{"ROLE_SOCIAL_ASSISTANT", "ROLE_PSYCHOLOGIST"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana.souza", claims.Subject)
	assert.Equal(t, []string{"ROLE_SOCIAL_ASSISTANT", "ROLE_PSYCHOLOGIST"}, claims.Roles())
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := testService("secret-a", time.Hour).GenerateToken("ana", nil)
	require.NoError(t, err)

	_, err = testService("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService("test-secret", -time.Minute)

	token, err := svc.GenerateToken("ana", []string{"ROLE_DENTIST"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	_, err := testService("test-secret", time.Hour).ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestClaimsRoles(t *testing.T) {
	tests := []struct {
		auth     string
		expected []string
	}{
		{"", nil},
		{"ROLE_DENTIST", []string{"ROLE_DENTIST"}},
		{"ROLE_DENTIST ROLE_ADMIN", []string{"ROLE_DENTIST", "ROLE_ADMIN"}},
	}

	for _, tt := range tests {
		c := &Claims{Auth: tt.auth}
		assert.Equal(t, tt.expected, c.Roles())
	}
}
