package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_VerifyRoundtrip(t *testing.T) {
	digest, err := HashPassword("pw123secret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$argon2id$"))
	assert.True(t, VerifyPassword(digest, "pw123secret"))
	assert.False(t, VerifyPassword(digest, "pw123secreT"))
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Both digests still verify the original password
	assert.True(t, VerifyPassword(first, "same-password"))
	assert.True(t, VerifyPassword(second, "same-password"))
}

func TestVerifyPassword_CrossPassword(t *testing.T) {
	digest, err := HashPassword("password-one")
	require.NoError(t, err)

	assert.False(t, VerifyPassword(digest, "password-two"))
}

func TestVerifyPassword_MalformedDigest(t *testing.T) {
	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"plain text", "not-a-digest"},
		{"wrong part count", "$argon2id$v=19$m=65536,t=3,p=4$onlyfourparts"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA"},
		{"bad version field", "$argon2id$vXX$m=65536,t=3,p=4$c2FsdA$aGFzaA"},
		{"bad params field", "$argon2id$v=19$nonsense$c2FsdA$aGFzaA"},
		{"invalid salt base64", "$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA"},
		{"invalid hash base64", "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must return false, never panic
			assert.False(t, VerifyPassword(tt.digest, "whatever"))
		})
	}
}

func TestVerifyPassword_EmptyPassword(t *testing.T) {
	digest, err := HashPassword("")
	require.NoError(t, err)

	assert.True(t, VerifyPassword(digest, ""))
	assert.False(t, VerifyPassword(digest, "nonempty"))
}
