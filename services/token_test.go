package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseAdminToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-signing-key")

	token, err := IssueAdminToken(9)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(9), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestParseAdminTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-signing-key")

	for _, raw := range []string{"", "abc", "a.b.c"} {
		_, err := ParseAdminToken(raw)
		assert.Error(t, err, raw)
	}
}

func TestParseAdminTokenRejectsWrongKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "key-mot")
	token, err := IssueAdminToken(9)
	require.NoError(t, err)

	t.Setenv("SECRET_KEY", "key-hai")
	_, err = ParseAdminToken(token)
	assert.Error(t, err)
}
