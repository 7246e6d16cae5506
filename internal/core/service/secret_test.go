package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSecret_LongSecrets(t *testing.T) {
	long := strings.Repeat("a", 80)

	hash, err := hashSecret(long)
	require.NoError(t, err)
	assert.True(t, secretMatches(hash, long))

	// Past bcrypt's 72-byte window the tail still counts.
	assert.False(t, secretMatches(hash, strings.Repeat("a", 72)))
	assert.False(t, secretMatches(hash, strings.Repeat("a", 79)+"b"))
}

func TestHashSecret_Matches(t *testing.T) {
	hash, err := hashSecret("admin")
	require.NoError(t, err)
	assert.True(t, secretMatches(hash, "admin"))
	assert.False(t, secretMatches(hash, "Admin"))
	assert.False(t, secretMatches(hash, ""))
}
