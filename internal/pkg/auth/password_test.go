package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, h.Compare(hash, "admin123"))
	assert.False(t, h.Compare(hash, "admin124"))
	assert.False(t, h.Compare("not-a-hash", "admin123"))
}

func TestHashPasswordTooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("é", 40), bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = HashPassword(strings.Repeat("p", 72), bcrypt.MinCost)
	assert.NoError(t, err)
}
