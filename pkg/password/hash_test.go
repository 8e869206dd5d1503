package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	hash, err := Hash("Ab1!efgh", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Ab1!efgh")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestHashInvalidCost(t *testing.T) {
	for _, cost := range []int{1, bcrypt.MaxCost + 1, -5} {
		_, err := Hash("secret", cost)
		assert.ErrorIs(t, err, ErrInvalidCost, "cost %d", cost)
	}
}
