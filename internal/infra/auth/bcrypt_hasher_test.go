package auth

import (
	"testing"

	"biaresh/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, hasher.Check("admin123", hash))
	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("admin123", "invalid_hash"))
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		wantCost int
	}{
		{name: "custom", cost: 6, wantCost: 6},
		{name: "below minimum", cost: 1, wantCost: bcrypt.DefaultCost},
		{name: "zero", cost: 0, wantCost: bcrypt.DefaultCost},
		{name: "above maximum", cost: 99, wantCost: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := NewBcryptHasherWithCost(tt.cost).Hash("secret")
			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cost)
		})
	}
}

func TestNewConfiguredHasher(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Admin.BcryptCost = 5

	hash, err := NewConfiguredHasher(cfg).Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}
