package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	v := NewBcryptVerifier(bcrypt.MinCost)

	hash, err := v.Hash("S3cure!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "S3cure!pass", hash)

	tests := []struct {
		name     string
		hash     string
		password string
		want     bool
	}{
		{name: "matching password", hash: hash, password: "S3cure!pass", want: true},
		{name: "wrong password", hash: hash, password: "s3cure!pass", want: false},
		{name: "malformed hash", hash: "not-a-hash", password: "S3cure!pass", want: false},
		{name: "empty hash", hash: "", password: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Verify(tt.hash, tt.password))
		})
	}
}

func TestBcryptVerifier_TooLong(t *testing.T) {
	v := NewBcryptVerifier(bcrypt.MinCost)

	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	_, err := v.Hash(string(long))
	assert.Error(t, err)
}
