package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyRoundTrip(t *testing.T) {
	digest, err := Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.NoError(t, Verify(&digest, "correct horse battery staple"))
	assert.ErrorIs(t, Verify(&digest, "wrong password"), ErrMismatch)
}

func TestHashSaltsFreshly(t *testing.T) {
	first, err := Hash("secret123")
	require.NoError(t, err)
	second, err := Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, Verify(&first, "secret123"))
	assert.NoError(t, Verify(&second, "secret123"))
}

func TestVerifyNoPassword(t *testing.T) {
	assert.ErrorIs(t, Verify(nil, "anything"), ErrNoPassword)

	empty := ""
	assert.ErrorIs(t, Verify(&empty, "anything"), ErrNoPassword)
}

func TestVerifyMalformedDigest(t *testing.T) {
	garbage := "not-a-bcrypt-digest"
	assert.ErrorIs(t, Verify(&garbage, "anything"), ErrMismatch)
}
