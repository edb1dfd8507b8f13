package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeybox_RoundTrip(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	kb, err := NewKeybox(key)
	require.NoError(t, err)

	token, err := kb.Seal("sk-test-1234")
	require.NoError(t, err)
	assert.NotContains(t, token, "sk-test")

	plain, err := kb.Open(token)
	require.NoError(t, err)
	assert.Equal(t, "sk-test-1234", plain)
}

func TestKeybox_RejectsBadKeySize(t *testing.T) {
	_, err := NewKeybox([]byte("short"))
	require.Error(t, err)
}

func TestKeybox_RejectsTamperedCiphertext(t *testing.T) {
	key := make([]byte, 32)
	kb, err := NewKeybox(key)
	require.NoError(t, err)

	token, err := kb.Seal("secret")
	require.NoError(t, err)

	// Flip a character in the token body.
	tampered := []byte(token)
	if tampered[10] == 'A' {
		tampered[10] = 'B'
	} else {
		tampered[10] = 'A'
	}

	_, err = kb.Open(string(tampered))
	assert.ErrorIs(t, err, ErrInvalidCiphertext)

	_, err = kb.Open("not base64 at all!!!")
	assert.ErrorIs(t, err, ErrInvalidCiphertext)
}

func TestKeybox_NoncesDiffer(t *testing.T) {
	key := make([]byte, 32)
	kb, err := NewKeybox(key)
	require.NoError(t, err)

	t1, err := kb.Seal("same")
	require.NoError(t, err)
	t2, err := kb.Seal("same")
	require.NoError(t, err)
	assert.NotEqual(t, t1, t2)
}
