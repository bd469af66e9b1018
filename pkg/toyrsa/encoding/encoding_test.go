package encoding_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvellconsultants/toyrsa-go/pkg/toyrsa/encoding"
)

func TestIntBytesRoundTrip(t *testing.T) {
	n := new(big.Int)
	n.SetString("9765245987065408765087654320876543098736409876543", 10)

	got := encoding.IntFromBytes(encoding.IntToBytes(n))
	require.Zero(t, got.Cmp(n))
}

func TestEncodeIntRoundTrip(t *testing.T) {
	values := []string{"0", "1", "255", "256", "65537",
		"9765245987065408765087654320876543098736409876543"}

	for _, v := range values {
		n, ok := new(big.Int).SetString(v, 10)
		require.True(t, ok)

		got, err := encoding.DecodeInt(encoding.EncodeInt(n))
		require.NoError(t, err)
		assert.Zero(t, got.Cmp(n), "round trip of %s", v)
	}
}

func TestDecodeIntRejectsGarbage(t *testing.T) {
	_, err := encoding.DecodeInt("not base64 !!!")
	require.Error(t, err)
}

func TestPublicKeyTextRoundTrip(t *testing.T) {
	n := big.NewInt(3233)
	e := big.NewInt(17)

	text := encoding.EncodePublicKey(n, e)
	gotN, gotE, err := encoding.DecodePublicKey(text)
	require.NoError(t, err)
	assert.Zero(t, gotN.Cmp(n))
	assert.Zero(t, gotE.Cmp(e))
}

func TestDecodePublicKeyErrors(t *testing.T) {
	tests := []struct {
		name, text string
	}{
		{"no comma", "AAAA"},
		{"too many fields", "AA,BB,CC"},
		{"bad base64 modulus", "!!,AA"},
		{"bad base64 exponent", "AA,!!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := encoding.DecodePublicKey(tc.text)
			require.ErrorIs(t, err, encoding.ErrBadKeyText)
		})
	}
}

func TestChunkify(t *testing.T) {
	assert.Equal(t, "abc", encoding.Chunkify("abc", 5))
	assert.Equal(t, "abcde\nfghij\nk", encoding.Chunkify("abcdefghijk", 5))
	assert.Equal(t, "abc", encoding.Chunkify("abc", 0))
}

func TestSplitMessageUnitsBelowModulus(t *testing.T) {
	modulus := new(big.Int).Lsh(big.NewInt(1), 61) // 62-bit modulus → 7-byte units

	msg := []byte("attack at dawn, not a byte sooner")
	units, err := encoding.SplitMessage(msg, modulus)
	require.NoError(t, err)
	require.Len(t, units, (len(msg)+6)/7)

	for _, u := range units {
		assert.Negative(t, u.Cmp(modulus), "unit %s not below modulus", u)
	}

	assert.Equal(t, msg, encoding.JoinMessage(units))
}

func TestSplitMessageTinyModulus(t *testing.T) {
	_, err := encoding.SplitMessage([]byte("hi"), big.NewInt(200))
	require.ErrorIs(t, err, encoding.ErrModulusTooSmall)
}

func TestSplitMessageEmpty(t *testing.T) {
	units, err := encoding.SplitMessage(nil, big.NewInt(1<<20))
	require.NoError(t, err)
	require.Empty(t, units)
}
