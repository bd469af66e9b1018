// Package encoding converts between the plain integers the toyrsa core
// exchanges and the byte/text forms callers actually handle: big-endian
// bytes, base64 integers, the two-part base64 public key format, and
// splitting long byte messages into units strictly below a modulus.
//
// The core itself never touches these formats; they are the surrounding
// collaborators of the library.
package encoding

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrBadKeyText indicates public key text that is not two base64
// integers separated by a comma.
var ErrBadKeyText = errors.New("encoding: bad public key text")

// ErrModulusTooSmall indicates a modulus too small to carry even a
// single message byte per unit.
var ErrModulusTooSmall = errors.New("encoding: modulus too small to chunk bytes")

// IntFromBytes interprets data as a big-endian unsigned integer.
func IntFromBytes(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}

// IntToBytes returns the big-endian byte form of a non-negative integer.
func IntToBytes(n *big.Int) []byte {
	return n.Bytes()
}

// EncodeInt base64-encodes the big-endian bytes of a non-negative integer.
func EncodeInt(n *big.Int) string {
	return base64.StdEncoding.EncodeToString(n.Bytes())
}

// DecodeInt reverses EncodeInt.
func DecodeInt(s string) (*big.Int, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("encoding: decode integer: %w", err)
	}
	return new(big.Int).SetBytes(raw), nil
}

// EncodePublicKey renders a (modulus, exponent) pair as the compact
// "b64(n),b64(e)" text form used for key distribution.
func EncodePublicKey(n, e *big.Int) string {
	return EncodeInt(n) + "," + EncodeInt(e)
}

// DecodePublicKey parses the text form produced by EncodePublicKey.
func DecodePublicKey(s string) (n, e *big.Int, err error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("%w: expected 2 fields, got %d", ErrBadKeyText, len(parts))
	}
	if n, err = DecodeInt(parts[0]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadKeyText, err)
	}
	if e, err = DecodeInt(parts[1]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadKeyText, err)
	}
	return n, e, nil
}

// Chunkify wraps a long string into width-character lines for display.
func Chunkify(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	var b strings.Builder
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteByte('\n')
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}

// UnitSize returns how many whole message bytes fit in one unit below
// the given modulus.
func UnitSize(modulus *big.Int) (int, error) {
	k := (modulus.BitLen() - 1) / 8
	if k < 1 {
		return 0, fmt.Errorf("%w: %d bits", ErrModulusTooSmall, modulus.BitLen())
	}
	return k, nil
}

// SplitMessage chops a byte message into integers strictly below the
// modulus, each carrying UnitSize(modulus) bytes (the final unit may be
// shorter). Like the toy format it mirrors, units are not padded, so a
// chunk whose leading byte is zero loses that byte on re-join.
func SplitMessage(msg []byte, modulus *big.Int) ([]*big.Int, error) {
	k, err := UnitSize(modulus)
	if err != nil {
		return nil, err
	}

	var units []*big.Int
	for len(msg) > 0 {
		n := k
		if len(msg) < n {
			n = len(msg)
		}
		units = append(units, new(big.Int).SetBytes(msg[:n]))
		msg = msg[n:]
	}
	return units, nil
}

// JoinMessage concatenates the byte forms of decrypted units back into
// one message.
func JoinMessage(units []*big.Int) []byte {
	var out []byte
	for _, u := range units {
		out = append(out, u.Bytes()...)
	}
	return out
}
