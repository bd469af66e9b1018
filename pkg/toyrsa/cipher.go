package toyrsa

import (
	"math/big"

	"github.com/marvellconsultants/toyrsa-go/pkg/toyrsa/numtheory"
)

// Encrypt raises message to the public exponent modulo the public key's
// modulus. The message must lie in [0, N); larger plaintext must be
// chunked by the caller (see pkg/toyrsa/encoding). The range check runs
// before any arithmetic.
func Encrypt(pub *PublicKey, message *big.Int) (*big.Int, error) {
	if err := checkKey("Encrypt", pub.N, pub.E); err != nil {
		return nil, err
	}
	if err := checkRange("Encrypt", message, pub.N); err != nil {
		return nil, err
	}
	c, err := numtheory.ModExp(message, pub.E, pub.N)
	if err != nil {
		return nil, errorf("Encrypt", "%w", err)
	}
	return c, nil
}

// Decrypt is the same transform as Encrypt with the private exponent:
// cipherUnit^D mod N. The unit must lie in [0, N).
func Decrypt(priv *PrivateKey, cipherUnit *big.Int) (*big.Int, error) {
	if err := checkKey("Decrypt", priv.N, priv.D); err != nil {
		return nil, err
	}
	if err := checkRange("Decrypt", cipherUnit, priv.N); err != nil {
		return nil, err
	}
	m, err := numtheory.ModExp(cipherUnit, priv.D, priv.N)
	if err != nil {
		return nil, errorf("Decrypt", "%w", err)
	}
	return m, nil
}

func checkKey(op string, n, exp *big.Int) error {
	if n == nil || exp == nil || n.Sign() <= 0 || exp.Sign() <= 0 {
		return errorf(op, "modulus and exponent must be positive: %w", ErrInvalidKey)
	}
	return nil
}

func checkRange(op string, unit, modulus *big.Int) error {
	if unit == nil || unit.Sign() < 0 || unit.Cmp(modulus) >= 0 {
		return errorf(op, "unit %v not in [0, %v): %w", unit, modulus, ErrMessageOutOfRange)
	}
	return nil
}
