package numtheory

import (
	"fmt"
	"math/big"
)

// ModExp computes base^exponent mod modulus by binary exponentiation:
// the accumulator is squared once per exponent bit and multiplied into
// the result whenever that bit is set, reducing after every
// multiplication so intermediates never exceed modulus².
//
// The modulus must be positive and the exponent non-negative. A negative
// base is first normalized into [0, modulus).
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidModulus, modulus)
	}
	if exponent.Sign() < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNegativeExponent, exponent)
	}

	// Anything mod 1 is 0, including base^0.
	if modulus.Cmp(one) == 0 {
		return new(big.Int), nil
	}

	result := big.NewInt(1)
	acc := new(big.Int).Mod(base, modulus)

	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, acc)
			result.Mod(result, modulus)
		}
		acc.Mul(acc, acc)
		acc.Mod(acc, modulus)
	}

	return result, nil
}
