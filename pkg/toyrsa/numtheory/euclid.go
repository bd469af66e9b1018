package numtheory

import (
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ExtendedGCD runs the iterative extended Euclidean algorithm on (a, b),
// returning g = gcd(a, b) together with Bézout coefficients x, y such
// that a*x + b*y = g. The inputs are not modified.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	// (oldR, r) walk the remainder sequence while (oldX, x) and
	// (oldY, y) track the coefficients expressing each remainder in
	// terms of the original a and b.
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldX, curX := big.NewInt(1), new(big.Int)
	oldY, curY := new(big.Int), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)

	for r.Sign() != 0 {
		q.Div(oldR, r)

		tmp.Mul(q, r)
		oldR.Sub(oldR, tmp)
		oldR, r = r, oldR

		tmp.Mul(q, curX)
		oldX.Sub(oldX, tmp)
		oldX, curX = curX, oldX

		tmp.Mul(q, curY)
		oldY.Sub(oldY, tmp)
		oldY, curY = curY, oldY
	}

	return oldR, oldX, oldY
}

// ModInverse computes a⁻¹ mod n via ExtendedGCD, normalized into [0, n).
// It returns ErrNoInverse when gcd(a, n) != 1 and ErrInvalidModulus when
// n <= 1.
func ModInverse(a, n *big.Int) (*big.Int, error) {
	if n.Cmp(one) <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidModulus, n)
	}

	g, x, _ := ExtendedGCD(a, n)
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrNoInverse, a, n, g)
	}

	// big.Int.Mod is Euclidean, so this lands in [0, n) even for
	// negative coefficients.
	x.Mod(x, n)
	return x, nil
}
