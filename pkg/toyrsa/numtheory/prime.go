package numtheory

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// smallPrimes is a trial-division fast path. Candidates divisible by one
// of these are rejected without running any Miller-Rabin round.
var smallPrimes = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsProbablePrime reports whether n is prime with error probability at
// most 4^-rounds, using the Miller-Rabin test. Bases are drawn uniformly
// from [2, n-2] using the supplied random source.
//
// A false result is always correct: composites are never reported prime
// beyond the stated bound, and true primes are never rejected.
func IsProbablePrime(random io.Reader, n *big.Int, rounds int) (bool, error) {
	if rounds < 1 {
		return false, fmt.Errorf("numtheory: rounds must be positive, got %d", rounds)
	}
	if n.Cmp(two) < 0 {
		return false, nil
	}

	rem := new(big.Int)
	for _, p := range smallPrimes {
		sp := big.NewInt(p)
		if n.Cmp(sp) == 0 {
			return true, nil
		}
		if rem.Mod(n, sp).Sign() == 0 {
			return false, nil
		}
	}

	// Write n-1 = 2^s * d with d odd.
	nMinusOne := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinusOne)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}

	// Bases come from [2, n-2]: draw in [0, n-4] and shift.
	baseRange := new(big.Int).Sub(n, big.NewInt(3))

	for i := 0; i < rounds; i++ {
		a, err := rand.Int(random, baseRange)
		if err != nil {
			return false, fmt.Errorf("numtheory: drawing witness base: %w", err)
		}
		a.Add(a, two)

		x, err := ModExp(a, d, n)
		if err != nil {
			return false, err
		}
		if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}

		witness := true
		for j := 0; j < s-1; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinusOne) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false, nil
		}
	}

	return true, nil
}
