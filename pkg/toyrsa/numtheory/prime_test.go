package numtheory

import (
	"crypto/rand"
	"math/big"
	"testing"
)

const testRounds = 30

func TestIsProbablePrimeKnownPrimes(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 13, 31, 97, 7919, 104729}

	for _, p := range primes {
		ok, err := IsProbablePrime(rand.Reader, big.NewInt(p), testRounds)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", p, err)
		}
		if !ok {
			t.Fatalf("IsProbablePrime(%d) = false, %d is prime", p, p)
		}
	}
}

func TestIsProbablePrimeKnownComposites(t *testing.T) {
	// 561, 1105, and 1729 are Carmichael numbers, which fool the plain
	// Fermat test but not Miller-Rabin.
	// 1763 = 41·43 and 2491 = 47·53 have no small factors, so they
	// exercise the witness loop rather than the trial-division fast path.
	composites := []int64{0, 1, 4, 9, 100, 221, 561, 1105, 1729, 1763, 2491, 7917}

	for _, c := range composites {
		ok, err := IsProbablePrime(rand.Reader, big.NewInt(c), testRounds)
		if err != nil {
			t.Fatalf("IsProbablePrime(%d): %v", c, err)
		}
		if ok {
			t.Fatalf("IsProbablePrime(%d) = true, %d is composite", c, c)
		}
	}
}

func TestIsProbablePrimeNegative(t *testing.T) {
	ok, err := IsProbablePrime(rand.Reader, big.NewInt(-7), testRounds)
	if err != nil {
		t.Fatalf("IsProbablePrime(-7): %v", err)
	}
	if ok {
		t.Fatalf("IsProbablePrime(-7) = true, negatives are never prime")
	}
}

func TestIsProbablePrimeLargeOperands(t *testing.T) {
	t.Run("mersenne prime 2^127-1", func(t *testing.T) {
		m127 := new(big.Int).Lsh(big.NewInt(1), 127)
		m127.Sub(m127, big.NewInt(1))

		ok, err := IsProbablePrime(rand.Reader, m127, testRounds)
		if err != nil {
			t.Fatalf("IsProbablePrime(2^127-1): %v", err)
		}
		if !ok {
			t.Fatalf("IsProbablePrime(2^127-1) = false, it is prime")
		}
	})

	t.Run("fermat number 2^128+1", func(t *testing.T) {
		f7 := new(big.Int).Lsh(big.NewInt(1), 128)
		f7.Add(f7, big.NewInt(1))

		ok, err := IsProbablePrime(rand.Reader, f7, testRounds)
		if err != nil {
			t.Fatalf("IsProbablePrime(2^128+1): %v", err)
		}
		if ok {
			t.Fatalf("IsProbablePrime(2^128+1) = true, it is composite")
		}
	})
}

func TestIsProbablePrimeRejectsBadRounds(t *testing.T) {
	if _, err := IsProbablePrime(rand.Reader, big.NewInt(7), 0); err == nil {
		t.Fatalf("expected error for zero rounds")
	}
}
