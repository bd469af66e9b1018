package toyrsa

import (
	"io"
	"math/big"

	"github.com/marvellconsultants/toyrsa-go/pkg/toyrsa/numtheory"
)

// PublicKey is the shareable half of a key pair: the modulus N = p·q and
// the public exponent E. Treat it as immutable once generated.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the secret half of a key pair: the same modulus N and
// the private exponent D with D·E ≡ 1 (mod φ(N)). It must never leave
// the key holder.
type PrivateKey struct {
	N *big.Int
	D *big.Int
}

// KeyPair holds a matched public and private key sharing one modulus.
// The primes p and q are discarded at generation time and are not
// recoverable from the pair.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey
}

// GeneratorConfig controls key generation. The zero value selects the
// documented defaults; the constants are configuration, not magic.
type GeneratorConfig struct {
	// Bits is the modulus size; each prime gets Bits/2 bits.
	// Default 2048. Must be at least 128 and a multiple of 16 so that
	// candidate primes are whole bytes.
	Bits int

	// PublicExponent is the fixed public exponent E. Default 65537.
	// Must be odd and at least 3.
	PublicExponent int64

	// Rounds is the Miller-Rabin round count per candidate, bounding
	// the per-prime error probability by 4^-Rounds. Default 64.
	Rounds int

	// MaxAttempts caps the total number of prime candidates examined
	// across the whole generation, surfacing ErrSamplingExhausted when
	// exceeded. Zero means no cap.
	MaxAttempts int
}

const (
	defaultBits   = 2048
	defaultE      = 65537
	defaultRounds = 64
	minBits       = 128
	minRounds     = 20
)

func (cfg GeneratorConfig) withDefaults() GeneratorConfig {
	if cfg.Bits == 0 {
		cfg.Bits = defaultBits
	}
	if cfg.PublicExponent == 0 {
		cfg.PublicExponent = defaultE
	}
	if cfg.Rounds == 0 {
		cfg.Rounds = defaultRounds
	}
	return cfg
}

func (cfg GeneratorConfig) validate() error {
	if cfg.Bits < minBits || cfg.Bits%16 != 0 {
		return errorf("GenerateKeyPair", "bits must be a multiple of 16 and at least %d, got %d: %w",
			minBits, cfg.Bits, ErrInvalidConfig)
	}
	if cfg.PublicExponent < 3 || cfg.PublicExponent%2 == 0 {
		return errorf("GenerateKeyPair", "public exponent must be odd and >= 3, got %d: %w",
			cfg.PublicExponent, ErrInvalidConfig)
	}
	if cfg.Rounds < minRounds {
		return errorf("GenerateKeyPair", "rounds must be at least %d, got %d: %w",
			minRounds, cfg.Rounds, ErrInvalidConfig)
	}
	if cfg.MaxAttempts < 0 {
		return errorf("GenerateKeyPair", "max attempts must not be negative, got %d: %w",
			cfg.MaxAttempts, ErrInvalidConfig)
	}
	return nil
}

// GenerateKeyPair produces a fresh RSA key pair from the given random
// source (crypto/rand.Reader in production).
//
// It samples two distinct Bits/2-bit probable primes p and q, computes
// N = p·q and φ = (p-1)(q-1), and resamples both primes in the unlikely
// case gcd(E, φ) != 1. The private exponent is E⁻¹ mod φ. p, q, and φ
// are locals of this function; only the two (N, exponent) pairs survive.
func GenerateKeyPair(random io.Reader, cfg GeneratorConfig) (*KeyPair, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := big.NewInt(cfg.PublicExponent)
	one := big.NewInt(1)
	attempts := 0

	for {
		p, err := samplePrime(random, cfg, &attempts)
		if err != nil {
			return nil, err
		}

		q, err := samplePrime(random, cfg, &attempts)
		if err != nil {
			return nil, err
		}
		for q.Cmp(p) == 0 {
			if q, err = samplePrime(random, cfg, &attempts); err != nil {
				return nil, err
			}
		}

		n := new(big.Int).Mul(p, q)
		pMinusOne := new(big.Int).Sub(p, one)
		qMinusOne := new(big.Int).Sub(q, one)
		totient := new(big.Int).Mul(pMinusOne, qMinusOne)

		// E must be invertible mod φ. A failure here is recovered by
		// resampling the primes, never surfaced to the caller.
		g, _, _ := numtheory.ExtendedGCD(e, totient)
		if g.Cmp(one) != 0 {
			continue
		}

		d, err := numtheory.ModInverse(e, totient)
		if err != nil {
			return nil, errorf("GenerateKeyPair", "computing private exponent: %w", err)
		}

		return &KeyPair{
			Public:  PublicKey{N: n, E: new(big.Int).Set(e)},
			Private: PrivateKey{N: new(big.Int).Set(n), D: d},
		}, nil
	}
}

// samplePrime draws random odd candidates of cfg.Bits/2 bits until one
// passes Miller-Rabin, charging every candidate against the shared
// attempt counter.
func samplePrime(random io.Reader, cfg GeneratorConfig, attempts *int) (*big.Int, error) {
	buf := make([]byte, cfg.Bits/16)
	defer ZeroizeBytes(buf)

	candidate := new(big.Int)

	for {
		if cfg.MaxAttempts > 0 && *attempts >= cfg.MaxAttempts {
			return nil, errorf("GenerateKeyPair", "no prime after %d candidates: %w",
				*attempts, ErrSamplingExhausted)
		}
		*attempts++

		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, errorf("GenerateKeyPair", "reading random candidate: %w", err)
		}

		// Force the top bit for full bit-length and the low bit for oddness.
		buf[0] |= 0x80
		buf[len(buf)-1] |= 1
		candidate.SetBytes(buf)

		ok, err := numtheory.IsProbablePrime(random, candidate, cfg.Rounds)
		if err != nil {
			return nil, errorf("GenerateKeyPair", "testing candidate: %w", err)
		}
		if ok {
			return candidate, nil
		}
	}
}
