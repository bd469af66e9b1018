// Package numtheory implements the arithmetic engine behind the RSA
// operations in pkg/toyrsa: modular exponentiation, modular inverses via
// the extended Euclidean algorithm, and Miller-Rabin primality testing.
//
// The package deliberately builds these from big.Int's elementary
// operations (add, subtract, multiply, divide, modulo, bit access) and
// never reaches for the ready-made big.Int.Exp, big.Int.ModInverse, or
// big.Int.ProbablyPrime. A policy test in pkg/toyrsa/internalcheck keeps
// that promise honest.
//
// All randomized operations take an explicit io.Reader as their random
// source. Production callers pass crypto/rand.Reader; tests may pass a
// deterministic reader.
package numtheory
