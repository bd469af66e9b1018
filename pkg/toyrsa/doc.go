// Package toyrsa is a self-contained educational implementation of RSA
// public-key cryptography: key-pair generation, integer encryption, and
// integer decryption, with all of the number theory (modular
// exponentiation, modular inverses, Miller-Rabin primality testing)
// implemented from primitive big-integer arithmetic in
// pkg/toyrsa/numtheory rather than taken from a crypto library.
//
// Example round trip:
//
//	pair, err := toyrsa.GenerateKeyPair(rand.Reader, toyrsa.GeneratorConfig{Bits: 512})
//	if err != nil {
//		log.Fatal(err)
//	}
//	c, err := toyrsa.Encrypt(&pair.Public, big.NewInt(65))
//	m, err := toyrsa.Decrypt(&pair.Private, c)
//	// m is 65 again
//
// Messages are plain integers in [0, modulus); converting text or bytes
// into such units is the caller's job, with helpers in pkg/toyrsa/encoding.
//
// # Security Considerations
//
// This is a teaching implementation and is unsafe for production use.
// There is no padding scheme, no constant-time arithmetic, and no
// protection against side channels. Use crypto/rsa for real work.
package toyrsa
