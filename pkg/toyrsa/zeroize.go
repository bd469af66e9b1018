package toyrsa

import (
	"math/big"
	"runtime"
)

// ZeroizeBytes overwrites the provided slice with zeros and prevents
// compiler dead store elimination using runtime.KeepAlive.
//
// This follows the pattern recommended in golang/go#33325. It cannot
// guarantee complete memory sanitization (the garbage collector may have
// made copies), but it is the current best practice in the Go ecosystem
// for sensitive buffers such as prime candidates and key material.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}

// Zeroize makes a best-effort attempt to wipe the private exponent and
// modulus from memory. The key is unusable afterwards.
func (priv *PrivateKey) Zeroize() {
	if priv == nil {
		return
	}
	if priv.D != nil {
		wipeInt(priv.D)
		priv.D = nil
	}
	if priv.N != nil {
		wipeInt(priv.N)
		priv.N = nil
	}
}

// wipeInt clears a big.Int's backing storage as far as the public API
// allows: the absolute value is forced through a same-width all-ones
// pattern before being zeroed, then the header is reset.
func wipeInt(x *big.Int) {
	bits := x.Bits()
	for i := range bits {
		bits[i] = ^big.Word(0)
	}
	runtime.KeepAlive(bits)
	x.SetInt64(0)
}
