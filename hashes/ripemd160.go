package hashes

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/ripemd160"
)

const (
	// Ripemd160Size is the byte length of a RIPEMD160 digest.
	Ripemd160Size = 20
	// Ripemd160BlockSize is the block size of the RIPEMD160 compression
	// function.
	Ripemd160BlockSize = 64
)

// Ripemd160 is the output of the RIPEMD160 hash function.
type Ripemd160 [Ripemd160Size]byte

// String returns the digest as a lowercase hex string.
func (h Ripemd160) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the raw digest.
func (h Ripemd160) Bytes() []byte {
	return cloneBytes(h[:])
}

// Size returns Ripemd160Size.
func (h Ripemd160) Size() int {
	return Ripemd160Size
}

// Ripemd160Engine computes a RIPEMD160 digest incrementally.
type Ripemd160Engine struct {
	inner hash.Hash
}

// NewRipemd160Engine returns a fresh engine in its initial state.
func NewRipemd160Engine() *Ripemd160Engine {
	return &Ripemd160Engine{inner: ripemd160.New()}
}

// Write feeds more input into the engine. It never fails.
func (e *Ripemd160Engine) Write(p []byte) (int, error) {
	return e.inner.Write(p)
}

// Size returns Ripemd160Size.
func (e *Ripemd160Engine) Size() int {
	return Ripemd160Size
}

// BlockSize returns Ripemd160BlockSize.
func (e *Ripemd160Engine) BlockSize() int {
	return Ripemd160BlockSize
}

// Sum finalizes the engine and returns the digest. The engine must not
// be written to afterwards.
func (e *Ripemd160Engine) Sum() (out Ripemd160) {
	copy(out[:], e.inner.Sum(nil))
	return
}

// SumRipemd160 returns the RIPEMD160 digest of b.
func SumRipemd160(b []byte) (out Ripemd160) {
	copy(out[:], calcHash(b, ripemd160.New()))
	return
}

// Ripemd160FromSlice builds a Ripemd160 from a raw 20-byte digest. The
// bytes are copied but not otherwise verified.
func Ripemd160FromSlice(b []byte) (Ripemd160, error) {
	var out Ripemd160
	if err := fill(out[:], b); err != nil {
		return Ripemd160{}, err
	}
	return out, nil
}
