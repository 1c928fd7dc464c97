package hashes

import (
	"encoding/hex"
	"hash"

	"github.com/vulpemventures/fastsha256"
)

const (
	// Sha256Size is the byte length of a SHA256 digest.
	Sha256Size = 32
	// Sha256BlockSize is the block size of the SHA256 compression
	// function.
	Sha256BlockSize = 64
)

// Sha256 is the output of the SHA256 hash function.
type Sha256 [Sha256Size]byte

// String returns the digest as a lowercase hex string.
func (h Sha256) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the raw digest.
func (h Sha256) Bytes() []byte {
	return cloneBytes(h[:])
}

// Size returns Sha256Size.
func (h Sha256) Size() int {
	return Sha256Size
}

// Sha256Engine computes a SHA256 digest incrementally.
type Sha256Engine struct {
	inner hash.Hash
}

// NewSha256Engine returns a fresh engine in its initial state.
func NewSha256Engine() *Sha256Engine {
	return &Sha256Engine{inner: fastsha256.New()}
}

// Write feeds more input into the engine. It never fails.
func (e *Sha256Engine) Write(p []byte) (int, error) {
	return e.inner.Write(p)
}

// Size returns Sha256Size.
func (e *Sha256Engine) Size() int {
	return Sha256Size
}

// BlockSize returns Sha256BlockSize.
func (e *Sha256Engine) BlockSize() int {
	return Sha256BlockSize
}

// Sum finalizes the engine and returns the digest. The engine must not
// be written to afterwards.
func (e *Sha256Engine) Sum() (out Sha256) {
	copy(out[:], e.inner.Sum(nil))
	return
}

// SumSha256 returns the SHA256 digest of b.
func SumSha256(b []byte) Sha256 {
	return Sha256(fastsha256.Sum256(b))
}

// Sha256FromSlice builds a Sha256 from a raw 32-byte digest, typically
// one read back from storage. The bytes are copied but not otherwise
// verified; there is no check that they were produced by SHA256.
func Sha256FromSlice(b []byte) (Sha256, error) {
	var out Sha256
	if err := fill(out[:], b); err != nil {
		return Sha256{}, err
	}
	return out, nil
}
