package hashes

import (
	"encoding/hex"

	"github.com/vulpemventures/fastsha256"
)

const (
	// Hash256Size is the byte length of a HASH256 digest.
	Hash256Size = 32
	// Hash256BlockSize is inherited from SHA256, which runs both stages.
	Hash256BlockSize = Sha256BlockSize
)

// Hash256 is the output of sha256(sha256(b)), the double hash used for
// transaction and block identifiers and base58check checksums.
type Hash256 [Hash256Size]byte

// String returns the digest as a lowercase hex string.
func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the raw digest.
func (h Hash256) Bytes() []byte {
	return cloneBytes(h[:])
}

// Size returns Hash256Size.
func (h Hash256) Size() int {
	return Hash256Size
}

// Hash256Engine computes a HASH256 digest incrementally. Its state is
// the first-stage SHA256 engine; the second SHA256 runs once over the
// finalized digest.
type Hash256Engine struct {
	chain chainEngine
}

// NewHash256Engine returns a fresh engine in its initial state.
func NewHash256Engine() *Hash256Engine {
	return &Hash256Engine{chain: chainEngine{
		first: fastsha256.New(),
		outer: func(b []byte) []byte {
			second := fastsha256.Sum256(b)
			return second[:]
		},
	}}
}

// Write feeds more input into the engine. It never fails.
func (e *Hash256Engine) Write(p []byte) (int, error) {
	return e.chain.Write(p)
}

// Size returns Hash256Size.
func (e *Hash256Engine) Size() int {
	return Hash256Size
}

// BlockSize returns Hash256BlockSize.
func (e *Hash256Engine) BlockSize() int {
	return e.chain.BlockSize()
}

// Sum finalizes the engine and returns the digest. The engine must not
// be written to afterwards.
func (e *Hash256Engine) Sum() (out Hash256) {
	copy(out[:], e.chain.sum())
	return
}

// SumHash256 returns the HASH256 digest of b.
func SumHash256(b []byte) Hash256 {
	e := NewHash256Engine()
	e.Write(b)
	return e.Sum()
}

// Hash256FromSlice builds a Hash256 from a raw 32-byte digest. The bytes
// are copied but not otherwise verified.
func Hash256FromSlice(b []byte) (Hash256, error) {
	var out Hash256
	if err := fill(out[:], b); err != nil {
		return Hash256{}, err
	}
	return out, nil
}
