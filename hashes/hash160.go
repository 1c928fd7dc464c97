package hashes

import (
	"encoding/hex"

	"github.com/vulpemventures/fastsha256"
	"golang.org/x/crypto/ripemd160"
)

const (
	// Hash160Size is the byte length of a HASH160 digest.
	Hash160Size = 20
	// Hash160BlockSize is inherited from SHA256: the first stage is the
	// one consuming the input stream.
	Hash160BlockSize = Sha256BlockSize
)

// Hash160 is the output of ripemd160(sha256(b)), the fingerprint used
// for legacy and segwit v0 addresses.
type Hash160 [Hash160Size]byte

// String returns the digest as a lowercase hex string.
func (h Hash160) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns a copy of the raw digest.
func (h Hash160) Bytes() []byte {
	return cloneBytes(h[:])
}

// Size returns Hash160Size.
func (h Hash160) Size() int {
	return Hash160Size
}

// Hash160Engine computes a HASH160 digest incrementally. Its state is
// the SHA256 engine itself; RIPEMD160 runs once over the finalized
// 32-byte SHA256 digest.
type Hash160Engine struct {
	chain chainEngine
}

// NewHash160Engine returns a fresh engine in its initial state.
func NewHash160Engine() *Hash160Engine {
	return &Hash160Engine{chain: chainEngine{
		first: fastsha256.New(),
		outer: func(b []byte) []byte {
			return calcHash(b, ripemd160.New())
		},
	}}
}

// Write feeds more input into the engine. It never fails.
func (e *Hash160Engine) Write(p []byte) (int, error) {
	return e.chain.Write(p)
}

// Size returns Hash160Size.
func (e *Hash160Engine) Size() int {
	return Hash160Size
}

// BlockSize returns Hash160BlockSize.
func (e *Hash160Engine) BlockSize() int {
	return e.chain.BlockSize()
}

// Sum finalizes the engine and returns the digest. The engine must not
// be written to afterwards.
func (e *Hash160Engine) Sum() (out Hash160) {
	copy(out[:], e.chain.sum())
	return
}

// SumHash160 returns the HASH160 digest of b.
func SumHash160(b []byte) Hash160 {
	e := NewHash160Engine()
	e.Write(b)
	return e.Sum()
}

// Hash160FromSlice builds a Hash160 from a raw 20-byte digest, typically
// one read back from storage. The bytes are copied but not otherwise
// verified; a well-formed slice is accepted even if no input could ever
// hash to it.
func Hash160FromSlice(b []byte) (Hash160, error) {
	var out Hash160
	if err := fill(out[:], b); err != nil {
		return Hash160{}, err
	}
	return out, nil
}
