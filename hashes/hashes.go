package hashes

import (
	"fmt"
	"hash"
	"io"
)

// Engine is the mutable accumulator of an in-progress hash computation.
// Input may be written in chunks of any size without affecting the final
// digest. An engine is single-use: once finalized through the algorithm's
// Sum method it must not be written to again; start a new engine instead.
type Engine interface {
	io.Writer

	// Size returns the byte length of the finalized digest.
	Size() int

	// BlockSize returns the byte size of the blocks processed by the
	// underlying compression function. Informational only; inputs of any
	// length are accepted.
	BlockSize() int
}

// Digest is the read-only view shared by every finalized hash output in
// this package. The concrete types are fixed-size byte arrays, so they
// also support ==, map keys, and direct byte indexing.
type Digest interface {
	fmt.Stringer

	// Bytes returns a copy of the raw digest.
	Bytes() []byte

	// Size returns the byte length of the digest.
	Size() int
}

// InvalidLengthError is returned when reconstructing a digest from a raw
// byte slice whose length does not match the algorithm's output size.
type InvalidLengthError struct {
	Expected int
	Actual   int
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf(
		"invalid digest length %d, expected %d", e.Actual, e.Expected,
	)
}

// fill copies a raw digest into dst, enforcing the fixed length.
func fill(dst, src []byte) error {
	if len(src) != len(dst) {
		return InvalidLengthError{Expected: len(dst), Actual: len(src)}
	}
	copy(dst, src)
	return nil
}

// cloneBytes returns a copy of b, so callers cannot alias a digest.
func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// calcHash returns the hash of hasher over buf.
func calcHash(buf []byte, hasher hash.Hash) []byte {
	hasher.Write(buf)
	return hasher.Sum(nil)
}

var (
	_ Engine = (*Sha256Engine)(nil)
	_ Engine = (*Ripemd160Engine)(nil)
	_ Engine = (*Hash160Engine)(nil)
	_ Engine = (*Hash256Engine)(nil)

	_ Digest = Sha256{}
	_ Digest = Ripemd160{}
	_ Digest = Hash160{}
	_ Digest = Hash256{}
)
