package hashes

import "hash"

// chainEngine derives a double-hash algorithm from two stages: input is
// accumulated by the first-stage engine, and on finalization the first
// stage's digest is hashed once more by the second-stage one-shot
// function. The intermediate digest never escapes sum.
//
// HASH160 and HASH256 are both instances of this shape; only the second
// stage differs.
type chainEngine struct {
	first hash.Hash
	outer func([]byte) []byte
}

func (e *chainEngine) Write(p []byte) (int, error) {
	return e.first.Write(p)
}

// BlockSize is the first-stage block size: the first stage is the one
// consuming the input stream, the second only ever sees one finalized
// digest.
func (e *chainEngine) BlockSize() int {
	return e.first.BlockSize()
}

func (e *chainEngine) sum() []byte {
	return e.outer(e.first.Sum(nil))
}
