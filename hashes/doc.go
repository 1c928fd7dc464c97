/*
Package hashes provides typed, fixed-output cryptographic hash functions.

Every algorithm follows the same contract: a streaming engine that accepts
input in chunks of any size, a fixed-size array type for the finalized
digest, a one-shot Sum helper, and a validated FromSlice constructor for
digests read back from untrusted storage.

The package covers the functions used for Bitcoin address fingerprints:
SHA256, RIPEMD160, and the two derived double-hash constructions HASH160
(ripemd160 of sha256) and HASH256 (sha256 of sha256).
*/
package hashes
