/*
Package payment derives address fingerprints from public keys and redeem
scripts.

It can be used for the creation of p2pkh, p2sh and native SegWit
addresses, all built on the HASH160 fingerprint of the underlying key or
script.
*/
package payment
