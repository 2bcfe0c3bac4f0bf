// Package challenge wires the codec, xor and breaker packages to the set 1
// challenges and their canonical inputs.
//
// Expected answers are kept as BLAKE2b-256 fingerprints rather than plain
// text; Verify hashes a candidate answer and compares the digests in
// constant time.
package challenge
