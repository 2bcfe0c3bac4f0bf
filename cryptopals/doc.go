// Package cryptopals collects solutions to the first set of the cryptopals crypto challenges.
//
// The work is split into small packages, leaves first:
//   - codec: hex decoding/encoding and base64 encoding
//   - xor: fixed XOR of equal-length buffers and single-byte XOR
//   - xor/breaker: single-byte XOR key recovery via frequency analysis
//   - challenge: the set 1 challenges wired to their canonical inputs
package cryptopals
