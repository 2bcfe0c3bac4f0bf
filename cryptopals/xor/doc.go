// Package xor implements the XOR combinations used throughout set 1.
//
// Fixed combines two equal-length buffers position by position. SingleByte
// XORs every byte of a buffer with one key byte, which is both the
// single-byte XOR cipher and its inverse.
package xor
