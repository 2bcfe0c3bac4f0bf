package xor

import (
	"errors"
	"fmt"
)

var ErrLengthMismatch = errors.New("xor: operands differ in length")

// Fixed returns a[i] ^ b[i] for every index.
// The inputs are not modified. It returns an error wrapping ErrLengthMismatch
// when len(a) != len(b).
func Fixed(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// SingleByte XORs every byte of data with key and returns the result in a new slice.
func SingleByte(data []byte, key byte) []byte {
	out := make([]byte, len(data))
	for i, v := range data {
		out[i] = v ^ key
	}
	return out
}
