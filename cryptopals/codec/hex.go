package codec

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("codec: hex input has odd length")
	ErrParse        = errors.New("codec: invalid hex digit pair")
)

const hexDigits = "0123456789abcdef"

// invalidNibble marks bytes that are not hex digits in hexValues.
const invalidNibble = 0xff

// hexValues maps an ASCII byte to its nibble value, or invalidNibble.
var hexValues = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidNibble
	}
	for i := 0; i < 10; i++ {
		t['0'+i] = byte(i)
	}
	for i := 0; i < 6; i++ {
		t['a'+i] = byte(10 + i)
		t['A'+i] = byte(10 + i)
	}
	return t
}()

// DecodeHex decodes hex text into bytes, one byte per digit pair, high nibble first.
// It returns an error wrapping ErrInvalidInput if text has odd length and one
// wrapping ErrParse if any pair contains a non-hex character.
func DecodeHex(text string) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, fmt.Errorf("%w: %d characters", ErrInvalidInput, len(text))
	}
	out := make([]byte, len(text)/2)
	for i := 0; i < len(text); i += 2 {
		hi := hexValues[text[i]]
		lo := hexValues[text[i+1]]
		if hi == invalidNibble || lo == invalidNibble {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrParse, text[i:i+2], i)
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

// EncodeHex returns the lowercase hex representation of b, two characters per byte.
func EncodeHex(b []byte) string {
	out := make([]byte, 2*len(b))
	for i, v := range b {
		out[2*i] = hexDigits[v>>4]
		out[2*i+1] = hexDigits[v&0x0f]
	}
	return string(out)
}
