package breaker

import (
	"unicode/utf8"

	"github.com/TheusHen/cryptopals/cryptopals/xor"
)

// Space is the plaintext byte assumed to be most frequent.
const Space = 0x20

// Result is the outcome of breaking one ciphertext.
type Result struct {
	Key       byte
	Plaintext string
}

// FindKey guesses the key of a single-byte XOR ciphertext.
// The most frequent ciphertext byte is assumed to encrypt Space.
func FindKey(ciphertext []byte) byte {
	freq := Frequencies(ciphertext)
	top, _ := freq.Max()
	return top ^ Space
}

// Decrypt recovers the plaintext of a single-byte XOR ciphertext using FindKey.
// Bytes that decrypt to ASCII control characters (below 0x20) are dropped.
// Every kept byte becomes the code point of the same value, so the result is
// valid UTF-8 even when the guessed key is wrong.
func Decrypt(ciphertext []byte) string {
	return Break(ciphertext).Plaintext
}

// Break recovers both the key and the plaintext.
func Break(ciphertext []byte) Result {
	key := FindKey(ciphertext)
	return Result{Key: key, Plaintext: render(xor.SingleByte(ciphertext, key))}
}

// Printable reports whether b survives the control-character filter.
func Printable(b byte) bool { return b >= Space }

func render(plain []byte) string {
	out := make([]byte, 0, len(plain))
	for _, b := range plain {
		if !Printable(b) {
			continue
		}
		if b < utf8.RuneSelf {
			out = append(out, b)
			continue
		}
		out = utf8.AppendRune(out, rune(b))
	}
	return string(out)
}
