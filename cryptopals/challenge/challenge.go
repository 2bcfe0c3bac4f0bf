package challenge

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/TheusHen/cryptopals/cryptopals/codec"
)

var ErrUnknownChallenge = errors.New("challenge: unknown challenge")

// Challenge is one exercise with its canonical inputs.
type Challenge struct {
	Set    int
	Number int
	Title  string
	// Inputs are the hex-encoded arguments handed to the solver.
	Inputs []string

	solve  func(inputs []string) (string, error)
	answer [blake2b.Size256]byte
}

// Solve runs the challenge on its canonical inputs.
func (c Challenge) Solve() (string, error) {
	return c.solve(c.Inputs)
}

// Verify reports whether output is the expected answer.
func (c Challenge) Verify(output string) bool {
	sum := Fingerprint(output)
	return subtle.ConstantTimeCompare(sum[:], c.answer[:]) == 1
}

func (c Challenge) String() string {
	return fmt.Sprintf("set %d / challenge %d: %s", c.Set, c.Number, c.Title)
}

// Set1 returns the challenges of set 1 in order.
func Set1() []Challenge {
	out := make([]Challenge, len(set1))
	for i, c := range set1 {
		c.Inputs = append([]string(nil), c.Inputs...)
		out[i] = c
	}
	return out
}

// Lookup returns the set 1 challenge with the given number.
func Lookup(number int) (Challenge, error) {
	for _, c := range set1 {
		if c.Number == number {
			return c, nil
		}
	}
	return Challenge{}, fmt.Errorf("%w: %d", ErrUnknownChallenge, number)
}

// Fingerprint returns the BLAKE2b-256 digest of an answer.
func Fingerprint(answer string) [blake2b.Size256]byte {
	return blake2b.Sum256([]byte(answer))
}

func mustFingerprint(hexDigest string) [blake2b.Size256]byte {
	raw, err := codec.DecodeHex(hexDigest)
	if err != nil || len(raw) != blake2b.Size256 {
		panic("challenge: malformed answer fingerprint " + hexDigest)
	}
	var sum [blake2b.Size256]byte
	copy(sum[:], raw)
	return sum
}
