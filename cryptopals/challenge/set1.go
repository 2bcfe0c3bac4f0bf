package challenge

import (
	"github.com/TheusHen/cryptopals/cryptopals/codec"
	"github.com/TheusHen/cryptopals/cryptopals/xor"
	"github.com/TheusHen/cryptopals/cryptopals/xor/breaker"
)

// HexToBase64 decodes hex text and re-encodes it as base64 (challenge 1).
func HexToBase64(hexText string) (string, error) {
	raw, err := codec.DecodeHex(hexText)
	if err != nil {
		return "", err
	}
	return codec.EncodeBase64(raw), nil
}

// FixedXORHex XORs two equal-length hex buffers and returns the result as hex (challenge 2).
func FixedXORHex(a, b string) (string, error) {
	rawA, err := codec.DecodeHex(a)
	if err != nil {
		return "", err
	}
	rawB, err := codec.DecodeHex(b)
	if err != nil {
		return "", err
	}
	out, err := xor.Fixed(rawA, rawB)
	if err != nil {
		return "", err
	}
	return codec.EncodeHex(out), nil
}

// BreakSingleByteXOR decrypts a hex-encoded single-byte XOR ciphertext (challenge 3).
// Only hex decoding can fail; a wrong key guess is not reported.
func BreakSingleByteXOR(hexText string) (string, error) {
	res, err := BreakSingleByteXORKey(hexText)
	if err != nil {
		return "", err
	}
	return res.Plaintext, nil
}

// BreakSingleByteXORKey is BreakSingleByteXOR that also returns the recovered key.
func BreakSingleByteXORKey(hexText string) (breaker.Result, error) {
	ct, err := codec.DecodeHex(hexText)
	if err != nil {
		return breaker.Result{}, err
	}
	return breaker.Break(ct), nil
}

var set1 = []Challenge{
	{
		Set:    1,
		Number: 1,
		Title:  "Convert hex to base64",
		Inputs: []string{
			"49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d",
		},
		solve:  func(in []string) (string, error) { return HexToBase64(in[0]) },
		answer: mustFingerprint("5dbd63bad3bfe137954b10ed733b128617de2325cc1160fe2bf451e6a45db2bd"),
	},
	{
		Set:    1,
		Number: 2,
		Title:  "Fixed XOR",
		Inputs: []string{
			"1c0111001f010100061a024b53535009181c",
			"686974207468652062756c6c277320657965",
		},
		solve:  func(in []string) (string, error) { return FixedXORHex(in[0], in[1]) },
		answer: mustFingerprint("86ae49b6eeb1385352aced159f341323241356c49136e9f63691c1930742ccc4"),
	},
	{
		Set:    1,
		Number: 3,
		Title:  "Single-byte XOR cipher",
		Inputs: []string{
			"1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736",
		},
		solve:  func(in []string) (string, error) { return BreakSingleByteXOR(in[0]) },
		answer: mustFingerprint("df02b106643160e93ebfbd7acec72b5f3890b3744a811c5b6d23511923f0eba6"),
	},
}
