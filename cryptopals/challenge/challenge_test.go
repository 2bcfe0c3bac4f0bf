package challenge

import (
	"errors"
	"testing"

	"github.com/TheusHen/cryptopals/cryptopals/codec"
	"github.com/TheusHen/cryptopals/cryptopals/xor"
)

func TestHexToBase64(t *testing.T) {
	got, err := HexToBase64("49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d")
	if err != nil {
		t.Fatalf("HexToBase64: %v", err)
	}
	if got != "SSdtIGtpbGxpbmcgeW91ciBicmFpbiBsaWtlIGEgcG9pc29ub3VzIG11c2hyb29t" {
		t.Fatalf("HexToBase64 = %q", got)
	}
	if _, err := HexToBase64("abc"); !errors.Is(err, codec.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFixedXORHex(t *testing.T) {
	got, err := FixedXORHex("1c0111001f010100061a024b53535009181c", "686974207468652062756c6c277320657965")
	if err != nil {
		t.Fatalf("FixedXORHex: %v", err)
	}
	if got != "746865206b696420646f6e277420706c6179" {
		t.Fatalf("FixedXORHex = %q", got)
	}
	if _, err := FixedXORHex("aabb", "aa"); !errors.Is(err, xor.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
	if _, err := FixedXORHex("aa", "zz"); !errors.Is(err, codec.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestBreakSingleByteXOR(t *testing.T) {
	got, err := BreakSingleByteXOR("1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736")
	if err != nil {
		t.Fatalf("BreakSingleByteXOR: %v", err)
	}
	if got != "Cooking MC's like a pound of bacon" {
		t.Fatalf("BreakSingleByteXOR = %q", got)
	}

	res, err := BreakSingleByteXORKey("1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736")
	if err != nil {
		t.Fatalf("BreakSingleByteXORKey: %v", err)
	}
	if res.Key != 0x58 {
		t.Fatalf("key = %#x, want 0x58", res.Key)
	}

	if _, err := BreakSingleByteXOR("1b3"); !errors.Is(err, codec.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSet1SolvesAndVerifies(t *testing.T) {
	challenges := Set1()
	if len(challenges) != 3 {
		t.Fatalf("expected 3 challenges, got %d", len(challenges))
	}
	for i, c := range challenges {
		if c.Set != 1 || c.Number != i+1 {
			t.Fatalf("unexpected ordering: %v", c)
		}
		out, err := c.Solve()
		if err != nil {
			t.Fatalf("%v: Solve: %v", c, err)
		}
		if !c.Verify(out) {
			t.Fatalf("%v: Verify rejected %q", c, out)
		}
		if c.Verify(out + " ") {
			t.Fatalf("%v: Verify accepted a wrong answer", c)
		}
	}
}

func TestSet1ReturnsCopies(t *testing.T) {
	first := Set1()
	first[0].Inputs[0] = "00"
	first[1].Title = "changed"

	again := Set1()
	out, err := again[0].Solve()
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !again[0].Verify(out) {
		t.Fatalf("catalogue was modified through a returned copy")
	}
	if again[1].Title != "Fixed XOR" {
		t.Fatalf("catalogue title was modified")
	}
}

func TestLookup(t *testing.T) {
	c, err := Lookup(3)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if c.String() != "set 1 / challenge 3: Single-byte XOR cipher" {
		t.Fatalf("String = %q", c.String())
	}
	if _, err := Lookup(4); !errors.Is(err, ErrUnknownChallenge) {
		t.Fatalf("expected ErrUnknownChallenge, got %v", err)
	}
}

func TestFingerprintKnownAnswer(t *testing.T) {
	sum := Fingerprint("Cooking MC's like a pound of bacon")
	if got := codec.EncodeHex(sum[:]); got != "df02b106643160e93ebfbd7acec72b5f3890b3744a811c5b6d23511923f0eba6" {
		t.Fatalf("Fingerprint = %s", got)
	}
}
