// Package breaker recovers the key of a single-byte XOR cipher by frequency analysis.
//
// The heuristic assumes the plaintext is English text in which the space
// character (0x20) is the most frequent byte. The most frequent ciphertext
// byte is therefore taken to be an encrypted space, and the key is that byte
// XOR 0x20. When the assumption does not hold (short inputs, non-English
// text, text dominated by punctuation or newlines) the recovered key is
// silently wrong; no error is reported.
package breaker
