package codec

// base64Alphabet is the standard RFC 4648 alphabet, indexed by 6-bit value.
const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const base64Pad = '='

// EncodedBase64Len returns the length of the padded base64 encoding of n bytes.
func EncodedBase64Len(n int) int { return (n + 2) / 3 * 4 }

// EncodeBase64 encodes b as padded standard base64.
// A trailing group of one or two bytes is zero-filled before 6-bit extraction
// and padded with "==" or "=" respectively.
func EncodeBase64(b []byte) string {
	out := make([]byte, 0, EncodedBase64Len(len(b)))
	for i := 0; i < len(b); i += 3 {
		// Pack up to three bytes into the low 24 bits; absent bytes stay zero.
		var group uint32
		n := len(b) - i
		if n > 3 {
			n = 3
		}
		for j := 0; j < n; j++ {
			group |= uint32(b[i+j]) << (16 - 8*j)
		}

		out = append(out,
			base64Alphabet[group>>18&0x3f],
			base64Alphabet[group>>12&0x3f],
		)
		switch n {
		case 1:
			out = append(out, base64Pad, base64Pad)
		case 2:
			out = append(out, base64Alphabet[group>>6&0x3f], base64Pad)
		default:
			out = append(out, base64Alphabet[group>>6&0x3f], base64Alphabet[group&0x3f])
		}
	}
	return string(out)
}
