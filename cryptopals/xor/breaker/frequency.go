package breaker

// Table counts occurrences of each byte value in one buffer.
type Table [256]int

// Frequencies builds the occurrence table for data.
func Frequencies(data []byte) Table {
	var t Table
	for _, b := range data {
		t[b]++
	}
	return t
}

// Max returns the most frequent byte value and its count.
// Ties are broken in favour of the smallest byte value, so an empty table
// yields (0x00, 0).
func (t *Table) Max() (byte, int) {
	var (
		value byte
		count int
	)
	for i, n := range t {
		if n > count {
			value, count = byte(i), n
		}
	}
	return value, count
}

// Total returns the number of bytes counted.
func (t *Table) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}
