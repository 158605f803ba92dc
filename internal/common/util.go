package common

// WipeByteArray zeroes the buffer in place. Used to clear password
// bytes once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
