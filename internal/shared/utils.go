// Package shared holds small helpers used by both the server and the CLI.
package shared

// WipeByteArray overwrites b with zeros so credentials read into it do not
// linger in memory. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
