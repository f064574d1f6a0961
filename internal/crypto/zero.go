package crypto

// Zero overwrites b with zeros to bound the lifetime of key material in
// memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
