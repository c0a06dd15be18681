package domain

// Zero overwrites b with zeros. Composite keys are zeroed once the token has
// been sealed or opened.
func Zero(b []byte) {
	clear(b)
}
