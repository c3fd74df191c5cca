package ports

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify never errors; a malformed digest simply does not match.
	Verify(plaintext, digest string) bool
}
