package ports

// PasswordHasher hashes and verifies passwords (Argon2id). Verify is
// constant-time by construction of the primitive.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
