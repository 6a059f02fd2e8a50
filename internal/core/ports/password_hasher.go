package ports

// PasswordHasher abstracts the credential hashing scheme, keeping the domain
// free of the concrete algorithm.
type PasswordHasher interface {
	// Hash produces a self-contained salted digest. Empty passwords are
	// rejected with domain.ErrInvalidInput.
	Hash(password string) (string, error)
	// Verify reports whether password matches digest. A malformed digest
	// yields (false, nil) so verification fails closed. Empty arguments are
	// rejected with domain.ErrInvalidInput.
	Verify(password, digest string) (bool, error)
}
