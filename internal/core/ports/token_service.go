package ports

// TokenService issues and verifies stateless session tokens. Validity is
// determined purely by signature and expiry; there is no revocation list.
type TokenService interface {
	// Issue produces a compact signed token asserting userID until the
	// configured expiry.
	Issue(userID int64) (string, error)
	// Verify returns the asserted user id, domain.ErrTokenExpired when the
	// token is past its expiry, or domain.ErrTokenInvalid for any signature,
	// structure, or claim problem.
	Verify(token string) (int64, error)
}
