package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/planventure/planventure-api/internal/core/domain"
)

// BcryptHasher hashes passwords with bcrypt. Each digest embeds its own
// random salt, so hashing the same password twice yields different digests.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost factor. Costs outside
// the bcrypt range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("hash password: %w", domain.ErrInvalidInput)
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(password, digest string) (bool, error) {
	if password == "" || digest == "" {
		return false, fmt.Errorf("verify password: %w", domain.ErrInvalidInput)
	}
	// Mismatches and malformed digests both fail closed: an unrecognized
	// stored hash must never authenticate and must never panic a login.
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}
