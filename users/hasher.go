package users

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher is the one-way hashing capability used for password digests and for
// deriving opaque refresh-token keys.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// BcryptHasher implements Hasher with bcrypt. The comparison in Verify is
// constant-time with respect to the digest.
type BcryptHasher struct {
	Cost int
}

var _ Hasher = BcryptHasher{}

func NewBcryptHasher(cost int) BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{Cost: cost}
}

func (h BcryptHasher) Hash(plaintext string) (string, error) {
	return HashPassword(plaintext, h.Cost)
}

func (h BcryptHasher) Verify(plaintext, digest string) bool {
	return CheckPasswordHash(plaintext, digest)
}

func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
