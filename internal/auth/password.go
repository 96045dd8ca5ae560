package auth

import "golang.org/x/crypto/bcrypt"

// BcryptHasher hashes athlete passwords with bcrypt. Implements
// domain.PasswordHasher.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a hasher. Cost zero selects the bcrypt
// default.
func NewBcryptHasher(cost int) BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{cost: cost}
}

// Hash produces a salted one-way hash of the password.
func (h BcryptHasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether the password matches the stored hash.
func (h BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
