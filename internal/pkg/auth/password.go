package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/examdesk/internal/pkg/apperrors"
)

// BcryptCost is the work factor used for new hashes.
const BcryptCost = 12

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a hasher using BcryptCost.
func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{Cost: BcryptCost}
}

// Hash returns the bcrypt hash of password.
func (h BcryptHasher) Hash(password string) (string, error) {
	return HashPassword(password, h.Cost)
}

// Compare reports whether password matches hashedPassword.
func (h BcryptHasher) Compare(hashedPassword, password string) bool {
	return CheckPassword(hashedPassword, password)
}

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
var ErrPasswordTooLong = apperrors.NewCustomError(apperrors.ErrValidationFailed, "password must be at most 72 bytes")

// HashPassword hashes password with the given cost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = BcryptCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a password against its hash.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
