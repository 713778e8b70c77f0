// Package auth hashes passwords and issues the session tokens handed out on login.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"gestorpro/internal/usecase/interfaces"
)

// MinPasswordLength matches a DNI, the initial password of tenants and team members.
const MinPasswordLength = 6

func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword maps any mismatch to ErrInvalidCredentials.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrHashTooShort) {
		return interfaces.ErrInvalidCredentials
	}
	return err
}
