package services

import (
	"golang.org/x/crypto/bcrypt"
)

type CredentialServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePasswords(hashedPassword, password string) error
}

// CredentialService manages the optional password barrier on shared notes.
// Plaintext passwords are hashed once at note creation and never persisted.
type CredentialService struct{}

func (s *CredentialService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *CredentialService) ComparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

var CredentialServiceInstance CredentialServiceInterface = &CredentialService{}
