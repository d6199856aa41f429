package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Douai-hub/coffee/pkg/coffee/domain/model"
)

func NewBcryptPasswordManager() model.PasswordManager {
	return bcryptPasswordManager{}
}

type bcryptPasswordManager struct{}

func (bcryptPasswordManager) Hash(plainText string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plainText), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (bcryptPasswordManager) Compare(hashed, plainText string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plainText))
}
