package service

import "golang.org/x/crypto/bcrypt"

const passwordHashCost = 10

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
