package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword retorna el hash bcrypt de la contraseña en texto plano
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPassword compara el hash bcrypt con la contraseña y retorna true si coincide
func CheckPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
