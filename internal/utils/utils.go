package utils

import (
	"crypto/rand"
	"math/big"
	"net/url"
	"regexp"
	"strings"
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// EmailValido valida el formato básico de un e-mail.
func EmailValido(email string) bool {
	return emailRegexp.MatchString(email)
}

// URLValida acepta solo URLs absolutas http/https.
func URLValida(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// GenerarContrasenaTemporal genera una contraseña aleatoria segura de 12 caracteres.
func GenerarContrasenaTemporal() (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length := 12
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		result[i] = chars[num.Int64()]
	}
	return string(result), nil
}

// NombreArchivoSeguro rechaza nombres con separadores o ".." (path traversal).
func NombreArchivoSeguro(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, "/\\") && !strings.Contains(name, "..")
}
