package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailValido(t *testing.T) {
	assert.True(t, EmailValido("ops@acme.test"))
	assert.True(t, EmailValido("a.b+c@dominio.com.ar"))

	assert.False(t, EmailValido(""))
	assert.False(t, EmailValido("sin-arroba"))
	assert.False(t, EmailValido("dos@@arrobas.com"))
	assert.False(t, EmailValido("sin@tld"))
	assert.False(t, EmailValido("con espacios@x.com"))
}

func TestURLValida(t *testing.T) {
	assert.True(t, URLValida("https://drive.acme.test/doc/1"))
	assert.True(t, URLValida("http://localhost:3000/reporte"))

	assert.False(t, URLValida("relevamiento.doc"))
	assert.False(t, URLValida("ftp://viejo.server/archivo"))
	assert.False(t, URLValida("https://"))
	assert.False(t, URLValida(""))
}

func TestGenerarContrasenaTemporal(t *testing.T) {
	p1, err := GenerarContrasenaTemporal()
	require.NoError(t, err)
	assert.Len(t, p1, 12)

	p2, err := GenerarContrasenaTemporal()
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
}

func TestNombreArchivoSeguro(t *testing.T) {
	assert.True(t, NombreArchivoSeguro("backup-20260830.dump"))

	for _, nombre := range []string{"", ".", "..", "../x", "a/b", `a\b`, "x..y"} {
		assert.False(t, NombreArchivoSeguro(nombre), "nombre %q", nombre)
	}
}

func TestHashYCheckPassword(t *testing.T) {
	hash, err := HashPassword("secreta123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreta123", hash)

	assert.True(t, CheckPassword(hash, "secreta123"))
	assert.False(t, CheckPassword(hash, "otra"))
}
