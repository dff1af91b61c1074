package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain genera una clave RSA efímera y apunta los envs a ella antes de que
// cualquier test dispare la carga de claves (que corre una sola vez).
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "auth-keys")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
	pemBytes := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	keyPath := filepath.Join(dir, "private.pem")
	if err := os.WriteFile(keyPath, pemBytes, 0o600); err != nil {
		panic(err)
	}

	os.Setenv("AUTH_RSA_PRIVATE_PATH", keyPath)
	os.Setenv("AUTH_KID", "test-kid")
	os.Setenv("AUTH_ISSUER", "api-ventas-test")
	os.Setenv("AUTH_AUDIENCE", "dashboard-test")

	os.Exit(m.Run())
}

func TestGenerateYParseRoundtrip(t *testing.T) {
	tok, err := GenerateAccessToken(7, 3, true)
	require.NoError(t, err)

	claims, err := ParseAndValidate(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, uint(3), claims.TenantID)
	assert.True(t, claims.IsAdmin)
	assert.True(t, claims.EmailVerified)
	assert.Equal(t, "api-ventas-test", claims.Issuer)
}

func TestParseRechazaBasura(t *testing.T) {
	_, err := ParseAndValidate("no.es.jwt")
	assert.Error(t, err)

	_, err = ParseAndValidate("")
	assert.Error(t, err)
}

func TestMiddlewareAutenticacion(t *testing.T) {
	var gotTenant uint
	var gotUser uint
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTenant = TenantID(r.Context())
		gotUser = UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := MiddlewareAutenticacion(next)

	t.Run("token válido puebla el contexto", func(t *testing.T) {
		tok, err := GenerateAccessToken(7, 3, false)
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
		r.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(3), gotTenant)
		assert.Equal(t, uint(7), gotUser)
	})

	t.Run("sin header responde 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/clientes", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token inválido responde 401", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
		r.Header.Set("Authorization", "Bearer basura")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("preflight pasa sin token", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/clientes", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	full := MiddlewareAutenticacion(RequireAdmin(next))

	tok, err := GenerateAccessToken(1, 1, false)
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodGet, "/api/database/status", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	full.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code, "un usuario común no entra")

	tok, err = GenerateAccessToken(1, 1, true)
	require.NoError(t, err)
	r = httptest.NewRequest(http.MethodGet, "/api/database/status", nil)
	r.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	full.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
}
