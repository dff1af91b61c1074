package tenant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestioncomercial/api-ventas/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	tenants map[uint]*Tenant
	users   int64
}

func (f *fakeRepo) BuscarPorID(db *gorm.DB, id uint) (*Tenant, error) {
	if t, ok := f.tenants[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) BuscarUsuarioPorEmail(db *gorm.DB, email string) (*TenantUser, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) BuscarUsuarioPorSubject(db *gorm.DB, subject string) (*TenantUser, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ContarUsuarios(db *gorm.DB, tenantID uint) (int64, error) { return f.users, nil }
func (f *fakeRepo) Salvar(db *gorm.DB, t *Tenant) error                     { return nil }
func (f *fakeRepo) SalvarUsuario(db *gorm.DB, u *TenantUser) error          { return nil }

func requestConTenant(tenantID uint) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	ctx := context.WithValue(r.Context(), auth.CtxTenantID, tenantID)
	return r.WithContext(ctx)
}

func TestGuardMiddleware(t *testing.T) {
	guard := &Guard{Repository: &fakeRepo{tenants: map[uint]*Tenant{
		1: {ID: 1, Estado: "active", Plan: PlanBasic},
		2: {ID: 2, Estado: "suspended", Plan: PlanBasic},
	}}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := guard.Middleware(next)

	t.Run("tenant activo pasa", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestConTenant(1))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("tenant suspendido corta con 403", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestConTenant(2))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("tenant inexistente corta con 403", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestConTenant(99))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("sin tenant en el contexto corta con 403", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/clientes", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequireFeature(t *testing.T) {
	guard := &Guard{Repository: &fakeRepo{tenants: map[uint]*Tenant{
		1: {ID: 1, Estado: "active", Plan: PlanFree},
		2: {ID: 2, Estado: "active", Plan: PlanPremium},
	}}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := guard.RequireFeature(FeatureBackups)(next)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, requestConTenant(1))
	assert.Equal(t, http.StatusForbidden, w.Code, "free no incluye backups")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, requestConTenant(2))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTieneFeature(t *testing.T) {
	guard := &Guard{Repository: &fakeRepo{tenants: map[uint]*Tenant{
		1: {ID: 1, Estado: "active", Plan: PlanFree},
		2: {ID: 2, Estado: "active", Plan: PlanBasic},
	}}}

	assert.False(t, guard.TieneFeature(1, FeatureObjetivosGlobal))
	assert.True(t, guard.TieneFeature(2, FeatureObjetivosGlobal))
	assert.False(t, guard.TieneFeature(99, FeatureEvaluaciones), "tenant inexistente")
}

func TestCheckLimit(t *testing.T) {
	guard := &Guard{Repository: &fakeRepo{tenants: map[uint]*Tenant{
		1: {ID: 1, Estado: "active", Plan: PlanFree}, // 25 clientes máximo
	}}}

	pick := func(l Limits) int { return l.MaxClients }

	assert.NoError(t, guard.CheckLimit(1, 24, pick))

	err := guard.CheckLimit(1, 25, pick)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLimiteAlcanzado)

	assert.Error(t, guard.CheckLimit(7, 0, pick), "tenant inexistente")
}
