package cliente

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestioncomercial/api-ventas/internal/auth"
	"github.com/gestioncomercial/api-ventas/internal/clienteservicio"
	"github.com/gestioncomercial/api-ventas/internal/servicio"
	"github.com/gestioncomercial/api-ventas/internal/tenant"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	clientes     []Cliente
	ultimoFiltro Filtro
}

func (f *fakeRepo) Salvar(db *gorm.DB, c *Cliente) error {
	if c.ID == 0 {
		c.ID = uint(len(f.clientes) + 1)
		f.clientes = append(f.clientes, *c)
	}
	return nil
}

func (f *fakeRepo) BuscarPorID(db *gorm.DB, tenantID, id uint) (*Cliente, error) {
	for i := range f.clientes {
		if f.clientes[i].ID == id && f.clientes[i].TenantID == tenantID {
			copia := f.clientes[i]
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Listar(db *gorm.DB, tenantID uint, filtro Filtro) ([]Cliente, int64, error) {
	f.ultimoFiltro = filtro
	return f.clientes, int64(len(f.clientes)), nil
}

func (f *fakeRepo) ListarParaMatriz(db *gorm.DB, tenantID uint, vendedorID, tecnicoID *uint) ([]Cliente, error) {
	return f.clientes, nil
}

func (f *fakeRepo) Contar(db *gorm.DB, tenantID uint) (int64, error) {
	return int64(len(f.clientes)), nil
}

func (f *fakeRepo) ContarPorVendedor(db *gorm.DB, vendedorID uint) (int64, error) { return 0, nil }

func (f *fakeRepo) ContarPorTecnico(db *gorm.DB, tecnicoID uint) (int64, error) { return 0, nil }

func (f *fakeRepo) DesasignarVendedor(db *gorm.DB, vendedorID uint) error { return nil }

func (f *fakeRepo) DesasignarTecnico(db *gorm.DB, tecnicoID uint) error { return nil }

func (f *fakeRepo) Deletar(db *gorm.DB, tenantID, id uint) error {
	for i := range f.clientes {
		if f.clientes[i].ID == id {
			f.clientes = append(f.clientes[:i], f.clientes[i+1:]...)
			break
		}
	}
	return nil
}

type fakeTenantRepo struct{ plan tenant.Plan }

func (f *fakeTenantRepo) BuscarPorID(db *gorm.DB, id uint) (*tenant.Tenant, error) {
	return &tenant.Tenant{ID: id, Estado: "active", Plan: f.plan}, nil
}

func (f *fakeTenantRepo) BuscarUsuarioPorEmail(db *gorm.DB, email string) (*tenant.TenantUser, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTenantRepo) BuscarUsuarioPorSubject(db *gorm.DB, subject string) (*tenant.TenantUser, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTenantRepo) ContarUsuarios(db *gorm.DB, tenantID uint) (int64, error) { return 0, nil }

func (f *fakeTenantRepo) Salvar(db *gorm.DB, t *tenant.Tenant) error { return nil }

func (f *fakeTenantRepo) SalvarUsuario(db *gorm.DB, u *tenant.TenantUser) error { return nil }

func newTestHandler(repo Repository) *Handler {
	return &Handler{
		Repository:   repo,
		Servicios:    servicio.NewRepository(),
		Asignaciones: clienteservicio.NewRepository(),
		Guard:        &tenant.Guard{Repository: &fakeTenantRepo{plan: tenant.PlanFree}},
	}
}

func conTenant(r *http.Request, tenantID uint) *http.Request {
	ctx := context.WithValue(r.Context(), auth.CtxTenantID, tenantID)
	return r.WithContext(ctx)
}

func clientesDePrueba(n int) []Cliente {
	out := make([]Cliente, n)
	for i := range out {
		out[i].ID = uint(i + 1)
		out[i].TenantID = 1
		out[i].Nombre = "Cliente"
	}
	return out
}

func TestListarPaginado(t *testing.T) {
	repo := &fakeRepo{clientes: clientesDePrueba(45)}
	h := newTestHandler(repo)

	r := conTenant(httptest.NewRequest(http.MethodGet, "/api/clientes?page=2&limit=20&nombre=acme&sortBy=createdAt&sortDir=desc", nil), 1)
	w := httptest.NewRecorder()
	h.Listar(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(45), resp.Count)
	assert.Equal(t, 3, resp.TotalPages)

	assert.Equal(t, 2, repo.ultimoFiltro.Page)
	assert.Equal(t, 20, repo.ultimoFiltro.Limit)
	assert.Equal(t, "acme", repo.ultimoFiltro.Nombre)
	assert.Equal(t, "createdAt", repo.ultimoFiltro.SortBy)
	assert.Equal(t, "desc", repo.ultimoFiltro.SortDir)
}

func TestListarDefaults(t *testing.T) {
	repo := &fakeRepo{}
	h := newTestHandler(repo)

	r := conTenant(httptest.NewRequest(http.MethodGet, "/api/clientes", nil), 1)
	w := httptest.NewRecorder()
	h.Listar(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, repo.ultimoFiltro.Page)
	assert.Equal(t, 20, repo.ultimoFiltro.Limit)
	assert.Nil(t, repo.ultimoFiltro.VendedorID)
	assert.Nil(t, repo.ultimoFiltro.ContratoSoporte)
}

func crearCliente(t *testing.T, h *Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	r := conTenant(httptest.NewRequest(http.MethodPost, "/api/clientes", bytes.NewReader(raw)), 1)
	w := httptest.NewRecorder()
	h.Crear(w, r)
	return w
}

func TestCrearCliente(t *testing.T) {
	repo := &fakeRepo{}
	h := newTestHandler(repo)

	w := crearCliente(t, h, map[string]any{"nombre": "ACME SA", "email": "ops@acme.test"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var c Cliente
	require.NoError(t, json.NewDecoder(w.Body).Decode(&c))
	assert.Equal(t, uint(1), c.TenantID, "el tenant sale del token, no del payload")
	assert.Len(t, repo.clientes, 1)
}

func TestCrearClienteValidaciones(t *testing.T) {
	h := newTestHandler(&fakeRepo{})

	w := crearCliente(t, h, map[string]any{"email": "ops@acme.test"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "sin nombre")

	w = crearCliente(t, h, map[string]any{"nombre": "ACME", "email": "no-es-mail"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "email inválido")

	w = crearCliente(t, h, map[string]any{"nombre": "ACME", "linkDocumentoRelevamiento": "relevamiento.doc"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "link inválido")
}

func TestCrearClienteRespetaLimiteDelPlan(t *testing.T) {
	// free admite hasta 25 clientes
	repo := &fakeRepo{clientes: clientesDePrueba(25)}
	h := newTestHandler(repo)

	w := crearCliente(t, h, map[string]any{"nombre": "el que rebalsa"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, repo.clientes, 25)
}

func TestBuscarPorIDDeOtroTenant(t *testing.T) {
	repo := &fakeRepo{clientes: clientesDePrueba(1)}
	h := newTestHandler(repo)

	r := conTenant(httptest.NewRequest(http.MethodGet, "/api/clientes/1", nil), 2)
	r = mux.SetURLVars(r, map[string]string{"id": "1"})
	w := httptest.NewRecorder()
	h.BuscarPorID(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code, "los datos de otro tenant no se ven")
}
