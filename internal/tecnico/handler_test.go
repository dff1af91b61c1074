package tecnico

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gestioncomercial/api-ventas/internal/auth"
	"github.com/gestioncomercial/api-ventas/internal/cliente"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	tecnicos map[uint]*Tecnico
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tecnicos: map[uint]*Tecnico{}}
}

func (f *fakeRepo) Salvar(db *gorm.DB, t *Tecnico) error {
	if t.ID == 0 {
		f.nextID++
		t.ID = f.nextID
	}
	copia := *t
	f.tecnicos[t.ID] = &copia
	return nil
}

func (f *fakeRepo) BuscarPorID(db *gorm.DB, tenantID, id uint) (*Tecnico, error) {
	if t, ok := f.tecnicos[id]; ok && t.TenantID == tenantID {
		copia := *t
		return &copia, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) ListarTodos(db *gorm.DB, tenantID uint) ([]Tecnico, error) {
	var out []Tecnico
	for _, t := range f.tecnicos {
		if t.TenantID == tenantID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeRepo) Deletar(db *gorm.DB, tenantID, id uint) error {
	delete(f.tecnicos, id)
	return nil
}

// fakeClientes solo responde el conteo por técnico
type fakeClientes struct {
	cliente.Repository
	porTecnico int64
}

func (f *fakeClientes) ContarPorTecnico(db *gorm.DB, tecnicoID uint) (int64, error) {
	return f.porTecnico, nil
}

func conTenant(r *http.Request, tenantID uint) *http.Request {
	ctx := context.WithValue(r.Context(), auth.CtxTenantID, tenantID)
	return r.WithContext(ctx)
}

func TestCrearTecnico(t *testing.T) {
	h := &Handler{Repository: newFakeRepo()}

	raw, _ := json.Marshal(map[string]any{"nombre": "Bruno Díaz", "especialidad": "redes"})
	r := conTenant(httptest.NewRequest(http.MethodPost, "/api/tecnicos", bytes.NewReader(raw)), 1)
	w := httptest.NewRecorder()
	h.Crear(w, r)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var tec Tecnico
	require.NoError(t, json.NewDecoder(w.Body).Decode(&tec))
	assert.Equal(t, uint(1), tec.TenantID)
	assert.Equal(t, "active", tec.Estado, "estado por defecto")
}

func TestCrearTecnicoValidaciones(t *testing.T) {
	h := &Handler{Repository: newFakeRepo()}

	casos := []map[string]any{
		{"especialidad": "redes"},                        // sin nombre
		{"nombre": "Ana", "email": "no-es-mail"},         // email inválido
		{"nombre": "Ana", "estado": "de vacaciones"},     // estado desconocido
	}
	for _, body := range casos {
		raw, _ := json.Marshal(body)
		r := conTenant(httptest.NewRequest(http.MethodPost, "/api/tecnicos", bytes.NewReader(raw)), 1)
		w := httptest.NewRecorder()
		h.Crear(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %v", body)
	}
}

func TestDeletarTecnicoConClientes(t *testing.T) {
	repo := newFakeRepo()
	repo.Salvar(nil, &Tecnico{TenantID: 1, Nombre: "Bruno"})
	h := &Handler{Repository: repo, Clientes: &fakeClientes{porTecnico: 4}}

	r := conTenant(httptest.NewRequest(http.MethodDelete, "/api/tecnicos/1", nil), 1)
	r = mux.SetURLVars(r, map[string]string{"id": "1"})
	w := httptest.NewRecorder()
	h.Deletar(w, r)

	require.Equal(t, http.StatusConflict, w.Code)
	var conflicto deleteConflict
	require.NoError(t, json.NewDecoder(w.Body).Decode(&conflicto))
	assert.True(t, conflicto.CanForceDelete)
	assert.Equal(t, int64(4), conflicto.ClientCount)

	_, err := repo.BuscarPorID(nil, 1, 1)
	assert.NoError(t, err, "el técnico sigue existiendo")
}

func TestDeletarTecnicoInexistente(t *testing.T) {
	h := &Handler{Repository: newFakeRepo(), Clientes: &fakeClientes{}}

	r := conTenant(httptest.NewRequest(http.MethodDelete, "/api/tecnicos/9", nil), 1)
	r = mux.SetURLVars(r, map[string]string{"id": "9"})
	w := httptest.NewRecorder()
	h.Deletar(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
