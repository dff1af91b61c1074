package servicio

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gestioncomercial/api-ventas/internal/auth"
	"github.com/gestioncomercial/api-ventas/internal/clienteservicio"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB           *gorm.DB
	Repository   Repository
	Asignaciones clienteservicio.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:           db,
		Repository:   NewRepository(),
		Asignaciones: clienteservicio.NewRepository(),
	}
}

// Listar retorna el catálogo del tenant
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB, auth.TenantID(r.Context()))
	if err != nil {
		http.Error(w, "error al listar servicios", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID retorna un servicio por ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	s, err := h.Repository.BuscarPorID(h.DB, auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "servicio no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s)
}

// Crear da de alta un servicio del catálogo
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var s Servicio
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if s.Nombre == "" || s.Categoria == "" {
		http.Error(w, "nombre y categoria son requeridos", http.StatusBadRequest)
		return
	}
	s.TenantID = auth.TenantID(r.Context())
	s.ID = 0
	if err := h.Repository.Salvar(h.DB, &s); err != nil {
		http.Error(w, "error al guardar servicio", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// Atualizar modifica un servicio existente
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repository.BuscarPorID(h.DB, auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "servicio no encontrado", http.StatusNotFound)
		return
	}

	var datos Servicio
	if err := json.NewDecoder(r.Body).Decode(&datos); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if datos.Nombre == "" || datos.Categoria == "" {
		http.Error(w, "nombre y categoria son requeridos", http.StatusBadRequest)
		return
	}
	existente.Nombre = datos.Nombre
	existente.Categoria = datos.Categoria
	existente.Descripcion = datos.Descripcion

	if err := h.Repository.Salvar(h.DB, existente); err != nil {
		http.Error(w, "error al actualizar servicio", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// Deletar elimina el servicio y sus asignaciones dependientes
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, auth.TenantID(r.Context()), uint(id)); err != nil {
		http.Error(w, "servicio no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Asignaciones.DeletarPorServicio(h.DB, uint(id)); err != nil {
		http.Error(w, "error al limpiar asignaciones", http.StatusInternalServerError)
		return
	}
	if err := h.Repository.Deletar(h.DB, auth.TenantID(r.Context()), uint(id)); err != nil {
		http.Error(w, "error al excluir servicio", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("servicio excluido con éxito"))
}
