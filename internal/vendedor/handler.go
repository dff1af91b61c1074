package vendedor

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gestioncomercial/api-ventas/internal/auth"
	"github.com/gestioncomercial/api-ventas/internal/cliente"
	"github.com/gestioncomercial/api-ventas/internal/objetivocualitativo"
	"github.com/gestioncomercial/api-ventas/internal/objetivocuantitativo"
	"github.com/gestioncomercial/api-ventas/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Clientes   cliente.Repository
	Cuant      objetivocuantitativo.Repository
	Cual       objetivocualitativo.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Clientes:   cliente.NewRepository(),
		Cuant:      objetivocuantitativo.NewRepository(),
		Cual:       objetivocualitativo.NewRepository(),
	}
}

func validar(v *Vendedor) string {
	if v.Nombre == "" {
		return "nombre es requerido"
	}
	if v.Email != "" && !utils.EmailValido(v.Email) {
		return "email inválido"
	}
	if v.Estado != "" && v.Estado != "active" && v.Estado != "inactive" {
		return "estado debe ser active o inactive"
	}
	return ""
}

// Listar retorna los vendedores del tenant
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB, auth.TenantID(r.Context()))
	if err != nil {
		http.Error(w, "error al listar vendedores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID retorna un vendedor
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	v, err := h.Repository.BuscarPorID(h.DB, auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "vendedor no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Crear da de alta un vendedor
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var v Vendedor
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := validar(&v); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if v.Estado == "" {
		v.Estado = "active"
	}
	v.TenantID = auth.TenantID(r.Context())
	v.ID = 0
	if err := h.Repository.Salvar(h.DB, &v); err != nil {
		http.Error(w, "error al guardar vendedor", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// Atualizar modifica un vendedor existente
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repository.BuscarPorID(h.DB, auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "vendedor no encontrado", http.StatusNotFound)
		return
	}

	var datos Vendedor
	if err := json.NewDecoder(r.Body).Decode(&datos); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := validar(&datos); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	existente.Nombre = datos.Nombre
	existente.Email = datos.Email
	existente.Telefono = datos.Telefono
	if datos.Estado != "" {
		existente.Estado = datos.Estado
	}

	if err := h.Repository.Salvar(h.DB, existente); err != nil {
		http.Error(w, "error al actualizar vendedor", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// Deletar elimina un vendedor; sus clientes quedan sin dueño comercial
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, tenantID, uint(id)); err != nil {
		http.Error(w, "vendedor no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Clientes.DesasignarVendedor(h.DB, uint(id)); err != nil {
		http.Error(w, "error al desasignar clientes", http.StatusInternalServerError)
		return
	}
	if err := h.Repository.Deletar(h.DB, tenantID, uint(id)); err != nil {
		http.Error(w, "error al excluir vendedor", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("vendedor excluido con éxito"))
}

// ObtenerResumen construye y retorna el DTO de resumen del vendedor.
// Las métricas auxiliares son best-effort: ante falla se loguea y se sirve 0.
func (h *Handler) ObtenerResumen(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	v, err := h.Repository.BuscarPorID(h.DB, auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "vendedor no encontrado", http.StatusNotFound)
		return
	}

	clientCount, err := h.Clientes.ContarPorVendedor(h.DB, v.ID)
	if err != nil {
		log.Printf("error al contar clientes del vendedor %d: %v", v.ID, err)
		clientCount = 0
	}
	cuant, err := h.Cuant.ListarAsignacionesPorVendedor(h.DB, v.ID)
	if err != nil {
		log.Printf("error al listar asignaciones cuantitativas del vendedor %d: %v", v.ID, err)
	}
	cual, err := h.Cual.ListarAsignacionesPorVendedor(h.DB, v.ID)
	if err != nil {
		log.Printf("error al listar asignaciones cualitativas del vendedor %d: %v", v.ID, err)
	}

	dto := MontarResumenVendedorDTO(*v, clientCount, cuant, cual)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto)
}
