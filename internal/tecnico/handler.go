package tecnico

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gestioncomercial/api-ventas/internal/auth"
	"github.com/gestioncomercial/api-ventas/internal/cliente"
	"github.com/gestioncomercial/api-ventas/internal/evaluacion"
	"github.com/gestioncomercial/api-ventas/internal/objetivotecnico"
	"github.com/gestioncomercial/api-ventas/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB           *gorm.DB
	Repository   Repository
	Clientes     cliente.Repository
	Evaluaciones evaluacion.Repository
	Objetivos    objetivotecnico.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:           db,
		Repository:   NewRepository(),
		Clientes:     cliente.NewRepository(),
		Evaluaciones: evaluacion.NewRepository(),
		Objetivos:    objetivotecnico.NewRepository(),
	}
}

func validar(t *Tecnico) string {
	if t.Nombre == "" {
		return "nombre es requerido"
	}
	if t.Email != nil && *t.Email != "" && !utils.EmailValido(*t.Email) {
		return "email inválido"
	}
	if t.Estado != "" && t.Estado != "active" && t.Estado != "inactive" {
		return "estado debe ser active o inactive"
	}
	return ""
}

// Listar retorna los técnicos del tenant
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB, auth.TenantID(r.Context()))
	if err != nil {
		http.Error(w, "error al listar técnicos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID retorna un técnico con evaluaciones y objetivos
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	t, err := h.Repository.BuscarPorID(h.DB, auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "técnico no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// Crear da de alta un técnico
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var t Tecnico
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := validar(&t); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if t.Estado == "" {
		t.Estado = "active"
	}
	t.TenantID = auth.TenantID(r.Context())
	t.ID = 0
	if err := h.Repository.Salvar(h.DB, &t); err != nil {
		http.Error(w, "error al guardar técnico", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

// Atualizar modifica un técnico existente
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repository.BuscarPorID(h.DB, auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "técnico no encontrado", http.StatusNotFound)
		return
	}

	var datos Tecnico
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
	existente.Especialidad = datos.Especialidad
	if datos.Estado != "" {
		existente.Estado = datos.Estado
	}
	existente.Notas = datos.Notas

	if err := h.Repository.Salvar(h.DB, existente); err != nil {
		http.Error(w, "error al actualizar técnico", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// conflicto de borrado: el front usa canForceDelete para ofrecer el forzado
type deleteConflict struct {
	Error          string `json:"error"`
	CanForceDelete bool   `json:"canForceDelete"`
	ClientCount    int64  `json:"clientCount"`
}

// Deletar elimina un técnico. Con clientes asignados responde 409 salvo
// ?force=true, que desasigna los clientes y elimina en cascada evaluaciones
// y objetivos.
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, tenantID, uint(id)); err != nil {
		http.Error(w, "técnico no encontrado", http.StatusNotFound)
		return
	}

	clientCount, err := h.Clientes.ContarPorTecnico(h.DB, uint(id))
	if err != nil {
		http.Error(w, "error al contar clientes", http.StatusInternalServerError)
		return
	}

	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))
	if clientCount > 0 && !force {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(deleteConflict{
			Error:          "el técnico tiene clientes asignados",
			CanForceDelete: true,
			ClientCount:    clientCount,
		})
		return
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "no se pudo iniciar transacción", http.StatusInternalServerError)
		return
	}
	if clientCount > 0 {
		if err := h.Clientes.DesasignarTecnico(tx, uint(id)); err != nil {
			tx.Rollback()
			http.Error(w, "error al desasignar clientes", http.StatusInternalServerError)
			return
		}
	}
	if err := h.Evaluaciones.DeletarPorTecnico(tx, uint(id)); err != nil {
		tx.Rollback()
		http.Error(w, "error al excluir evaluaciones", http.StatusInternalServerError)
		return
	}
	if err := h.Objetivos.DeletarPorTecnico(tx, uint(id)); err != nil {
		tx.Rollback()
		http.Error(w, "error al excluir objetivos", http.StatusInternalServerError)
		return
	}
	if err := h.Repository.Deletar(tx, tenantID, uint(id)); err != nil {
		tx.Rollback()
		http.Error(w, "error al excluir técnico", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		http.Error(w, "error al confirmar transacción", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("técnico excluido con éxito"))
}
