package objetivocualitativo

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gestioncomercial/api-ventas/internal/auth"
	"github.com/gestioncomercial/api-ventas/internal/tenant"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type crearObjetivoDTO struct {
	Nombre      string `json:"nombre"`
	Criterio    string `json:"criterio"`
	Weight      int    `json:"weight"`
	FechaInicio string `json:"fechaInicio"`
	FechaFin    string `json:"fechaFin"`
	IsGlobal    bool   `json:"isGlobal"`
	VendedorIDs []uint `json:"vendedorIds"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Guard      *tenant.Guard
}

func NewHandler(db *gorm.DB, guard *tenant.Guard) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Guard: guard}
}

func (h *Handler) vendedorIDs(tenantID uint) ([]uint, error) {
	var ids []uint
	err := h.DB.Table("vendedores").
		Where("tenant_id = ? AND estado = ? AND deleted_at IS NULL", tenantID, "active").
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

// Crear da de alta un objetivo cualitativo; global duplica la consigna en
// una asignación por vendedor.
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())

	var dto crearObjetivoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Nombre == "" || dto.Criterio == "" {
		http.Error(w, "nombre y criterio son requeridos", http.StatusBadRequest)
		return
	}
	if dto.Weight < 0 || dto.Weight > 100 {
		http.Error(w, "weight debe estar entre 0 y 100", http.StatusBadRequest)
		return
	}
	if dto.IsGlobal && !h.Guard.TieneFeature(tenantID, tenant.FeatureObjetivosGlobal) {
		http.Error(w, "feature not enabled", http.StatusForbidden)
		return
	}

	count, err := h.Repository.Contar(h.DB, tenantID)
	if err != nil {
		http.Error(w, "error al validar límites", http.StatusInternalServerError)
		return
	}
	if err := h.Guard.CheckLimit(tenantID, count, func(l tenant.Limits) int { return l.MaxObjectives }); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	parse := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	inicio := parse(dto.FechaInicio)
	fin := parse(dto.FechaFin)
	if !inicio.IsZero() && !fin.IsZero() && fin.Before(inicio) {
		http.Error(w, "fechaFin no puede ser anterior a fechaInicio", http.StatusBadRequest)
		return
	}

	vendedores := dto.VendedorIDs
	if dto.IsGlobal && len(vendedores) == 0 {
		if vendedores, err = h.vendedorIDs(tenantID); err != nil {
			http.Error(w, "error al listar vendedores", http.StatusInternalServerError)
			return
		}
	}

	tx := h.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "no se pudo iniciar transacción", http.StatusInternalServerError)
		return
	}

	obj := ObjetivoCualitativo{
		TenantID:    tenantID,
		Nombre:      dto.Nombre,
		Criterio:    dto.Criterio,
		Weight:      dto.Weight,
		FechaInicio: inicio,
		FechaFin:    fin,
		IsGlobal:    dto.IsGlobal,
	}
	if err := tx.Create(&obj).Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "error al crear objetivo", http.StatusInternalServerError)
		return
	}
	for _, vid := range vendedores {
		a := AsignacionCualitativa{ObjetivoID: obj.ID, VendedorID: vid}
		if err := tx.Create(&a).Error; err != nil {
			_ = tx.Rollback()
			http.Error(w, "error al crear asignaciones", http.StatusInternalServerError)
			return
		}
		obj.Asignaciones = append(obj.Asignaciones, a)
	}
	if err := tx.Commit().Error; err != nil {
		http.Error(w, "error al confirmar transacción", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(obj)
}

// Listar retorna los objetivos cualitativos con asignaciones
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarTodos(h.DB, auth.TenantID(r.Context()))
	if err != nil {
		http.Error(w, "error al listar objetivos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID retorna un objetivo cualitativo
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	o, err := h.Repository.BuscarPorID(h.DB, auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "objetivo no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(o)
}

// Atualizar modifica la cabecera del objetivo
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repository.BuscarPorID(h.DB, auth.TenantID(r.Context()), uint(id))
	if err != nil {
		http.Error(w, "objetivo no encontrado", http.StatusNotFound)
		return
	}

	var dto crearObjetivoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Weight < 0 || dto.Weight > 100 {
		http.Error(w, "weight debe estar entre 0 y 100", http.StatusBadRequest)
		return
	}
	if dto.Nombre != "" {
		existente.Nombre = dto.Nombre
	}
	if dto.Criterio != "" {
		existente.Criterio = dto.Criterio
	}
	existente.Weight = dto.Weight
	if t, err := time.Parse(time.RFC3339, dto.FechaInicio); err == nil {
		existente.FechaInicio = t
	}
	if t, err := time.Parse(time.RFC3339, dto.FechaFin); err == nil {
		existente.FechaFin = t
	}

	if err := h.Repository.Atualizar(h.DB, existente); err != nil {
		http.Error(w, "error al actualizar objetivo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// Deletar elimina el objetivo y sus asignaciones
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Deletar(h.DB, auth.TenantID(r.Context()), uint(id)); err != nil {
		http.Error(w, "error al excluir objetivo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("objetivo excluido con éxito"))
}

// AtualizarAsignacion marca cumplimiento o notas de un vendedor
func (h *Handler) AtualizarAsignacion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["asignacionId"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	a, err := h.Repository.BuscarAsignacion(h.DB, uint(id))
	if err != nil {
		http.Error(w, "asignación no encontrada", http.StatusNotFound)
		return
	}

	var body struct {
		Completed *bool   `json:"completed"`
		Notas     *string `json:"notas"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if body.Completed != nil {
		a.Completed = *body.Completed
	}
	if body.Notas != nil {
		a.Notas = *body.Notas
	}
	if err := h.Repository.SalvarAsignacion(h.DB, a); err != nil {
		http.Error(w, "error al actualizar asignación", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}
