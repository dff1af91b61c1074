package evaluacion

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

func validarPeriodo(e *Evaluacion) string {
	if e.Year < 2000 || e.Year > 2100 {
		return "year fuera de rango (2000-2100)"
	}
	if e.Semester != SemesterH1 && e.Semester != SemesterH2 {
		return "semester debe ser H1 o H2"
	}
	if e.Status != "" && e.Status != StatusDraft && e.Status != StatusFinal {
		return "status debe ser draft o final"
	}
	return ""
}

// ListarPorTecnico retorna todas las evaluaciones de un técnico
func (h *Handler) ListarPorTecnico(w http.ResponseWriter, r *http.Request) {
	tecnicoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorTecnico(h.DB, uint(tecnicoID))
	if err != nil {
		http.Error(w, "error al listar evaluaciones", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Crear da de alta la evaluación del período; los campos derivados se
// recalculan siempre en el servidor.
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	tecnicoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var e Evaluacion
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	e.ID = 0
	e.TecnicoID = uint(tecnicoID)
	if e.Status == "" {
		e.Status = StatusDraft
	}
	if msg := validarPeriodo(&e); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !e.ValidarRatings() {
		http.Error(w, "los puntajes deben estar entre 1 y 6", http.StatusBadRequest)
		return
	}

	// única por (técnico, año, semestre)
	if _, err := h.Repository.BuscarPorPeriodo(h.DB, e.TecnicoID, e.Year, e.Semester); err == nil {
		http.Error(w, "ya existe una evaluación para ese período", http.StatusConflict)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "error al consultar evaluaciones", http.StatusInternalServerError)
		return
	}

	e.RecalcularDerivados()
	if err := h.Repository.Crear(h.DB, &e); err != nil {
		http.Error(w, "error al guardar evaluación", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

// Atualizar guarda cambios de una evaluación en borrador. Una evaluación
// final es terminal: cualquier mutación responde 409.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	evalID, err := strconv.Atoi(mux.Vars(r)["evalId"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(evalID))
	if err != nil {
		http.Error(w, "evaluación no encontrada", http.StatusNotFound)
		return
	}
	if existente.EsFinal() {
		http.Error(w, "la evaluación está finalizada y no admite cambios", http.StatusConflict)
		return
	}

	var datos Evaluacion
	if err := json.NewDecoder(r.Body).Decode(&datos); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	datos.ID = existente.ID
	datos.TecnicoID = existente.TecnicoID
	datos.CreatedAt = existente.CreatedAt
	if datos.Status == "" {
		datos.Status = existente.Status
	}
	if datos.Year == 0 {
		datos.Year = existente.Year
	}
	if datos.Semester == "" {
		datos.Semester = existente.Semester
	}
	if msg := validarPeriodo(&datos); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if !datos.ValidarRatings() {
		http.Error(w, "los puntajes deben estar entre 1 y 6", http.StatusBadRequest)
		return
	}

	// si cambió el período, sigue única por (técnico, año, semestre)
	if datos.Year != existente.Year || datos.Semester != existente.Semester {
		if _, err := h.Repository.BuscarPorPeriodo(h.DB, datos.TecnicoID, datos.Year, datos.Semester); err == nil {
			http.Error(w, "ya existe una evaluación para ese período", http.StatusConflict)
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "error al consultar evaluaciones", http.StatusInternalServerError)
			return
		}
	}

	datos.RecalcularDerivados()
	if err := h.Repository.Atualizar(h.DB, &datos); err != nil {
		http.Error(w, "error al actualizar evaluación", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(datos)
}

// Deletar elimina una evaluación en borrador
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	evalID, err := strconv.Atoi(mux.Vars(r)["evalId"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	existente, err := h.Repository.BuscarPorID(h.DB, uint(evalID))
	if err != nil {
		http.Error(w, "evaluación no encontrada", http.StatusNotFound)
		return
	}
	if existente.EsFinal() {
		http.Error(w, "la evaluación está finalizada y no admite cambios", http.StatusConflict)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(evalID)); err != nil {
		http.Error(w, "error al excluir evaluación", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("evaluación excluida con éxito"))
}
