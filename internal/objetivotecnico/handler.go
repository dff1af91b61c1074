package objetivotecnico

import (
	"encoding/json"
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

func responderCampoError(w http.ResponseWriter, e *CampoError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(e)
}

// ListarPorTecnico retorna los objetivos de un técnico
func (h *Handler) ListarPorTecnico(w http.ResponseWriter, r *http.Request) {
	tecnicoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorTecnico(h.DB, uint(tecnicoID))
	if err != nil {
		http.Error(w, "error al listar objetivos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// Crear da de alta un objetivo para el técnico de la ruta
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	tecnicoID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var o ObjetivoTecnico
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	o.ID = 0
	o.TecnicoID = uint(tecnicoID)
	if o.Status == "" {
		o.Status = StatusPendiente
	}
	if o.Priority == "" {
		o.Priority = "medium"
	}
	if e := Validar(&o); e != nil {
		responderCampoError(w, e)
		return
	}

	if err := h.Repository.Crear(h.DB, &o); err != nil {
		http.Error(w, "error al guardar objetivo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(o)
}

// Atualizar modifica un objetivo existente
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	objID, err := strconv.Atoi(mux.Vars(r)["objetivoId"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(objID))
	if err != nil {
		http.Error(w, "objetivo no encontrado", http.StatusNotFound)
		return
	}

	var datos ObjetivoTecnico
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
	if datos.Priority == "" {
		datos.Priority = existente.Priority
	}
	if e := Validar(&datos); e != nil {
		responderCampoError(w, e)
		return
	}

	// status completado y flag completed se mantienen coherentes
	if datos.Status == StatusCompletado {
		datos.Completed = true
	}

	if err := h.Repository.Atualizar(h.DB, &datos); err != nil {
		http.Error(w, "error al actualizar objetivo", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(datos)
}

// Deletar elimina un objetivo
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	objID, err := strconv.Atoi(mux.Vars(r)["objetivoId"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, uint(objID)); err != nil {
		http.Error(w, "objetivo no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.Deletar(h.DB, uint(objID)); err != nil {
		http.Error(w, "error al excluir objetivo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("objetivo excluido con éxito"))
}
