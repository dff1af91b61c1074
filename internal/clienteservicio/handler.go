package clienteservicio

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gestioncomercial/api-ventas/internal/notificacion"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Códigos estructurados del alta de asignación. El front trata
// ALREADY_ASSIGNED como éxito idempotente.
const (
	CodeAssigned        = "ASSIGNED"
	CodeAlreadyAssigned = "ALREADY_ASSIGNED"
)

type crearRequest struct {
	ClienteID       uint   `json:"clientId"`
	ServicioID      uint   `json:"servicioId"`
	FechaAsignacion string `json:"fechaAsignacion"`
	Notas           string `json:"notas"`
}

type asignacionResponse struct {
	Code       string           `json:"code"`
	Asignacion *ClienteServicio `json:"asignacion"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Reconciler *Reconciler
	// URL del webhook de alertas; vacío deshabilita el aviso
	WebhookURL string
}

func NewHandler(db *gorm.DB, webhookURL string) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Reconciler: NewReconciler(db),
		WebhookURL: webhookURL,
	}
}

// Crear asigna un servicio a un cliente. Si el par ya existe responde 200 con
// code ALREADY_ASSIGNED en lugar de error: el alta es idempotente.
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req crearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.ClienteID == 0 || req.ServicioID == 0 {
		http.Error(w, "clientId y servicioId son requeridos", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorPar(h.DB, req.ClienteID, req.ServicioID)
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(asignacionResponse{Code: CodeAlreadyAssigned, Asignacion: existente})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "error al consultar asignaciones", http.StatusInternalServerError)
		return
	}

	a := ClienteServicio{
		ClienteID:  req.ClienteID,
		ServicioID: req.ServicioID,
		Notas:      req.Notas,
	}
	if req.FechaAsignacion != "" {
		if t, err := time.Parse(time.RFC3339, req.FechaAsignacion); err == nil {
			a.FechaAsignacion = t
		}
	}
	if err := h.Repository.Crear(h.DB, &a); err != nil {
		http.Error(w, "error al crear asignación", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(asignacionResponse{Code: CodeAssigned, Asignacion: &a})
}

// ListarPorCliente retorna las asignaciones de un cliente
func (h *Handler) ListarPorCliente(w http.ResponseWriter, r *http.Request) {
	clienteID, err := strconv.Atoi(mux.Vars(r)["clienteId"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	list, err := h.Repository.ListarPorCliente(h.DB, uint(clienteID))
	if err != nil {
		http.Error(w, "error al listar asignaciones", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// ContarPorCliente retorna la cantidad de servicios asignados. Ante falla
// responde 0: es un dato best-effort de la grilla.
func (h *Handler) ContarPorCliente(w http.ResponseWriter, r *http.Request) {
	clienteID, err := strconv.Atoi(mux.Vars(r)["clienteId"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	n, err := h.Repository.ContarPorCliente(h.DB, uint(clienteID))
	if err != nil {
		log.Printf("error al contar servicios del cliente %d: %v", clienteID, err)
		n = 0
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"count": n})
}

// ActualizarNotas muta las notas sin tocar la asignación
func (h *Handler) ActualizarNotas(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	var body struct {
		Notas string `json:"notas"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	a, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "asignación no encontrada", http.StatusNotFound)
		return
	}
	a.Notas = body.Notas
	if err := h.Repository.Atualizar(h.DB, a); err != nil {
		http.Error(w, "error al actualizar notas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// DeletarPorPar quita un servicio de un cliente
func (h *Handler) DeletarPorPar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clienteID, err1 := strconv.Atoi(vars["clienteId"])
	servicioID, err2 := strconv.Atoi(vars["servicioId"])
	if err1 != nil || err2 != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.DeletarPorPar(h.DB, uint(clienteID), uint(servicioID)); err != nil {
		http.Error(w, "error al quitar servicio", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("servicio quitado del cliente"))
}

// HealthCheck repara filas inválidas y reporta qué se corrigió.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reconciler.Run()
	if err != nil {
		log.Printf("health check incompleto: %v", err)
		http.Error(w, "health check falló", http.StatusInternalServerError)
		return
	}
	if len(report.Fixed) > 0 {
		log.Printf("health check reparó %d filas: %v", len(report.Fixed), report.Fixed)
		if h.WebhookURL != "" {
			go notificacion.EnviarAlertaReparacion(h.WebhookURL, report.Fixed)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]*Report{"report": report})
}
