package cliente

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/gestioncomercial/api-ventas/internal/auth"
	"github.com/gestioncomercial/api-ventas/internal/clienteservicio"
	"github.com/gestioncomercial/api-ventas/internal/servicio"
	"github.com/gestioncomercial/api-ventas/internal/tenant"
	"github.com/gestioncomercial/api-ventas/internal/utils"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB            *gorm.DB
	Repository    Repository
	Servicios     servicio.Repository
	Asignaciones  clienteservicio.Repository
	Guard         *tenant.Guard
}

func NewHandler(db *gorm.DB, guard *tenant.Guard) *Handler {
	return &Handler{
		DB:           db,
		Repository:   NewRepository(),
		Servicios:    servicio.NewRepository(),
		Asignaciones: clienteservicio.NewRepository(),
		Guard:        guard,
	}
}

func parseUintParam(r *http.Request, name string) *uint {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			u := uint(v)
			return &u
		}
	}
	return nil
}

func parseBoolParam(r *http.Request, name string) *bool {
	if raw := r.URL.Query().Get(name); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			return &v
		}
	}
	return nil
}

func parseIntParam(r *http.Request, name, fallback string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		raw = fallback
	}
	v, _ := strconv.Atoi(raw)
	return v
}

// Listar retorna la página filtrada/ordenada de clientes del tenant.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())

	f := Filtro{
		Nombre:          r.URL.Query().Get("nombre"),
		VendedorID:      parseUintParam(r, "vendedorId"),
		TecnicoID:       parseUintParam(r, "tecnicoId"),
		ContratoSoporte: parseBoolParam(r, "contratoSoporte"),
		Page:            parseIntParam(r, "page", "1"),
		Limit:           parseIntParam(r, "limit", "20"),
		SortBy:          r.URL.Query().Get("sortBy"),
		SortDir:         r.URL.Query().Get("sortDir"),
	}

	rows, count, err := h.Repository.Listar(h.DB, tenantID, f)
	if err != nil {
		http.Error(w, "error al listar clientes", http.StatusInternalServerError)
		return
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	resp := ListResponse{
		Rows:       rows,
		Count:      count,
		TotalPages: int(math.Ceil(float64(count) / float64(f.Limit))),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// BuscarPorID retorna un cliente con sus servicios
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, tenantID, uint(id))
	if err != nil {
		http.Error(w, "cliente no encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func (h *Handler) validar(c *Cliente) string {
	if c.Nombre == "" {
		return "nombre es requerido"
	}
	if c.Email != "" && !utils.EmailValido(c.Email) {
		return "email inválido"
	}
	if c.LinkDocumentoRelevamiento != "" && !utils.URLValida(c.LinkDocumentoRelevamiento) {
		return "linkDocumentoRelevamiento inválido"
	}
	return ""
}

// Crear da de alta un cliente, sujeto al límite del plan
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())

	var c Cliente
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := h.validar(&c); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	count, err := h.Repository.Contar(h.DB, tenantID)
	if err != nil {
		http.Error(w, "error al validar límites", http.StatusInternalServerError)
		return
	}
	if err := h.Guard.CheckLimit(tenantID, count, func(l tenant.Limits) int { return l.MaxClients }); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	c.TenantID = tenantID
	c.ID = 0
	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		http.Error(w, "error al guardar cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// Atualizar modifica un cliente existente
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, tenantID, uint(id))
	if err != nil {
		http.Error(w, "cliente no encontrado", http.StatusNotFound)
		return
	}

	var datos Cliente
	if err := json.NewDecoder(r.Body).Decode(&datos); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if msg := h.validar(&datos); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	existente.Nombre = datos.Nombre
	existente.Email = datos.Email
	existente.Telefono = datos.Telefono
	existente.Direccion = datos.Direccion
	existente.ContratoSoporte = datos.ContratoSoporte
	existente.FechaUltimoRelevamiento = datos.FechaUltimoRelevamiento
	existente.LinkDocumentoRelevamiento = datos.LinkDocumentoRelevamiento
	existente.Notas = datos.Notas
	existente.VendedorID = datos.VendedorID
	existente.TecnicoID = datos.TecnicoID

	if err := h.Repository.Salvar(h.DB, existente); err != nil {
		http.Error(w, "error al actualizar cliente", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existente)
}

// Deletar elimina el cliente y sus asignaciones
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, tenantID, uint(id)); err != nil {
		http.Error(w, "cliente no encontrado", http.StatusNotFound)
		return
	}
	if err := h.Asignaciones.DeletarPorCliente(h.DB, uint(id)); err != nil {
		http.Error(w, "error al limpiar asignaciones", http.StatusInternalServerError)
		return
	}
	if err := h.Repository.Deletar(h.DB, tenantID, uint(id)); err != nil {
		http.Error(w, "error al excluir cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("cliente excluido con éxito"))
}

// MatrizData retorna clientes (con servicios) y el catálogo para la grilla.
func (h *Handler) MatrizData(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())

	clients, err := h.Repository.ListarParaMatriz(h.DB, tenantID,
		parseUintParam(r, "vendedorId"), parseUintParam(r, "tecnicoId"))
	if err != nil {
		http.Error(w, "error al cargar la matriz", http.StatusInternalServerError)
		return
	}
	services, err := h.Servicios.ListarTodos(h.DB, tenantID)
	if err != nil {
		http.Error(w, "error al cargar servicios", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MatrixResponse{Clients: clients, Services: services})
}
