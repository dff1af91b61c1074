package tenant

import (
	"encoding/json"
	"net/http"

	"github.com/gestioncomercial/api-ventas/internal/auth"
	"github.com/gestioncomercial/api-ventas/internal/utils"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Handler expone el login local de respaldo y los datos del usuario logueado.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Login genera un JWT para credenciales válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarUsuarioPorEmail(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciales inválidas", http.StatusUnauthorized)
		return
	}
	if user.Estado != "active" {
		http.Error(w, "usuario deshabilitado", http.StatusForbidden)
		return
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		http.Error(w, "contraseña incorrecta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateAccessToken(user.ID, user.TenantID, user.IsAdmin)
	if err != nil {
		http.Error(w, "error al generar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Me retorna el usuario logueado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var u TenantUser
	if err := h.DB.First(&u, userID).Error; err != nil {
		http.Error(w, "usuario no encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// CrearUsuario da de alta un usuario dentro del tenant de la sesión (solo admin).
func (h *Handler) CrearUsuario(w http.ResponseWriter, r *http.Request) {
	tenantID := auth.TenantID(r.Context())

	var req struct {
		Nombre   string `json:"nombre"`
		Email    string `json:"email"`
		Subject  string `json:"subject"`
		IsAdmin  bool   `json:"isAdmin"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if !utils.EmailValido(req.Email) {
		http.Error(w, "email inválido", http.StatusBadRequest)
		return
	}

	count, err := h.Repository.ContarUsuarios(h.DB, tenantID)
	if err != nil {
		http.Error(w, "error al validar límites", http.StatusInternalServerError)
		return
	}
	guard := &Guard{DB: h.DB, Repository: h.Repository}
	if err := guard.CheckLimit(tenantID, count, func(l Limits) int { return l.MaxUsers }); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	password := req.Password
	if password == "" {
		if password, err = utils.GenerarContrasenaTemporal(); err != nil {
			http.Error(w, "error al generar contraseña", http.StatusInternalServerError)
			return
		}
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		http.Error(w, "error al procesar contraseña", http.StatusInternalServerError)
		return
	}

	u := TenantUser{
		TenantID:     tenantID,
		Nombre:       req.Nombre,
		Email:        req.Email,
		Subject:      req.Subject,
		IsAdmin:      req.IsAdmin,
		Estado:       "active",
		PasswordHash: hash,
	}
	if err := h.Repository.SalvarUsuario(h.DB, &u); err != nil {
		http.Error(w, "error al guardar usuario", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}
