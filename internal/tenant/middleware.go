package tenant

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gestioncomercial/api-ventas/internal/auth"
	"gorm.io/gorm"
)

// Guard valida el tenant de la sesión contra la base antes de cada request
// autenticado y corta con 403 cuando la organización está suspendida.
type Guard struct {
	DB         *gorm.DB
	Repository Repository
}

func NewGuard(db *gorm.DB) *Guard {
	return &Guard{DB: db, Repository: NewRepository()}
}

func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		tenantID := auth.TenantID(r.Context())
		if tenantID == 0 {
			http.Error(w, "tenant ausente en el token", http.StatusForbidden)
			return
		}
		t, err := g.Repository.BuscarPorID(g.DB, tenantID)
		if err != nil {
			http.Error(w, "tenant no encontrado", http.StatusForbidden)
			return
		}
		if t.Estado != "active" {
			http.Error(w, "organización suspendida", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireFeature corta con 403 si el plan del tenant no habilita la capacidad.
func (g *Guard) RequireFeature(f Feature) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t, err := g.Repository.BuscarPorID(g.DB, auth.TenantID(r.Context()))
			if err != nil || !t.HasFeature(f) {
				http.Error(w, "feature not enabled", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TieneFeature consulta si el plan del tenant habilita la capacidad.
func (g *Guard) TieneFeature(tenantID uint, f Feature) bool {
	t, err := g.Repository.BuscarPorID(g.DB, tenantID)
	return err == nil && t.HasFeature(f)
}

// ErrLimiteAlcanzado se retorna cuando un alta superaría el tope del plan.
var ErrLimiteAlcanzado = errors.New("límite del plan alcanzado")

// CheckLimit compara el conteo actual contra el tope del plan del tenant.
// count es la cantidad ya existente del recurso que se quiere crear.
func (g *Guard) CheckLimit(tenantID uint, count int64, pick func(Limits) int) error {
	t, err := g.Repository.BuscarPorID(g.DB, tenantID)
	if err != nil {
		return err
	}
	max := pick(LimitsFor(t.Plan))
	if count >= int64(max) {
		return fmt.Errorf("%w (máximo %d para el plan %s)", ErrLimiteAlcanzado, max, t.Plan)
	}
	return nil
}
