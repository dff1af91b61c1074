package auth

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const (
	CtxUserID   ctxKey = "usuarioID"
	CtxTenantID ctxKey = "tenantID"
	CtxIsAdmin  ctxKey = "isAdmin"
)

func MiddlewareAutenticacion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ParseAndValidate(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		// el IdP marca la cuenta hasta confirmar el e-mail; se distingue del 401
		// genérico para que el front muestre la pantalla de verificación
		if !claims.EmailVerified {
			http.Error(w, "Verificación de e-mail requerida", http.StatusForbidden)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxTenantID, claims.TenantID)
		ctx = context.WithValue(ctx, CtxIsAdmin, claims.IsAdmin)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v := r.Context().Value(CtxIsAdmin)
		if ok, _ := v.(bool); !ok {
			http.Error(w, "Forbidden (admin only)", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// TenantID extrae el tenant del contexto; 0 si no hay sesión.
func TenantID(ctx context.Context) uint {
	v, _ := ctx.Value(CtxTenantID).(uint)
	return v
}

// UserID extrae el usuario del contexto; 0 si no hay sesión.
func UserID(ctx context.Context) uint {
	v, _ := ctx.Value(CtxUserID).(uint)
	return v
}

// IsAdmin indica si la sesión tiene rol administrador.
func IsAdmin(ctx context.Context) bool {
	v, _ := ctx.Value(CtxIsAdmin).(bool)
	return v
}
