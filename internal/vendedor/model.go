package vendedor

import (
	"gorm.io/gorm"
)

// Vendedor es el dueño comercial de una cartera de clientes. Los agregados
// (clientes, progreso de objetivos) se calculan al servir el resumen, nunca
// se persisten.
type Vendedor struct {
	gorm.Model
	TenantID uint   `gorm:"not null;index" json:"tenantId"`
	Nombre   string `gorm:"size:150;not null" json:"nombre"`
	Email    string `gorm:"size:255" json:"email"`
	Telefono string `gorm:"size:50" json:"telefono"`
	Estado   string `gorm:"size:20;not null;default:'active'" json:"estado"` // "active" | "inactive"
}
