package tecnico

import (
	"github.com/gestioncomercial/api-ventas/internal/evaluacion"
	"github.com/gestioncomercial/api-ventas/internal/objetivotecnico"
	"gorm.io/gorm"
)

// Tecnico es el responsable técnico de una cartera de clientes. Sus
// evaluaciones y objetivos se eliminan junto con él; los clientes solo
// quedan sin técnico.
type Tecnico struct {
	gorm.Model
	TenantID     uint    `gorm:"not null;index" json:"tenantId"`
	Nombre       string  `gorm:"size:150;not null" json:"nombre"`
	Email        *string `gorm:"size:255;uniqueIndex" json:"email"`
	Telefono     string  `gorm:"size:50" json:"telefono"`
	Especialidad string  `gorm:"size:100" json:"especialidad"`
	Estado       string  `gorm:"size:20;not null;default:'active'" json:"estado"` // "active" | "inactive"
	Notas        string  `gorm:"type:text" json:"notas"`

	Evaluaciones []evaluacion.Evaluacion          `gorm:"foreignKey:TecnicoID;constraint:OnDelete:CASCADE" json:"evaluaciones,omitempty"`
	Objetivos    []objetivotecnico.ObjetivoTecnico `gorm:"foreignKey:TecnicoID;constraint:OnDelete:CASCADE" json:"objetivos,omitempty"`
}
