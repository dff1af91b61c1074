package objetivocualitativo

import (
	"time"

	"gorm.io/gorm"
)

// ObjetivoCualitativo es una meta de criterio (no numérica). Cuando es global
// se duplica la consigna para cada vendedor activo.
type ObjetivoCualitativo struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	TenantID    uint           `gorm:"not null;index" json:"tenantId"`
	Nombre      string         `gorm:"size:150;not null" json:"nombre"`
	Criterio    string         `gorm:"type:text;not null" json:"criterio"`
	Weight      int            `gorm:"not null;default:0" json:"weight"` // 0-100
	FechaInicio time.Time      `json:"fechaInicio"`
	FechaFin    time.Time      `json:"fechaFin"`
	IsGlobal    bool           `gorm:"not null;default:false" json:"isGlobal"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Asignaciones []AsignacionCualitativa `gorm:"foreignKey:ObjetivoID;constraint:OnDelete:CASCADE" json:"asignaciones"`
}

// AsignacionCualitativa registra el cumplimiento de la consigna por vendedor.
type AsignacionCualitativa struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	ObjetivoID uint           `gorm:"not null;index" json:"objetivoId"`
	VendedorID uint           `gorm:"not null;index" json:"vendedorId"`
	Completed  bool           `gorm:"not null;default:false" json:"completed"`
	Notas      string         `gorm:"type:text" json:"notas"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}
