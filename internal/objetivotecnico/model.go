package objetivotecnico

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPendiente    = "pendiente"
	StatusEnProgreso   = "en_progreso"
	StatusCompletado   = "completado"
	StatusNoCompletado = "no_completado"
)

// ObjetivoTecnico es un objetivo de desempeño de un técnico.
// IsNextObjective separa los del próximo período de los vigentes.
type ObjetivoTecnico struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	TecnicoID       uint           `gorm:"not null;index" json:"technicianId"`
	Titulo          string         `gorm:"size:200;not null" json:"titulo"`
	Descripcion     string         `gorm:"type:text" json:"descripcion"`
	Criterios       string         `gorm:"type:text" json:"criterios"`
	Status          string         `gorm:"size:20;not null;default:'pendiente'" json:"status"`
	DueDate         *time.Time     `json:"dueDate"`
	CompletionDate  *time.Time     `json:"completionDate"`
	Completed       bool           `gorm:"not null;default:false" json:"completed"`
	Priority        string         `gorm:"size:10;not null;default:'medium'" json:"priority"` // low | medium | high
	Weight          int            `gorm:"not null;default:0" json:"weight"`                  // 0-100
	Evidence        string         `gorm:"size:500" json:"evidence"`
	IsNextObjective bool           `gorm:"not null;default:false" json:"isNextObjective"`
	IsGlobal        bool           `gorm:"not null;default:false" json:"isGlobal"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}
