package clienteservicio

import (
	"time"

	"gorm.io/gorm"
)

// ClienteServicio es la fila de asociación cliente ↔ servicio. Invariante:
// a lo sumo una fila activa por par (cliente, servicio); los duplicados son
// un defecto de datos que repara el health check.
type ClienteServicio struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	ClienteID       uint           `gorm:"not null;index:idx_cliente_servicio" json:"clientId"`
	ServicioID      uint           `gorm:"not null;index:idx_cliente_servicio" json:"servicioId"`
	FechaAsignacion time.Time      `json:"fechaAsignacion"`
	Notas           string         `gorm:"type:text" json:"notas"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}
