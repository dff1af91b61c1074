package servicio

import (
	"gorm.io/gorm"
)

// Servicio es una prestación del catálogo; se referencia desde las
// asignaciones pero nunca pertenece a un cliente.
type Servicio struct {
	gorm.Model
	TenantID    uint   `gorm:"not null;index" json:"tenantId"`
	Nombre      string `gorm:"size:100;not null" json:"nombre"`
	Categoria   string `gorm:"size:100;not null" json:"categoria"`
	Descripcion string `gorm:"type:text" json:"descripcion"`
}
