package objetivocuantitativo

import (
	"time"

	"gorm.io/gorm"
)

// PlantillaCuantitativa es el molde reutilizable para crear objetivos
// numéricos período a período.
type PlantillaCuantitativa struct {
	gorm.Model
	TenantID          uint    `gorm:"not null;index" json:"tenantId"`
	Nombre            string  `gorm:"size:150;not null" json:"nombre"`
	Descripcion       string  `gorm:"type:text" json:"descripcion"`
	Unidad            string  `gorm:"size:50" json:"unidad"` // ej: "ARS", "unidades"
	CompanyTarget     float64 `gorm:"not null;default:0" json:"companyTarget"`
	MinimumAcceptable float64 `gorm:"not null;default:0" json:"minimumAcceptable"`
	Weight            int     `gorm:"not null;default:0" json:"weight"` // 0-100
}

// ObjetivoCuantitativo es la meta numérica de un período. Cuando IsGlobal,
// el alta reparte el target entre los vendedores activos.
type ObjetivoCuantitativo struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	TenantID          uint           `gorm:"not null;index" json:"tenantId"`
	PlantillaID       *uint          `gorm:"index" json:"plantillaId"`
	Nombre            string         `gorm:"size:150;not null" json:"nombre"`
	CompanyTarget     float64        `gorm:"not null;default:0" json:"companyTarget"`
	MinimumAcceptable float64        `gorm:"not null;default:0" json:"minimumAcceptable"`
	Weight            int            `gorm:"not null;default:0" json:"weight"`
	FechaInicio       time.Time      `json:"fechaInicio"`
	FechaFin          time.Time      `json:"fechaFin"`
	IsGlobal          bool           `gorm:"not null;default:false" json:"isGlobal"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Asignaciones []AsignacionCuantitativa `gorm:"foreignKey:ObjetivoID;constraint:OnDelete:CASCADE" json:"asignaciones"`
}

// AsignacionCuantitativa es la cuota de un vendedor sobre un objetivo.
// IndividualTarget arranca del reparto parejo y después es editable.
type AsignacionCuantitativa struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	ObjetivoID       uint           `gorm:"not null;index" json:"objetivoId"`
	VendedorID       uint           `gorm:"not null;index" json:"vendedorId"`
	IndividualTarget float64        `gorm:"not null;default:0" json:"individualTarget"`
	ValorActual      float64        `gorm:"not null;default:0" json:"valorActual"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}
