package cliente

import (
	"time"

	"github.com/gestioncomercial/api-ventas/internal/clienteservicio"
	"gorm.io/gorm"
)

// Cliente es la cuenta comercial. VendedorID y TecnicoID son opcionales y se
// anulan cuando el dueño se elimina.
type Cliente struct {
	gorm.Model
	TenantID                  uint       `gorm:"not null;index" json:"tenantId"`
	Nombre                    string     `gorm:"size:150;not null" json:"nombre"`
	Email                     string     `gorm:"size:255" json:"email"`
	Telefono                  string     `gorm:"size:50" json:"telefono"`
	Direccion                 string     `gorm:"size:255" json:"direccion"`
	ContratoSoporte           bool       `gorm:"not null;default:false" json:"contratoSoporte"`
	FechaUltimoRelevamiento   *time.Time `json:"fechaUltimoRelevamiento"`
	LinkDocumentoRelevamiento string     `gorm:"size:500" json:"linkDocumentoRelevamiento"`
	Notas                     string     `gorm:"type:text" json:"notas"`
	VendedorID                *uint      `gorm:"index" json:"vendedorId"`
	TecnicoID                 *uint      `gorm:"index" json:"tecnicoId"`

	Servicios []clienteservicio.ClienteServicio `gorm:"foreignKey:ClienteID" json:"servicios"`
}

// TieneServicio indica si el cliente ya tiene asignado el servicio.
func (c *Cliente) TieneServicio(servicioID uint) bool {
	for _, s := range c.Servicios {
		if s.ServicioID == servicioID {
			return true
		}
	}
	return false
}
