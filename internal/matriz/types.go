// Package matriz implementa el flujo de conciliación de asignaciones
// cliente ↔ servicio que comparten la pantalla de clientes y la grilla:
// cliente HTTP con reintentos, coordinador de toggles con deduplicación de
// operaciones en vuelo y health check best-effort.
package matriz

import (
	"fmt"
	"time"
)

// Asignacion es la fila de asociación tal como viaja por el API.
type Asignacion struct {
	ID              uint      `json:"id"`
	ClienteID       uint      `json:"clientId"`
	ServicioID      uint      `json:"servicioId"`
	FechaAsignacion time.Time `json:"fechaAsignacion"`
	Notas           string    `json:"notas"`
}

// Cliente es la vista mínima que necesita el coordinador: el estado de
// asignación se lee de Servicios tal como lo conoce el llamador, sin
// re-consultar.
type Cliente struct {
	ID        uint         `json:"id"`
	Nombre    string       `json:"nombre"`
	Servicios []Asignacion `json:"servicios"`
}

// Servicio es la vista mínima de un servicio del catálogo.
type Servicio struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
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

// Claves de caché invalidadas por toda mutación de asignaciones.
func KeyAsignacionesCliente(clienteID uint) string {
	return fmt.Sprintf("cliente-servicios:cliente:%d", clienteID)
}

func KeyClientesServicio(servicioID uint) string {
	return fmt.Sprintf("cliente-servicios:servicio:%d", servicioID)
}

const KeyMatriz = "clientes:matrix"
