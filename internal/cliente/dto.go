package cliente

import "github.com/gestioncomercial/api-ventas/internal/servicio"

// ListResponse es la página de resultados del listado de clientes.
type ListResponse struct {
	Rows       []Cliente `json:"rows"`
	Count      int64     `json:"count"`
	TotalPages int       `json:"totalPages"`
}

// MatrixResponse alimenta la grilla cliente × servicio.
type MatrixResponse struct {
	Clients  []Cliente           `json:"clients"`
	Services []servicio.Servicio `json:"services"`
}
