package vendedor

import (
	"math"

	"github.com/gestioncomercial/api-ventas/internal/objetivocualitativo"
	"github.com/gestioncomercial/api-ventas/internal/objetivocuantitativo"
)

// ResumenVendedorDTO agrega los datos y métricas de tablero de un vendedor.
type ResumenVendedorDTO struct {
	ID                   uint    `json:"id"`
	Nombre               string  `json:"nombre"`
	Email                string  `json:"email"`
	Estado               string  `json:"estado"`
	ClientCount          int64   `json:"clientCount"`
	QuantitativeProgress float64 `json:"quantitativeProgress"`
	QualitativeProgress  float64 `json:"qualitativeProgress"`
}

// MontarResumenVendedorDTO arma el DTO de resumen. El progreso cuantitativo
// es el avance promedio contra la cuota individual, capado al 100%; el
// cualitativo, el porcentaje de consignas cumplidas.
func MontarResumenVendedorDTO(
	v Vendedor,
	clientCount int64,
	cuant []objetivocuantitativo.AsignacionCuantitativa,
	cual []objetivocualitativo.AsignacionCualitativa,
) ResumenVendedorDTO {
	var progresoCuant float64
	conTarget := 0
	for _, a := range cuant {
		if a.IndividualTarget <= 0 {
			continue
		}
		conTarget++
		p := a.ValorActual / a.IndividualTarget * 100
		if p > 100 {
			p = 100
		}
		progresoCuant += p
	}
	if conTarget > 0 {
		progresoCuant = math.Round(progresoCuant/float64(conTarget)*100) / 100
	}

	var progresoCual float64
	if len(cual) > 0 {
		completadas := 0
		for _, a := range cual {
			if a.Completed {
				completadas++
			}
		}
		progresoCual = math.Round(float64(completadas)/float64(len(cual))*10000) / 100
	}

	return ResumenVendedorDTO{
		ID:                   v.ID,
		Nombre:               v.Nombre,
		Email:                v.Email,
		Estado:               v.Estado,
		ClientCount:          clientCount,
		QuantitativeProgress: progresoCuant,
		QualitativeProgress:  progresoCual,
	}
}
