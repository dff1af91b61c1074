package objetivocuantitativo

import "math"

// DistribuirTarget reparte el target de la compañía en partes iguales con dos
// decimales; el resto del redondeo queda en la primera cuota. La suma de las
// partes siempre iguala el total.
func DistribuirTarget(companyTarget float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	base := math.Floor(companyTarget/float64(n)*100) / 100
	partes := make([]float64, n)
	for i := range partes {
		partes[i] = base
	}
	resto := math.Round((companyTarget-base*float64(n))*100) / 100
	partes[0] = math.Round((partes[0]+resto)*100) / 100
	return partes
}

// Diferencia es el desvío companyTarget − Σ individualTargets que se muestra
// como ayuda de conciliación; no se fuerza a cero.
func Diferencia(companyTarget float64, asignaciones []AsignacionCuantitativa) float64 {
	var suma float64
	for _, a := range asignaciones {
		suma += a.IndividualTarget
	}
	return math.Round((companyTarget-suma)*100) / 100
}
