package evaluacion

import "math"

// Promedio calcula la media de los puntajes cargados. ok=false cuando todavía
// no hay ninguno.
func Promedio(ratings []*int) (float64, bool) {
	sum, n := 0, 0
	for _, r := range ratings {
		if r != nil {
			sum += *r
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// Bonus es la función escalonada de sugerencia de bono sobre el promedio
// crudo: ≥5→10%, ≥4→7%, ≥3→5%, ≥2→2%, resto 0.
func Bonus(promedio float64, tiene bool) int {
	if !tiene {
		return 0
	}
	switch {
	case promedio >= 5:
		return 10
	case promedio >= 4:
		return 7
	case promedio >= 3:
		return 5
	case promedio >= 2:
		return 2
	default:
		return 0
	}
}

// RecalcularDerivados recomputa OverallRating y BonusPercentage a partir de
// los puntajes actuales. Se invoca en cada alta y modificación para que lo
// persistido nunca quede desfasado de lo cargado.
func (e *Evaluacion) RecalcularDerivados() {
	prom, tiene := Promedio(e.Ratings())
	if !tiene {
		e.OverallRating = nil
	} else {
		overall := int(math.Round(prom))
		e.OverallRating = &overall
	}
	e.BonusPercentage = Bonus(prom, tiene)
}

// ValidarRatings exige puntajes enteros entre 1 y 6.
func (e *Evaluacion) ValidarRatings() bool {
	for _, r := range e.Ratings() {
		if r != nil && (*r < 1 || *r > 6) {
			return false
		}
	}
	return true
}
