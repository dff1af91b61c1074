package objetivocuantitativo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistribuirTarget(t *testing.T) {
	t.Run("división exacta", func(t *testing.T) {
		partes := DistribuirTarget(300, 3)
		assert.Equal(t, []float64{100, 100, 100}, partes)
	})

	t.Run("el resto queda en la primera cuota", func(t *testing.T) {
		partes := DistribuirTarget(100, 3)
		assert.Equal(t, []float64{33.34, 33.33, 33.33}, partes)
	})

	t.Run("la suma siempre iguala el total", func(t *testing.T) {
		cases := []struct {
			total float64
			n     int
		}{
			{100, 3},
			{1000, 7},
			{0.01, 2},
			{99999.99, 13},
			{50, 1},
		}
		for _, c := range cases {
			partes := DistribuirTarget(c.total, c.n)
			var suma float64
			for _, p := range partes {
				suma += p
			}
			suma = math.Round(suma*100) / 100
			assert.Equal(t, c.total, suma, "total %v entre %d", c.total, c.n)
		}
	})

	t.Run("sin vendedores", func(t *testing.T) {
		assert.Nil(t, DistribuirTarget(100, 0))
		assert.Nil(t, DistribuirTarget(100, -1))
	})
}

func TestDiferencia(t *testing.T) {
	asignaciones := []AsignacionCuantitativa{
		{IndividualTarget: 33.34},
		{IndividualTarget: 33.33},
		{IndividualTarget: 33.33},
	}
	assert.Equal(t, 0.0, Diferencia(100, asignaciones))

	// un ajuste manual deja desvío visible, no se fuerza a cero
	asignaciones[1].IndividualTarget = 30
	assert.Equal(t, 3.33, Diferencia(100, asignaciones))

	assert.Equal(t, 100.0, Diferencia(100, nil))
}
