package evaluacion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ip(v int) *int { return &v }

func TestPromedio(t *testing.T) {
	t.Run("sin puntajes", func(t *testing.T) {
		_, ok := Promedio([]*int{nil, nil, nil})
		assert.False(t, ok)
	})

	t.Run("ignora los nil", func(t *testing.T) {
		prom, ok := Promedio([]*int{ip(6), nil, ip(4), nil})
		assert.True(t, ok)
		assert.Equal(t, 5.0, prom)
	})

	t.Run("un solo puntaje", func(t *testing.T) {
		prom, ok := Promedio([]*int{ip(3)})
		assert.True(t, ok)
		assert.Equal(t, 3.0, prom)
	})
}

func TestBonus(t *testing.T) {
	cases := []struct {
		promedio float64
		want     int
	}{
		{6, 10},
		{5, 10},
		{4.9, 7},
		{4, 7},
		{3.5, 5},
		{3, 5},
		{2.1, 2},
		{2, 2},
		{1.9, 0},
		{1, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Bonus(c.promedio, true), "promedio %v", c.promedio)
	}
	assert.Equal(t, 0, Bonus(6, false), "sin puntajes no hay bono")
}

func TestRecalcularDerivados(t *testing.T) {
	t.Run("todos seis", func(t *testing.T) {
		e := Evaluacion{CalidadTrabajo: ip(6), Precision: ip(6), Documentacion: ip(6)}
		e.RecalcularDerivados()
		if assert.NotNil(t, e.OverallRating) {
			assert.Equal(t, 6, *e.OverallRating)
		}
		assert.Equal(t, 10, e.BonusPercentage)
	})

	t.Run("promedio bajo", func(t *testing.T) {
		e := Evaluacion{Puntualidad: ip(2), Responsabilidad: ip(2)}
		e.RecalcularDerivados()
		if assert.NotNil(t, e.OverallRating) {
			assert.Equal(t, 2, *e.OverallRating)
		}
		assert.Equal(t, 2, e.BonusPercentage)
	})

	t.Run("sin puntajes limpia los derivados", func(t *testing.T) {
		e := Evaluacion{OverallRating: ip(5), BonusPercentage: 10}
		e.RecalcularDerivados()
		assert.Nil(t, e.OverallRating)
		assert.Equal(t, 0, e.BonusPercentage)
	})

	t.Run("redondeo al entero más cercano", func(t *testing.T) {
		// (4+5)/2 = 4.5 → 5
		e := Evaluacion{Honestidad: ip(4), Respeto: ip(5)}
		e.RecalcularDerivados()
		if assert.NotNil(t, e.OverallRating) {
			assert.Equal(t, 5, *e.OverallRating)
		}
	})
}

func TestValidarRatings(t *testing.T) {
	e := Evaluacion{CalidadTrabajo: ip(1), Comunicacion: ip(6)}
	assert.True(t, e.ValidarRatings())

	e.Iniciativa = ip(7)
	assert.False(t, e.ValidarRatings())

	e.Iniciativa = ip(0)
	assert.False(t, e.ValidarRatings())

	e.Iniciativa = nil
	assert.True(t, e.ValidarRatings())
}

func TestRatingsOrdenEstable(t *testing.T) {
	e := Evaluacion{}
	assert.Len(t, e.Ratings(), 20)
}
