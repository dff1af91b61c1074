package objetivotecnico

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func objetivoValido() ObjetivoTecnico {
	return ObjetivoTecnico{
		Titulo:   "Migrar monitoreo",
		Status:   StatusPendiente,
		Priority: "medium",
		Weight:   50,
	}
}

func TestValidar(t *testing.T) {
	due := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	antes := due.AddDate(0, 0, -10)
	despues := due.AddDate(0, 0, 5)

	t.Run("objetivo válido", func(t *testing.T) {
		o := objetivoValido()
		assert.Nil(t, Validar(&o))
	})

	t.Run("completado después del vencimiento es válido", func(t *testing.T) {
		o := objetivoValido()
		o.DueDate = &due
		o.CompletionDate = &despues
		assert.Nil(t, Validar(&o))
	})

	cases := []struct {
		nombre string
		mutar  func(*ObjetivoTecnico)
		campo  string
	}{
		{"sin título", func(o *ObjetivoTecnico) { o.Titulo = "" }, "titulo"},
		{"status desconocido", func(o *ObjetivoTecnico) { o.Status = "archivado" }, "status"},
		{"prioridad desconocida", func(o *ObjetivoTecnico) { o.Priority = "urgent" }, "priority"},
		{"peso negativo", func(o *ObjetivoTecnico) { o.Weight = -1 }, "weight"},
		{"peso mayor a cien", func(o *ObjetivoTecnico) { o.Weight = 101 }, "weight"},
		{"completado antes del vencimiento", func(o *ObjetivoTecnico) {
			o.DueDate = &due
			o.CompletionDate = &antes
		}, "completionDate"},
		{"evidencia no es URL", func(o *ObjetivoTecnico) { o.Evidence = "acta.pdf" }, "evidence"},
	}
	for _, c := range cases {
		t.Run(c.nombre, func(t *testing.T) {
			o := objetivoValido()
			c.mutar(&o)
			err := Validar(&o)
			if assert.NotNil(t, err) {
				assert.Equal(t, c.campo, err.Campo)
			}
		})
	}
}

func TestCampoErrorImplementaError(t *testing.T) {
	err := &CampoError{Campo: "weight", Mensaje: "debe estar entre 0 y 100"}
	assert.Equal(t, "weight: debe estar entre 0 y 100", err.Error())
}
