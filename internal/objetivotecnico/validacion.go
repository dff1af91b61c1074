package objetivotecnico

import (
	"github.com/gestioncomercial/api-ventas/internal/utils"
)

// CampoError señala el campo rechazado para que el formulario lo marque.
type CampoError struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

func (e *CampoError) Error() string {
	return e.Campo + ": " + e.Mensaje
}

var statusValidos = map[string]bool{
	StatusPendiente:    true,
	StatusEnProgreso:   true,
	StatusCompletado:   true,
	StatusNoCompletado: true,
}

var prioridadesValidas = map[string]bool{"low": true, "medium": true, "high": true}

// Validar aplica las reglas de integridad del objetivo. Retorna el primer
// campo inválido encontrado.
func Validar(o *ObjetivoTecnico) *CampoError {
	if o.Titulo == "" {
		return &CampoError{Campo: "titulo", Mensaje: "es requerido"}
	}
	if !statusValidos[o.Status] {
		return &CampoError{Campo: "status", Mensaje: "valor desconocido"}
	}
	if !prioridadesValidas[o.Priority] {
		return &CampoError{Campo: "priority", Mensaje: "debe ser low, medium o high"}
	}
	if o.Weight < 0 || o.Weight > 100 {
		return &CampoError{Campo: "weight", Mensaje: "debe estar entre 0 y 100"}
	}
	if o.CompletionDate != nil && o.DueDate != nil && o.CompletionDate.Before(*o.DueDate) {
		return &CampoError{Campo: "completionDate", Mensaje: "no puede ser anterior a dueDate"}
	}
	if o.Evidence != "" && !utils.URLValida(o.Evidence) {
		return &CampoError{Campo: "evidence", Mensaje: "debe ser una URL válida"}
	}
	return nil
}
