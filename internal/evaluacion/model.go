package evaluacion

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusDraft = "draft"
	StatusFinal = "final"

	SemesterH1 = "H1"
	SemesterH2 = "H2"
)

// ObjetivoSnapshot es la copia embebida de un objetivo al momento de evaluar.
type ObjetivoSnapshot struct {
	Titulo string `json:"titulo"`
	Status string `json:"status"`
}

// Evaluacion es la evaluación semestral de un técnico. Única por
// (técnico, año, semestre); con status final no admite más cambios.
// OverallRating y BonusPercentage son derivados, nunca editables.
type Evaluacion struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	TecnicoID uint           `gorm:"not null;index:idx_eval_periodo,unique" json:"technicianId"`
	Year      int            `gorm:"not null;index:idx_eval_periodo,unique" json:"year"`
	Semester  string         `gorm:"size:2;not null;index:idx_eval_periodo,unique" json:"semester"`
	Status    string         `gorm:"size:10;not null;default:'draft'" json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	// Calidad
	CalidadTrabajo         *int `json:"calidadTrabajo"`
	Precision              *int `json:"precision"`
	Documentacion          *int `json:"documentacion"`
	CumplimientoEstandares *int `json:"cumplimientoEstandares"`
	// Conocimiento
	ConocimientoTecnico *int `json:"conocimientoTecnico"`
	Actualizacion       *int `json:"actualizacion"`
	ResolucionProblemas *int `json:"resolucionProblemas"`
	DominioHerramientas *int `json:"dominioHerramientas"`
	// Compromiso
	Puntualidad        *int `json:"puntualidad"`
	Responsabilidad    *int `json:"responsabilidad"`
	Disponibilidad     *int `json:"disponibilidad"`
	CumplimientoPlazos *int `json:"cumplimientoPlazos"`
	// Actitud
	TrabajoEquipo *int `json:"trabajoEquipo"`
	Comunicacion  *int `json:"comunicacion"`
	Iniciativa    *int `json:"iniciativa"`
	Adaptabilidad *int `json:"adaptabilidad"`
	// Valores
	Honestidad        *int `json:"honestidad"`
	Respeto           *int `json:"respeto"`
	Colaboracion      *int `json:"colaboracion"`
	CompromisoEmpresa *int `json:"compromisoEmpresa"`

	OverallRating   *int   `json:"overallRating"`
	BonusPercentage int    `gorm:"not null;default:0" json:"bonusPercentage"`
	Comments        string `gorm:"type:text" json:"comments"`

	PreviousObjectives []ObjetivoSnapshot `gorm:"type:jsonb;serializer:json" json:"previousObjectives"`
	NextObjectives     []ObjetivoSnapshot `gorm:"type:jsonb;serializer:json" json:"nextObjectives"`
}

// Ratings junta los veinte puntajes en orden estable.
func (e *Evaluacion) Ratings() []*int {
	return []*int{
		e.CalidadTrabajo, e.Precision, e.Documentacion, e.CumplimientoEstandares,
		e.ConocimientoTecnico, e.Actualizacion, e.ResolucionProblemas, e.DominioHerramientas,
		e.Puntualidad, e.Responsabilidad, e.Disponibilidad, e.CumplimientoPlazos,
		e.TrabajoEquipo, e.Comunicacion, e.Iniciativa, e.Adaptabilidad,
		e.Honestidad, e.Respeto, e.Colaboracion, e.CompromisoEmpresa,
	}
}

// EsFinal indica si la evaluación ya no admite cambios.
func (e *Evaluacion) EsFinal() bool {
	return e.Status == StatusFinal
}
