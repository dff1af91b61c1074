package clienteservicio

import (
	"fmt"

	"gorm.io/gorm"
)

// Report resume lo que encontró y reparó el health check.
type Report struct {
	Issues []string `json:"issues"`
	Fixed  []string `json:"fixed"`
}

// Reconciler detecta y repara filas de asociación estructuralmente inválidas:
// claves foráneas colgantes y pares (cliente, servicio) duplicados.
type Reconciler struct {
	DB *gorm.DB
}

func NewReconciler(db *gorm.DB) *Reconciler {
	return &Reconciler{DB: db}
}

// Run ejecuta una pasada completa de reparación. Nunca es destructivo más
// allá de las filas inválidas: en duplicados conserva la más antigua.
func (rc *Reconciler) Run() (*Report, error) {
	report := &Report{Issues: []string{}, Fixed: []string{}}

	if err := rc.repararHuerfanos(report); err != nil {
		return report, err
	}
	if err := rc.repararDuplicados(report); err != nil {
		return report, err
	}
	return report, nil
}

func (rc *Reconciler) repararHuerfanos(report *Report) error {
	type fila struct {
		ID         uint
		ClienteID  uint
		ServicioID uint
	}

	var sinCliente []fila
	err := rc.DB.Model(&ClienteServicio{}).
		Where("cliente_id NOT IN (?)", rc.DB.Table("clientes").Select("id").Where("deleted_at IS NULL")).
		Find(&sinCliente).Error
	if err != nil {
		return err
	}
	for _, f := range sinCliente {
		report.Issues = append(report.Issues, fmt.Sprintf("assoc id=%d references missing client %d", f.ID, f.ClienteID))
		if err := rc.DB.Delete(&ClienteServicio{}, f.ID).Error; err != nil {
			return err
		}
		report.Fixed = append(report.Fixed, fmt.Sprintf("removed orphan assoc id=%d", f.ID))
	}

	var sinServicio []fila
	err = rc.DB.Model(&ClienteServicio{}).
		Where("servicio_id NOT IN (?)", rc.DB.Table("servicios").Select("id").Where("deleted_at IS NULL")).
		Find(&sinServicio).Error
	if err != nil {
		return err
	}
	for _, f := range sinServicio {
		report.Issues = append(report.Issues, fmt.Sprintf("assoc id=%d references missing service %d", f.ID, f.ServicioID))
		if err := rc.DB.Delete(&ClienteServicio{}, f.ID).Error; err != nil {
			return err
		}
		report.Fixed = append(report.Fixed, fmt.Sprintf("removed orphan assoc id=%d", f.ID))
	}

	return nil
}

func (rc *Reconciler) repararDuplicados(report *Report) error {
	type par struct {
		ClienteID  uint
		ServicioID uint
	}
	var pares []par
	err := rc.DB.Model(&ClienteServicio{}).
		Select("cliente_id, servicio_id").
		Group("cliente_id, servicio_id").
		Having("COUNT(*) > 1").
		Find(&pares).Error
	if err != nil {
		return err
	}

	for _, p := range pares {
		var filas []ClienteServicio
		err := rc.DB.Where("cliente_id = ? AND servicio_id = ?", p.ClienteID, p.ServicioID).
			Order("created_at, id").
			Find(&filas).Error
		if err != nil {
			return err
		}
		report.Issues = append(report.Issues,
			fmt.Sprintf("duplicate assoc for client=%d service=%d (%d rows)", p.ClienteID, p.ServicioID, len(filas)))
		// se conserva la fila más antigua
		for _, extra := range filas[1:] {
			if err := rc.DB.Delete(&ClienteServicio{}, extra.ID).Error; err != nil {
				return err
			}
			report.Fixed = append(report.Fixed, fmt.Sprintf("removed duplicate assoc id=%d", extra.ID))
		}
	}
	return nil
}
