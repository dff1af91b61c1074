package objetivocualitativo

import (
	"gorm.io/gorm"
)

type Repository interface {
	Crear(db *gorm.DB, o *ObjetivoCualitativo) error
	BuscarPorID(db *gorm.DB, tenantID, id uint) (*ObjetivoCualitativo, error)
	ListarTodos(db *gorm.DB, tenantID uint) ([]ObjetivoCualitativo, error)
	Contar(db *gorm.DB, tenantID uint) (int64, error)
	Atualizar(db *gorm.DB, o *ObjetivoCualitativo) error
	Deletar(db *gorm.DB, tenantID, id uint) error

	BuscarAsignacion(db *gorm.DB, id uint) (*AsignacionCualitativa, error)
	ListarAsignacionesPorVendedor(db *gorm.DB, vendedorID uint) ([]AsignacionCualitativa, error)
	SalvarAsignacion(db *gorm.DB, a *AsignacionCualitativa) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Crear(db *gorm.DB, o *ObjetivoCualitativo) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, tenantID, id uint) (*ObjetivoCualitativo, error) {
	var o ObjetivoCualitativo
	err := db.Where("tenant_id = ?", tenantID).Preload("Asignaciones").First(&o, id).Error
	return &o, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, tenantID uint) ([]ObjetivoCualitativo, error) {
	var list []ObjetivoCualitativo
	err := db.Where("tenant_id = ?", tenantID).Preload("Asignaciones").Order("fecha_inicio DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Contar(db *gorm.DB, tenantID uint) (int64, error) {
	var n int64
	err := db.Model(&ObjetivoCualitativo{}).Where("tenant_id = ?", tenantID).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, o *ObjetivoCualitativo) error {
	return db.Save(o).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, tenantID, id uint) error {
	if err := db.Where("objetivo_id = ?", id).Delete(&AsignacionCualitativa{}).Error; err != nil {
		return err
	}
	return db.Where("tenant_id = ?", tenantID).Delete(&ObjetivoCualitativo{}, id).Error
}

func (r *repositoryImpl) BuscarAsignacion(db *gorm.DB, id uint) (*AsignacionCualitativa, error) {
	var a AsignacionCualitativa
	err := db.First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) ListarAsignacionesPorVendedor(db *gorm.DB, vendedorID uint) ([]AsignacionCualitativa, error) {
	var list []AsignacionCualitativa
	err := db.Where("vendedor_id = ?", vendedorID).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) SalvarAsignacion(db *gorm.DB, a *AsignacionCualitativa) error {
	return db.Save(a).Error
}
