package objetivocuantitativo

import (
	"gorm.io/gorm"
)

type Repository interface {
	Crear(db *gorm.DB, o *ObjetivoCuantitativo) error
	BuscarPorID(db *gorm.DB, tenantID, id uint) (*ObjetivoCuantitativo, error)
	ListarTodos(db *gorm.DB, tenantID uint) ([]ObjetivoCuantitativo, error)
	Contar(db *gorm.DB, tenantID uint) (int64, error)
	Atualizar(db *gorm.DB, o *ObjetivoCuantitativo) error
	Deletar(db *gorm.DB, tenantID, id uint) error

	BuscarAsignacion(db *gorm.DB, id uint) (*AsignacionCuantitativa, error)
	ListarAsignacionesPorVendedor(db *gorm.DB, vendedorID uint) ([]AsignacionCuantitativa, error)
	SalvarAsignacion(db *gorm.DB, a *AsignacionCuantitativa) error

	SalvarPlantilla(db *gorm.DB, p *PlantillaCuantitativa) error
	BuscarPlantilla(db *gorm.DB, tenantID, id uint) (*PlantillaCuantitativa, error)
	ListarPlantillas(db *gorm.DB, tenantID uint) ([]PlantillaCuantitativa, error)
	DeletarPlantilla(db *gorm.DB, tenantID, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Crear(db *gorm.DB, o *ObjetivoCuantitativo) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, tenantID, id uint) (*ObjetivoCuantitativo, error) {
	var o ObjetivoCuantitativo
	err := db.Where("tenant_id = ?", tenantID).Preload("Asignaciones").First(&o, id).Error
	return &o, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, tenantID uint) ([]ObjetivoCuantitativo, error) {
	var list []ObjetivoCuantitativo
	err := db.Where("tenant_id = ?", tenantID).Preload("Asignaciones").Order("fecha_inicio DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Contar(db *gorm.DB, tenantID uint) (int64, error) {
	var n int64
	err := db.Model(&ObjetivoCuantitativo{}).Where("tenant_id = ?", tenantID).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, o *ObjetivoCuantitativo) error {
	return db.Save(o).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, tenantID, id uint) error {
	if err := db.Where("objetivo_id = ?", id).Delete(&AsignacionCuantitativa{}).Error; err != nil {
		return err
	}
	return db.Where("tenant_id = ?", tenantID).Delete(&ObjetivoCuantitativo{}, id).Error
}

func (r *repositoryImpl) BuscarAsignacion(db *gorm.DB, id uint) (*AsignacionCuantitativa, error) {
	var a AsignacionCuantitativa
	err := db.First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) ListarAsignacionesPorVendedor(db *gorm.DB, vendedorID uint) ([]AsignacionCuantitativa, error) {
	var list []AsignacionCuantitativa
	err := db.Where("vendedor_id = ?", vendedorID).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) SalvarAsignacion(db *gorm.DB, a *AsignacionCuantitativa) error {
	return db.Save(a).Error
}

func (r *repositoryImpl) SalvarPlantilla(db *gorm.DB, p *PlantillaCuantitativa) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) BuscarPlantilla(db *gorm.DB, tenantID, id uint) (*PlantillaCuantitativa, error) {
	var p PlantillaCuantitativa
	err := db.Where("tenant_id = ?", tenantID).First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) ListarPlantillas(db *gorm.DB, tenantID uint) ([]PlantillaCuantitativa, error) {
	var list []PlantillaCuantitativa
	err := db.Where("tenant_id = ?", tenantID).Order("nombre").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) DeletarPlantilla(db *gorm.DB, tenantID, id uint) error {
	return db.Where("tenant_id = ?", tenantID).Delete(&PlantillaCuantitativa{}, id).Error
}
