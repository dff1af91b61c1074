package objetivotecnico

import (
	"gorm.io/gorm"
)

type Repository interface {
	Crear(db *gorm.DB, o *ObjetivoTecnico) error
	BuscarPorID(db *gorm.DB, id uint) (*ObjetivoTecnico, error)
	ListarPorTecnico(db *gorm.DB, tecnicoID uint) ([]ObjetivoTecnico, error)
	Atualizar(db *gorm.DB, o *ObjetivoTecnico) error
	Deletar(db *gorm.DB, id uint) error
	DeletarPorTecnico(db *gorm.DB, tecnicoID uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Crear(db *gorm.DB, o *ObjetivoTecnico) error {
	return db.Create(o).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*ObjetivoTecnico, error) {
	var o ObjetivoTecnico
	err := db.First(&o, id).Error
	return &o, err
}

func (r *repositoryImpl) ListarPorTecnico(db *gorm.DB, tecnicoID uint) ([]ObjetivoTecnico, error) {
	var list []ObjetivoTecnico
	err := db.Where("tecnico_id = ?", tecnicoID).Order("due_date").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, o *ObjetivoTecnico) error {
	return db.Save(o).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&ObjetivoTecnico{}, id).Error
}

func (r *repositoryImpl) DeletarPorTecnico(db *gorm.DB, tecnicoID uint) error {
	return db.Where("tecnico_id = ?", tecnicoID).Delete(&ObjetivoTecnico{}).Error
}
