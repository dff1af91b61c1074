package evaluacion

import (
	"gorm.io/gorm"
)

type Repository interface {
	Crear(db *gorm.DB, e *Evaluacion) error
	BuscarPorID(db *gorm.DB, id uint) (*Evaluacion, error)
	BuscarPorPeriodo(db *gorm.DB, tecnicoID uint, year int, semester string) (*Evaluacion, error)
	ListarPorTecnico(db *gorm.DB, tecnicoID uint) ([]Evaluacion, error)
	Atualizar(db *gorm.DB, e *Evaluacion) error
	Deletar(db *gorm.DB, id uint) error
	DeletarPorTecnico(db *gorm.DB, tecnicoID uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Crear(db *gorm.DB, e *Evaluacion) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Evaluacion, error) {
	var e Evaluacion
	err := db.First(&e, id).Error
	return &e, err
}

func (r *repositoryImpl) BuscarPorPeriodo(db *gorm.DB, tecnicoID uint, year int, semester string) (*Evaluacion, error) {
	var e Evaluacion
	err := db.Where("tecnico_id = ? AND year = ? AND semester = ?", tecnicoID, year, semester).First(&e).Error
	return &e, err
}

func (r *repositoryImpl) ListarPorTecnico(db *gorm.DB, tecnicoID uint) ([]Evaluacion, error) {
	var list []Evaluacion
	err := db.Where("tecnico_id = ?", tecnicoID).Order("year DESC, semester DESC").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, e *Evaluacion) error {
	return db.Save(e).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Evaluacion{}, id).Error
}

func (r *repositoryImpl) DeletarPorTecnico(db *gorm.DB, tecnicoID uint) error {
	return db.Where("tecnico_id = ?", tecnicoID).Delete(&Evaluacion{}).Error
}
