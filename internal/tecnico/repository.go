package tecnico

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, t *Tecnico) error
	BuscarPorID(db *gorm.DB, tenantID, id uint) (*Tecnico, error)
	ListarTodos(db *gorm.DB, tenantID uint) ([]Tecnico, error)
	Deletar(db *gorm.DB, tenantID, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, t *Tecnico) error {
	return db.Save(t).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, tenantID, id uint) (*Tecnico, error) {
	var t Tecnico
	err := db.Where("tenant_id = ?", tenantID).
		Preload("Evaluaciones").
		Preload("Objetivos").
		First(&t, id).Error
	return &t, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, tenantID uint) ([]Tecnico, error) {
	var list []Tecnico
	err := db.Where("tenant_id = ?", tenantID).Order("nombre").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, tenantID, id uint) error {
	return db.Where("tenant_id = ?", tenantID).Delete(&Tecnico{}, id).Error
}
