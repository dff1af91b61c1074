package servicio

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, s *Servicio) error
	BuscarPorID(db *gorm.DB, tenantID, id uint) (*Servicio, error)
	ListarTodos(db *gorm.DB, tenantID uint) ([]Servicio, error)
	Deletar(db *gorm.DB, tenantID, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, s *Servicio) error {
	return db.Save(s).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, tenantID, id uint) (*Servicio, error) {
	var s Servicio
	err := db.Where("tenant_id = ?", tenantID).First(&s, id).Error
	return &s, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, tenantID uint) ([]Servicio, error) {
	var list []Servicio
	err := db.Where("tenant_id = ?", tenantID).Order("categoria, nombre").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, tenantID, id uint) error {
	return db.Where("tenant_id = ?", tenantID).Delete(&Servicio{}, id).Error
}
