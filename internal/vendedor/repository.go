package vendedor

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, v *Vendedor) error
	BuscarPorID(db *gorm.DB, tenantID, id uint) (*Vendedor, error)
	ListarTodos(db *gorm.DB, tenantID uint) ([]Vendedor, error)
	Deletar(db *gorm.DB, tenantID, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, v *Vendedor) error {
	return db.Save(v).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, tenantID, id uint) (*Vendedor, error) {
	var v Vendedor
	err := db.Where("tenant_id = ?", tenantID).First(&v, id).Error
	return &v, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, tenantID uint) ([]Vendedor, error) {
	var list []Vendedor
	err := db.Where("tenant_id = ?", tenantID).Order("nombre").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, tenantID, id uint) error {
	return db.Where("tenant_id = ?", tenantID).Delete(&Vendedor{}, id).Error
}
