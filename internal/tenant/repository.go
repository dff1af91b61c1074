package tenant

import (
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorID(db *gorm.DB, id uint) (*Tenant, error)
	BuscarUsuarioPorEmail(db *gorm.DB, email string) (*TenantUser, error)
	BuscarUsuarioPorSubject(db *gorm.DB, subject string) (*TenantUser, error)
	ContarUsuarios(db *gorm.DB, tenantID uint) (int64, error)
	Salvar(db *gorm.DB, t *Tenant) error
	SalvarUsuario(db *gorm.DB, u *TenantUser) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Tenant, error) {
	var t Tenant
	err := db.First(&t, id).Error
	return &t, err
}

func (r *repositoryImpl) BuscarUsuarioPorEmail(db *gorm.DB, email string) (*TenantUser, error) {
	var u TenantUser
	err := db.Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *repositoryImpl) BuscarUsuarioPorSubject(db *gorm.DB, subject string) (*TenantUser, error) {
	var u TenantUser
	err := db.Where("subject = ?", subject).First(&u).Error
	return &u, err
}

func (r *repositoryImpl) ContarUsuarios(db *gorm.DB, tenantID uint) (int64, error) {
	var n int64
	err := db.Model(&TenantUser{}).Where("tenant_id = ?", tenantID).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) Salvar(db *gorm.DB, t *Tenant) error {
	return db.Save(t).Error
}

func (r *repositoryImpl) SalvarUsuario(db *gorm.DB, u *TenantUser) error {
	return db.Save(u).Error
}
