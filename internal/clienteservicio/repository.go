package clienteservicio

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Crear(db *gorm.DB, a *ClienteServicio) error
	BuscarPorID(db *gorm.DB, id uint) (*ClienteServicio, error)
	BuscarPorPar(db *gorm.DB, clienteID, servicioID uint) (*ClienteServicio, error)
	ListarPorCliente(db *gorm.DB, clienteID uint) ([]ClienteServicio, error)
	ContarPorCliente(db *gorm.DB, clienteID uint) (int64, error)
	Atualizar(db *gorm.DB, a *ClienteServicio) error
	DeletarPorPar(db *gorm.DB, clienteID, servicioID uint) error
	DeletarPorCliente(db *gorm.DB, clienteID uint) error
	DeletarPorServicio(db *gorm.DB, servicioID uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Crear(db *gorm.DB, a *ClienteServicio) error {
	if a.FechaAsignacion.IsZero() {
		a.FechaAsignacion = time.Now()
	}
	return db.Create(a).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*ClienteServicio, error) {
	var a ClienteServicio
	err := db.First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) BuscarPorPar(db *gorm.DB, clienteID, servicioID uint) (*ClienteServicio, error) {
	var a ClienteServicio
	err := db.Where("cliente_id = ? AND servicio_id = ?", clienteID, servicioID).First(&a).Error
	return &a, err
}

func (r *repositoryImpl) ListarPorCliente(db *gorm.DB, clienteID uint) ([]ClienteServicio, error) {
	var list []ClienteServicio
	err := db.Where("cliente_id = ?", clienteID).Order("fecha_asignacion").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ContarPorCliente(db *gorm.DB, clienteID uint) (int64, error) {
	var n int64
	err := db.Model(&ClienteServicio{}).Where("cliente_id = ?", clienteID).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, a *ClienteServicio) error {
	return db.Save(a).Error
}

func (r *repositoryImpl) DeletarPorPar(db *gorm.DB, clienteID, servicioID uint) error {
	return db.Where("cliente_id = ? AND servicio_id = ?", clienteID, servicioID).Delete(&ClienteServicio{}).Error
}

func (r *repositoryImpl) DeletarPorCliente(db *gorm.DB, clienteID uint) error {
	return db.Where("cliente_id = ?", clienteID).Delete(&ClienteServicio{}).Error
}

func (r *repositoryImpl) DeletarPorServicio(db *gorm.DB, servicioID uint) error {
	return db.Where("servicio_id = ?", servicioID).Delete(&ClienteServicio{}).Error
}
