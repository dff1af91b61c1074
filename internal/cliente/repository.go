package cliente

import (
	"strings"

	"gorm.io/gorm"
)

// Filtros de listado; los punteros distinguen "sin filtro" de cero.
type Filtro struct {
	Nombre          string
	VendedorID      *uint
	TecnicoID       *uint
	ContratoSoporte *bool
	Page            int
	Limit           int
	SortBy          string
	SortDir         string
}

// columnas ordenables permitidas; cualquier otra cae en nombre
var sortables = map[string]string{
	"nombre":    "nombre",
	"email":     "email",
	"createdAt": "created_at",
}

type Repository interface {
	Salvar(db *gorm.DB, c *Cliente) error
	BuscarPorID(db *gorm.DB, tenantID, id uint) (*Cliente, error)
	Listar(db *gorm.DB, tenantID uint, f Filtro) ([]Cliente, int64, error)
	ListarParaMatriz(db *gorm.DB, tenantID uint, vendedorID, tecnicoID *uint) ([]Cliente, error)
	Contar(db *gorm.DB, tenantID uint) (int64, error)
	ContarPorVendedor(db *gorm.DB, vendedorID uint) (int64, error)
	ContarPorTecnico(db *gorm.DB, tecnicoID uint) (int64, error)
	DesasignarVendedor(db *gorm.DB, vendedorID uint) error
	DesasignarTecnico(db *gorm.DB, tecnicoID uint) error
	Deletar(db *gorm.DB, tenantID, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Cliente) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, tenantID, id uint) (*Cliente, error) {
	var c Cliente
	err := db.Where("tenant_id = ?", tenantID).Preload("Servicios").First(&c, id).Error
	return &c, err
}

func aplicarFiltro(db *gorm.DB, tenantID uint, f Filtro) *gorm.DB {
	q := db.Model(&Cliente{}).Where("tenant_id = ?", tenantID)
	if f.Nombre != "" {
		q = q.Where("nombre ILIKE ?", "%"+f.Nombre+"%")
	}
	if f.VendedorID != nil {
		q = q.Where("vendedor_id = ?", *f.VendedorID)
	}
	if f.TecnicoID != nil {
		q = q.Where("tecnico_id = ?", *f.TecnicoID)
	}
	if f.ContratoSoporte != nil {
		q = q.Where("contrato_soporte = ?", *f.ContratoSoporte)
	}
	return q
}

func (r *repositoryImpl) Listar(db *gorm.DB, tenantID uint, f Filtro) ([]Cliente, int64, error) {
	var total int64
	if err := aplicarFiltro(db, tenantID, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	col, ok := sortables[f.SortBy]
	if !ok {
		col = "nombre"
	}
	dir := "ASC"
	if strings.EqualFold(f.SortDir, "desc") {
		dir = "DESC"
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}

	var list []Cliente
	err := aplicarFiltro(db, tenantID, f).
		Preload("Servicios").
		Order(col + " " + dir).
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&list).Error
	return list, total, err
}

func (r *repositoryImpl) ListarParaMatriz(db *gorm.DB, tenantID uint, vendedorID, tecnicoID *uint) ([]Cliente, error) {
	q := db.Where("tenant_id = ?", tenantID)
	if vendedorID != nil {
		q = q.Where("vendedor_id = ?", *vendedorID)
	}
	if tecnicoID != nil {
		q = q.Where("tecnico_id = ?", *tecnicoID)
	}
	var list []Cliente
	err := q.Preload("Servicios").Order("nombre").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Contar(db *gorm.DB, tenantID uint) (int64, error) {
	var n int64
	err := db.Model(&Cliente{}).Where("tenant_id = ?", tenantID).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) ContarPorVendedor(db *gorm.DB, vendedorID uint) (int64, error) {
	var n int64
	err := db.Model(&Cliente{}).Where("vendedor_id = ?", vendedorID).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) ContarPorTecnico(db *gorm.DB, tecnicoID uint) (int64, error) {
	var n int64
	err := db.Model(&Cliente{}).Where("tecnico_id = ?", tecnicoID).Count(&n).Error
	return n, err
}

func (r *repositoryImpl) DesasignarVendedor(db *gorm.DB, vendedorID uint) error {
	return db.Model(&Cliente{}).Where("vendedor_id = ?", vendedorID).Update("vendedor_id", nil).Error
}

func (r *repositoryImpl) DesasignarTecnico(db *gorm.DB, tecnicoID uint) error {
	return db.Model(&Cliente{}).Where("tecnico_id = ?", tecnicoID).Update("tecnico_id", nil).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, tenantID, id uint) error {
	return db.Where("tenant_id = ?", tenantID).Delete(&Cliente{}, id).Error
}
