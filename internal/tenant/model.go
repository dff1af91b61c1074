package tenant

import (
	"time"

	"gorm.io/gorm"
)

type Plan string

const (
	PlanFree    Plan = "free"
	PlanBasic   Plan = "basic"
	PlanPremium Plan = "premium"
)

// Tenant representa una organización; el plan define límites y features.
type Tenant struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Nombre    string         `gorm:"size:100;not null;uniqueIndex" json:"nombre"`
	Plan      Plan           `gorm:"size:20;not null;default:'free'" json:"plan"`
	Estado    string         `gorm:"size:20;not null;default:'active'" json:"estado"` // "active" | "suspended"
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Usuarios []TenantUser `gorm:"foreignKey:TenantID" json:"usuarios,omitempty"`
}

// TenantUser vincula un subject del IdP con un tenant. PasswordHash solo se
// usa en el login local de respaldo.
type TenantUser struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	TenantID     uint           `gorm:"not null;index" json:"tenantId"`
	Subject      string         `gorm:"size:255;uniqueIndex" json:"subject"`
	Nombre       string         `gorm:"size:100" json:"nombre"`
	Email        string         `gorm:"size:255;uniqueIndex" json:"email"`
	IsAdmin      bool           `gorm:"not null;default:false" json:"isAdmin"`
	Estado       string         `gorm:"size:20;not null;default:'active'" json:"estado"`
	PasswordHash string         `json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Limits son los topes numéricos de un plan.
type Limits struct {
	MaxUsers      int `json:"maxUsers"`
	MaxClients    int `json:"maxClients"`
	MaxObjectives int `json:"maxObjectives"`
}

// Feature es una capacidad habilitable por plan.
type Feature string

const (
	FeatureBackups          Feature = "backups"
	FeatureObjetivosGlobal  Feature = "objetivos-globales"
	FeatureEvaluaciones     Feature = "evaluaciones"
)

var planLimits = map[Plan]Limits{
	PlanFree:    {MaxUsers: 3, MaxClients: 25, MaxObjectives: 10},
	PlanBasic:   {MaxUsers: 10, MaxClients: 250, MaxObjectives: 100},
	PlanPremium: {MaxUsers: 100, MaxClients: 10000, MaxObjectives: 5000},
}

var planFeatures = map[Plan][]Feature{
	PlanFree:    {FeatureEvaluaciones},
	PlanBasic:   {FeatureEvaluaciones, FeatureObjetivosGlobal},
	PlanPremium: {FeatureEvaluaciones, FeatureObjetivosGlobal, FeatureBackups},
}

// LimitsFor retorna los límites del plan; planes desconocidos caen en free.
func LimitsFor(p Plan) Limits {
	if l, ok := planLimits[p]; ok {
		return l
	}
	return planLimits[PlanFree]
}

// HasFeature indica si el plan habilita la capacidad.
func (t *Tenant) HasFeature(f Feature) bool {
	for _, have := range planFeatures[t.Plan] {
		if have == f {
			return true
		}
	}
	return false
}
