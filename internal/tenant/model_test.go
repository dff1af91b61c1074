package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimitsFor(t *testing.T) {
	assert.Equal(t, Limits{MaxUsers: 3, MaxClients: 25, MaxObjectives: 10}, LimitsFor(PlanFree))
	assert.Equal(t, Limits{MaxUsers: 10, MaxClients: 250, MaxObjectives: 100}, LimitsFor(PlanBasic))
	assert.Equal(t, Limits{MaxUsers: 100, MaxClients: 10000, MaxObjectives: 5000}, LimitsFor(PlanPremium))

	// un plan desconocido cae en los límites de free
	assert.Equal(t, LimitsFor(PlanFree), LimitsFor(Plan("enterprise")))
}

func TestHasFeature(t *testing.T) {
	free := Tenant{Plan: PlanFree}
	assert.True(t, free.HasFeature(FeatureEvaluaciones))
	assert.False(t, free.HasFeature(FeatureObjetivosGlobal))
	assert.False(t, free.HasFeature(FeatureBackups))

	basic := Tenant{Plan: PlanBasic}
	assert.True(t, basic.HasFeature(FeatureObjetivosGlobal))
	assert.False(t, basic.HasFeature(FeatureBackups))

	premium := Tenant{Plan: PlanPremium}
	assert.True(t, premium.HasFeature(FeatureBackups))
}
