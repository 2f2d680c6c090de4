package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldhollow/trophytable/internal/models"
)

func countKinds(requests []DieRequest) (lights, darks int) {
	for _, r := range requests {
		switch r.Kind {
		case models.DieKindLight:
			lights++
		case models.DieKindDark:
			darks++
		}
	}
	return lights, darks
}

func TestAssemblePoolHelpIsAlwaysOneLightDie(t *testing.T) {
	for _, counts := range [][2]int{{0, 0}, {3, 5}, {10, 10}} {
		requests := AssemblePool(models.RollTypeHelp, counts[0], counts[1])

		require.Len(t, requests, 1)
		assert.Equal(t, models.DieKindLight, requests[0].Kind)
		assert.Equal(t, 6, requests[0].Sides)
	}
}

func TestAssemblePoolHuntSuppressesDarkDice(t *testing.T) {
	requests := AssemblePool(models.RollTypeHunt, 3, 5)

	lights, darks := countKinds(requests)
	assert.Equal(t, 3, lights)
	assert.Zero(t, darks)
}

func TestAssemblePoolRiskIncludesBothPools(t *testing.T) {
	requests := AssemblePool(models.RollTypeRisk, 2, 1)

	lights, darks := countKinds(requests)
	assert.Equal(t, 2, lights)
	assert.Equal(t, 1, darks)
}

func TestAssemblePoolRiskPoolsAreIndependentlyOptional(t *testing.T) {
	lights, darks := countKinds(AssemblePool(models.RollTypeRisk, 0, 2))
	assert.Zero(t, lights)
	assert.Equal(t, 2, darks)

	lights, darks = countKinds(AssemblePool(models.RollTypeRisk, 2, 0))
	assert.Equal(t, 2, lights)
	assert.Zero(t, darks)
}

func TestAssemblePoolCombatIncludesBothPools(t *testing.T) {
	requests := AssemblePool(models.RollTypeCombat, 1, 4)

	lights, darks := countKinds(requests)
	assert.Equal(t, 1, lights)
	assert.Equal(t, 4, darks)
}

func TestAssemblePoolEmpty(t *testing.T) {
	assert.Empty(t, AssemblePool(models.RollTypeRisk, 0, 0))
	assert.Empty(t, AssemblePool(models.RollTypeHunt, 0, 8))
}

func TestAssemblePoolAllRequestsAreSixSided(t *testing.T) {
	for _, r := range AssemblePool(models.RollTypeCombat, 2, 3) {
		assert.Equal(t, 6, r.Sides)
	}
}

func TestAssemblePoolUnknownRollTypePanics(t *testing.T) {
	require.Panics(t, func() {
		AssemblePool(models.RollType("contest"), 1, 1)
	})
}
