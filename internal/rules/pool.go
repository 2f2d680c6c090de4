package rules

import (
	"fmt"

	"github.com/goldhollow/trophytable/internal/models"
)

// DieRequest asks the roller for one six-sided die of a given kind. The
// visual presentation of the roll is the roller's business; this numeric
// contract is all the rules need back.
type DieRequest struct {
	// Sides is the face count, always 6
	Sides int

	// Kind tags the requested die light or dark
	Kind models.DieKind
}

// AssemblePool builds the die requests for a roll of the given type.
//
//   - Help always rolls exactly one light die; the configured counts are
//     ignored.
//   - Hunt draws from the light pool only; dark dice are never included.
//   - Risk and Combat include both pools per their counts.
//
// An empty result is valid and means the roll is a no-op: callers must not
// invoke the roller or create a record for it.
func AssemblePool(rollType models.RollType, lightCount, darkCount int) []DieRequest {
	switch rollType {
	case models.RollTypeHelp:
		return []DieRequest{{Sides: 6, Kind: models.DieKindLight}}
	case models.RollTypeHunt:
		return buildRequests(lightCount, 0)
	case models.RollTypeRisk, models.RollTypeCombat:
		return buildRequests(lightCount, darkCount)
	default:
		panic(fmt.Sprintf("rules: unknown roll type %q", rollType))
	}
}

func buildRequests(lightCount, darkCount int) []DieRequest {
	requests := make([]DieRequest, 0, lightCount+darkCount)
	for i := 0; i < lightCount; i++ {
		requests = append(requests, DieRequest{Sides: 6, Kind: models.DieKindLight})
	}
	for i := 0; i < darkCount; i++ {
		requests = append(requests, DieRequest{Sides: 6, Kind: models.DieKindDark})
	}
	return requests
}
