package models

// RollType identifies one of the four resolution modes. The set is closed:
// the rules text also describes a contest roll, but it has no executable
// counterpart and no RollType value.
type RollType string

const (
	// RollTypeRisk is a risk roll, resolved on the highest die
	RollTypeRisk RollType = "risk"

	// RollTypeHunt is an exploration roll, resolved by counting sixes
	RollTypeHunt RollType = "hunt"

	// RollTypeCombat is a combat roll, resolved on the two highest dark dice
	RollTypeCombat RollType = "combat"

	// RollTypeHelp is a help roll, always a single light die
	RollTypeHelp RollType = "help"
)

// ParseRollType converts a wire string into a RollType.
func ParseRollType(s string) (RollType, bool) {
	switch RollType(s) {
	case RollTypeRisk, RollTypeHunt, RollTypeCombat, RollTypeHelp:
		return RollType(s), true
	}
	return "", false
}

// Roll is one resolution event. It is created exactly once and never mutated
// after it is persisted; a push layers a new Roll on top of the old one's
// dice rather than editing it.
type Roll struct {
	// ID is a millisecond timestamp taken at creation, used for ordering
	ID int64 `json:"id"`

	// Dice are the rolled dice in roll order
	Dice []Die `json:"dice"`

	// Outcome is the classification computed at creation and stored verbatim
	Outcome Outcome `json:"outcome"`

	// PlayerName is the participant who made the roll
	PlayerName string `json:"player"`

	// RollType is the resolution mode the roll was made under
	RollType RollType `json:"rollType"`

	// IsPush marks a tempt-fate escalation of a prior roll
	IsPush bool `json:"isPush,omitempty"`

	// Timestamp is a short display-formatted time of the roll
	Timestamp string `json:"timestamp"`
}
