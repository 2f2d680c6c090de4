package models

// SoundCategory is the feedback sound a client should play for an outcome.
type SoundCategory string

const (
	// SoundClick is neutral feedback
	SoundClick SoundCategory = "click"

	// SoundSuccess accompanies a favorable outcome
	SoundSuccess SoundCategory = "success"

	// SoundFail accompanies an unfavorable or mixed outcome
	SoundFail SoundCategory = "fail"

	// SoundRuin warns that ruin is on the table
	SoundRuin SoundCategory = "ruin"
)

// Severity is a styling category for an outcome. Clients map these to their
// own presentation; the values themselves are stable wire tags.
type Severity string

const (
	// SeverityNone is the sentinel for a no-dice outcome
	SeverityNone Severity = "none"

	// SeverityGold marks a total success
	SeverityGold Severity = "gold"

	// SeverityPale marks a success with complication
	SeverityPale Severity = "pale"

	// SeverityMuted marks a failure or weak result
	SeverityMuted Severity = "muted"

	// SeverityCritical marks a high-damage combat result
	SeverityCritical Severity = "critical"

	// SeverityRuin marks a result that increments ruin
	SeverityRuin Severity = "ruin"
)

// Outcome is the classifier's verdict over one set of rolled dice. It is
// derived purely from the dice and roll type, stored inside the Roll it
// belongs to, and never recomputed after persistence.
type Outcome struct {
	// Label is the narrative text shown to players. It is game text in the
	// source game's language and should be treated as opaque by callers.
	Label string `json:"label"`

	// Severity is the styling category
	Severity Severity `json:"severity"`

	// IsDarkHighest is true when a dark die is (or ties for) the single
	// highest value rolled
	IsDarkHighest bool `json:"isDarkHighest"`

	// Icon is an opaque symbol shown next to the label
	Icon string `json:"icon"`

	// Sound is the feedback category clients should play
	Sound SoundCategory `json:"soundCategory"`

	// RollType copies the originating roll type
	RollType RollType `json:"rollType"`

	// Tokens is the number of exploration tokens gained (hunt only)
	Tokens int `json:"tokens,omitempty"`

	// Damage is the total damage dealt (combat only)
	Damage int `json:"damage,omitempty"`

	// RuinHits is the number of dark dice matching a weak point (combat only)
	RuinHits int `json:"ruinHits,omitempty"`
}
