package models

// RuinMin and RuinMax bound a character's ruin meter.
const (
	RuinMin = 1
	RuinMax = 6
)

// Character is a per-player record sheet, keyed by (session, player name).
// It is created implicitly on the first field write and is only ever removed
// by purging the whole session.
type Character struct {
	// Name is the character name, which doubles as the player identity
	Name string `json:"name"`

	// RealPlayerName is the name of the human behind the character
	RealPlayerName string `json:"realPlayerName,omitempty"`

	// Ruin is the current ruin meter, RuinMin-RuinMax
	Ruin int `json:"ruin"`

	// StartingRuin is the ruin the character began the incursion with
	StartingRuin int `json:"startingRuin"`

	// Gold is carried gold
	Gold int `json:"gold"`

	// Debt is outstanding debt
	Debt int `json:"debt"`

	// Tokens is the exploration token count
	Tokens int `json:"tokens"`

	// GoldReserve is gold banked outside the incursion
	GoldReserve int `json:"goldReserve"`

	// Free-text sheet fields
	Occupation string `json:"occupation,omitempty"`
	Background string `json:"background,omitempty"`
	Drive      string `json:"drive,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Rituals    string `json:"rituals,omitempty"`
	Backpack   string `json:"backpack,omitempty"`
	Weapons    string `json:"weapons,omitempty"`
	Armor      string `json:"armor,omitempty"`
	FoundGear  string `json:"foundGear,omitempty"`
	Conditions string `json:"conditions,omitempty"`
	Notes      string `json:"notes,omitempty"`

	// PortraitURL points at a character portrait image
	PortraitURL string `json:"imageUrl,omitempty"`
}

// NewCharacter returns the default sheet a player starts with. Writes to a
// character that does not exist yet are applied on top of this.
func NewCharacter(name string) *Character {
	return &Character{
		Name:         name,
		Ruin:         RuinMin,
		StartingRuin: RuinMin,
	}
}

// ClampRuin forces the ruin meters back into the legal range.
func (c *Character) ClampRuin() {
	c.Ruin = clampRuin(c.Ruin)
	c.StartingRuin = clampRuin(c.StartingRuin)
}

func clampRuin(v int) int {
	if v < RuinMin {
		return RuinMin
	}
	if v > RuinMax {
		return RuinMax
	}
	return v
}
