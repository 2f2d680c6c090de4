package models

// DieKind is the color of a die: light dice favor the roller, dark dice
// carry the risk of ruin.
type DieKind string

const (
	// DieKindLight is a favorable die
	DieKindLight DieKind = "light"

	// DieKindDark is a risk die; a dark die on top of a roll threatens ruin
	DieKindDark DieKind = "dark"
)

// Die is one rolled six-sided die. The ID exists only to keep dice distinct
// in a record; it carries no meaning.
type Die struct {
	// Kind tags the die light or dark
	Kind DieKind `json:"type"`

	// Value is the rolled face, 1-6
	Value int `json:"value"`

	// ID uniquely identifies the die within its roll
	ID string `json:"id"`
}
