package character

import "github.com/goldhollow/trophytable/internal/models"

// Update is a partial character write. Nil fields are left untouched, so a
// single keystroke-driven change travels as exactly one set pointer.
type Update struct {
	RealPlayerName *string `json:"realPlayerName,omitempty"`
	Ruin           *int    `json:"ruin,omitempty"`
	StartingRuin   *int    `json:"startingRuin,omitempty"`
	Gold           *int    `json:"gold,omitempty"`
	Debt           *int    `json:"debt,omitempty"`
	Tokens         *int    `json:"tokens,omitempty"`
	GoldReserve    *int    `json:"goldReserve,omitempty"`
	Occupation     *string `json:"occupation,omitempty"`
	Background     *string `json:"background,omitempty"`
	Drive          *string `json:"drive,omitempty"`
	Skills         *string `json:"skills,omitempty"`
	Rituals        *string `json:"rituals,omitempty"`
	Backpack       *string `json:"backpack,omitempty"`
	Weapons        *string `json:"weapons,omitempty"`
	Armor          *string `json:"armor,omitempty"`
	FoundGear      *string `json:"foundGear,omitempty"`
	Conditions     *string `json:"conditions,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	PortraitURL    *string `json:"imageUrl,omitempty"`
}

type UpsertInput struct {
	SessionID  string
	PlayerName string
	Update     *Update
}

type ReplaceInput struct {
	SessionID string
	Character *models.Character
}

type GetCharacterInput struct {
	SessionID  string
	PlayerName string
}

type GetPartyInput struct {
	SessionID string
}

type GetPartyOutput struct {
	// Characters is keyed by player name
	Characters map[string]*models.Character
}
