package models

// GuardianName is the reserved identity of the facilitator role. A player
// cannot claim it as a character name.
const GuardianName = "Guardián"

// ParticipantRole distinguishes the facilitator from named players.
type ParticipantRole string

const (
	// RolePlayer is a named player with their own character sheet
	RolePlayer ParticipantRole = "player"

	// RoleGuardian is the facilitator, with view access to all sheets
	RoleGuardian ParticipantRole = "guardian"
)

// Participant is a joined identity in a session: either a named player or
// the Guardián. Identity is self-asserted; there is no authentication.
type Participant struct {
	// Role is the participant's role
	Role ParticipantRole `json:"role"`

	// Name is the display identity. For the Guardián it is always
	// GuardianName.
	Name string `json:"name"`
}

// NewPlayer returns a player participant with the given character name.
func NewPlayer(name string) Participant {
	return Participant{Role: RolePlayer, Name: name}
}

// NewGuardian returns the facilitator participant.
func NewGuardian() Participant {
	return Participant{Role: RoleGuardian, Name: GuardianName}
}

// IsGuardian reports whether the participant is the facilitator.
func (p Participant) IsGuardian() bool {
	return p.Role == RoleGuardian
}
