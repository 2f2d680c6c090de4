package models

// RecentSession is one entry of a client's capped recent-sessions list,
// used only to pre-fill the landing screen. Never authoritative.
type RecentSession struct {
	// ID is the session slug
	ID string `json:"id"`

	// Title is the display title at creation time
	Title string `json:"title"`

	// Date is the creation time in milliseconds
	Date int64 `json:"date"`
}

// Identity is a remembered join identity for one session: either the
// guardian role or a player name. Pre-fill only.
type Identity struct {
	// Role is the remembered role
	Role ParticipantRole `json:"role"`

	// Name is the remembered player name, empty for the guardian
	Name string `json:"name,omitempty"`
}
