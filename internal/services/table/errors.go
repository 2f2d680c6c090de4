package table

// TableError is a typed error for table operations.
type TableError string

// Error implements the error interface.
func (e TableError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound    TableError = "session not found"
	ErrEmptyTitle         TableError = "session title cannot be empty"
	ErrEmptySessionID     TableError = "session ID cannot be empty"
	ErrEmptyPlayerName    TableError = "player name cannot be empty"
	ErrReservedName       TableError = "that name is reserved for the facilitator"
	ErrInvalidRollType    TableError = "invalid roll type"
	ErrEmptyPool          TableError = "dice pool is empty"
	ErrNoRolls            TableError = "no rolls to push"
	ErrNotYourRoll        TableError = "only the roller may push the last roll"
	ErrPushNotAllowed     TableError = "this roll type cannot be pushed"
	ErrPurgeNotConfirmed  TableError = "history purge requires confirmation"
	ErrImportNotConfirmed TableError = "character import requires confirmation"
	ErrInvalidCharacter   TableError = "invalid character payload"
	ErrNilConfig          TableError = "config cannot be nil"
	ErrNilSessionRepo     TableError = "session repository cannot be nil"
	ErrNilRollRepo        TableError = "roll repository cannot be nil"
	ErrNilCharacterRepo   TableError = "character repository cannot be nil"
	ErrNilPrefsRepo       TableError = "prefs repository cannot be nil"
	ErrNilDiceRoller      TableError = "dice roller cannot be nil"
	ErrNilClock           TableError = "clock cannot be nil"
	ErrNilUUIDGenerator   TableError = "UUID generator cannot be nil"
)
