package ledger

// LedgerError is a custom error type for ledger errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilState           LedgerError = "game state cannot be nil"
	ErrTooFewPlayers      LedgerError = "a game needs at least two players"
	ErrInvalidPlayer      LedgerError = "player must have an ID"
	ErrDuplicatePlayer    LedgerError = "player ID appears more than once"
	ErrScoreCount         LedgerError = "score count does not match player count"
	ErrUnknownDutchPlayer LedgerError = "dutch player is not in this game"
	ErrNoRounds           LedgerError = "no rounds to undo"
	ErrRoundsMisaligned   LedgerError = "player rounds do not match the round history"
	ErrTotalMismatch      LedgerError = "player total does not match round scores"
	ErrTotalOverflow      LedgerError = "round would overflow a player total"
)
