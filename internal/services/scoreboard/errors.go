package scoreboard

// GameError is a custom error type for scoreboard errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoActiveGame       GameError = "no active game in this channel"
	ErrGameInProgress     GameError = "a game is already running in this channel"
	ErrGameOver           GameError = "the game is over"
	ErrGameNotOver        GameError = "the game is not over yet"
	ErrNoRounds           GameError = "no rounds to undo"
	ErrNoSetup            GameError = "no players have been set up"
	ErrPlayerNotFound     GameError = "player not found"
	ErrTooFewPlayers      GameError = "a game needs at least two players"
	ErrTooManyPlayers     GameError = "too many players"
	ErrDuplicateName      GameError = "player names must be unique"
	ErrScoreCount         GameError = "enter one score per player"
	ErrScoreOutOfRange    GameError = "score is outside the allowed range"
	ErrInvalidScoreLimit  GameError = "score limit must be above every player's total"
	ErrUnknownSetting     GameError = "unknown setting"
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNilGameRepo        GameError = "game repository cannot be nil"
	ErrNilHistoryRepo     GameError = "history repository cannot be nil"
	ErrNilSetupRepo       GameError = "setup repository cannot be nil"
	ErrNilPreferencesRepo GameError = "preferences repository cannot be nil"
	ErrNilClock           GameError = "clock cannot be nil"
	ErrNilUUIDGenerator   GameError = "UUID generator cannot be nil"
)
