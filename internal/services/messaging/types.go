package messaging

import (
	"github.com/KirkDiggler/dutch/internal/common/random"
	"github.com/KirkDiggler/dutch/internal/models"
)

// Situation is what a round remark is about
type Situation string

const (
	// SituationDutchSuccess is a Dutch call that held up
	SituationDutchSuccess Situation = "dutch_success"

	// SituationDutchPenalty is a Dutch call that earned the penalty
	SituationDutchPenalty Situation = "dutch_penalty"

	// SituationPerfectZero is a player taking zero points
	SituationPerfectZero Situation = "perfect_zero"

	// SituationBlowUp is a round of BlowUpScore or more
	SituationBlowUp Situation = "blow_up"

	// SituationNewLeader is a change at the top of the standings
	SituationNewLeader Situation = "new_leader"

	// SituationGeneric is everything else
	SituationGeneric Situation = "generic"
)

// BlowUpScore is the round score that counts as a disaster
const BlowUpScore = 25

// ErrorType selects the error message family
type ErrorType string

const (
	ErrorTypeNoGame        ErrorType = "no_game"
	ErrorTypeGameOver      ErrorType = "game_over"
	ErrorTypeGameRunning   ErrorType = "game_running"
	ErrorTypeInvalidScores ErrorType = "invalid_scores"
	ErrorTypeUnknownPlayer ErrorType = "unknown_player"
	ErrorTypeInvalidSetup  ErrorType = "invalid_setup"
	ErrorTypeNothingToUndo ErrorType = "nothing_to_undo"
	ErrorTypeCannotResume  ErrorType = "cannot_resume"
	ErrorTypeStorage       ErrorType = "storage"
)

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Picker chooses templates; a time-seeded source is used when nil
	Picker random.Picker
}

// GetRoundCommentaryInput describes a committed round
type GetRoundCommentaryInput struct {
	// Players are the seats after the round was applied
	Players []*models.Player

	// Round is the committed entry
	Round *models.RoundHistoryEntry

	// PenaltyApplied is set when the Dutch caller was penalised
	PenaltyApplied bool

	// PreviousLeaderID is the leader before the round; empty on the first round
	PreviousLeaderID string
}

// GetRoundCommentaryOutput contains the remark
type GetRoundCommentaryOutput struct {
	Message   string
	Situation Situation
}

// GetGameOverMessageInput describes a finished game
type GetGameOverMessageInput struct {
	Summary *models.Game
}

// GetGameOverMessageOutput contains the closing lines
type GetGameOverMessageOutput struct {
	Title   string
	Message string
}

// GetUndoMessageInput describes an undone round
type GetUndoMessageInput struct {
	// Reopened is set when the undo brought a finished game back
	Reopened bool
}

// GetUndoMessageOutput contains the remark
type GetUndoMessageOutput struct {
	Message string
}

// GetStartMessageInput describes a new game
type GetStartMessageInput struct {
	PlayerNames []string
	ScoreLimit  int
}

// GetStartMessageOutput contains the greeting
type GetStartMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	ErrorType ErrorType

	// Detail is appended to the message when set
	Detail string
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string

	// Tag is a short reference such as DUTCH-0042 for the user to quote
	Tag string
}
