package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dutch/internal/services/messaging Service

import "context"

// Service is the interface for the commentator
type Service interface {
	// GetRoundCommentary returns a remark about the round that was just entered
	GetRoundCommentary(ctx context.Context, input *GetRoundCommentaryInput) (*GetRoundCommentaryOutput, error)

	// GetGameOverMessage returns the closing lines for a finished game
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)

	// GetUndoMessage returns a remark for a round being taken back
	GetUndoMessage(ctx context.Context, input *GetUndoMessageInput) (*GetUndoMessageOutput, error)

	// GetStartMessage returns a greeting for a new game
	GetStartMessage(ctx context.Context, input *GetStartMessageInput) (*GetStartMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
