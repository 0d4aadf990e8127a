package history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dutch/internal/repositories/history Repository

import (
	"context"
)

// Repository defines the interface for the completed games archive
type Repository interface {
	// SaveGame records a game summary, replacing any summary with the same ID
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// ListGames returns the archived summaries, newest first
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)

	// DeleteGame removes one summary
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// ClearGames removes every summary
	ClearGames(ctx context.Context, input *ClearGamesInput) error
}
