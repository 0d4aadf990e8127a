package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dutch/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/dutch/internal/models"
)

// Repository defines the interface for the current game snapshot
type Repository interface {
	// SaveGame persists the snapshot for a channel
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame loads the snapshot for a channel
	GetGame(ctx context.Context, input *GetGameInput) (*models.GameState, error)

	// DeleteGame removes the snapshot for a channel
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
