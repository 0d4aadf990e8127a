package setup

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dutch/internal/repositories/setup Repository

import (
	"context"
)

// Repository defines the interface for staged player names
type Repository interface {
	// SaveSetup stores the names staged for the next game
	SaveSetup(ctx context.Context, input *SaveSetupInput) error

	// GetSetup retrieves the staged names
	GetSetup(ctx context.Context, input *GetSetupInput) (*GetSetupOutput, error)

	// ClearSetup removes the staged names
	ClearSetup(ctx context.Context, input *ClearSetupInput) error
}
