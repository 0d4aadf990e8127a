package preferences

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dutch/internal/repositories/preferences Repository

import (
	"context"
)

// Repository defines the interface for presentation flags
type Repository interface {
	// GetFlag reads a flag, falling back to its default when unset
	GetFlag(ctx context.Context, input *GetFlagInput) (*GetFlagOutput, error)

	// SetFlag stores a flag
	SetFlag(ctx context.Context, input *SetFlagInput) error
}
