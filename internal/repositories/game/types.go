package game

import "github.com/KirkDiggler/dutch/internal/models"

type SaveGameInput struct {
	ChannelID string
	Game      *models.GameState
}

type GetGameInput struct {
	ChannelID string
}

type DeleteGameInput struct {
	ChannelID string
}
