package setup

// SaveSetupInput contains parameters for staging player names
type SaveSetupInput struct {
	ChannelID string
	Names     []string
}

// GetSetupInput contains parameters for reading staged names
type GetSetupInput struct {
	ChannelID string
}

// GetSetupOutput contains the staged names in seat order
type GetSetupOutput struct {
	Names []string
}

// ClearSetupInput contains parameters for clearing staged names
type ClearSetupInput struct {
	ChannelID string
}
