package preferences

// Flag names a stored boolean preference
type Flag string

const (
	// FlagSound toggles sound cues
	FlagSound Flag = "dutch_sound_enabled"

	// FlagCommentary toggles the commentator
	FlagCommentary Flag = "dutch_commentary_enabled"
)

// Flags lists every known flag
var Flags = []Flag{FlagSound, FlagCommentary}

// Valid reports whether the flag is known
func (f Flag) Valid() bool {
	for _, known := range Flags {
		if f == known {
			return true
		}
	}
	return false
}

// GetFlagInput contains parameters for reading a flag
type GetFlagInput struct {
	ChannelID string
	Flag      Flag

	// Default is returned when the flag has never been set
	Default bool
}

// GetFlagOutput contains the flag value
type GetFlagOutput struct {
	Enabled bool

	// IsSet is false when Enabled came from the default
	IsSet bool
}

// SetFlagInput contains parameters for storing a flag
type SetFlagInput struct {
	ChannelID string
	Flag      Flag
	Enabled   bool
}
