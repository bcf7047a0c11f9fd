package ui

///////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	// DefaultEmbedColor is the accent color for CatBot's embeds.
	DefaultEmbedColor = 0x575AFA

	// WhiteEmbedColor is the neutral embed color used by plain
	// informational embeds.
	WhiteEmbedColor = 0xFFFFFF
)

const (
	// ConfirmLabel is the label on the affirmative confirmation button.
	ConfirmLabel = "Yes"

	// DenyLabel is the label on the negative confirmation button.
	DenyLabel = "No"
)
