package theme

import "os"

// Nerd Font icons
const (
	nerdIconArrowLeft  = "󰁍" // md-arrow_left (U+F004D)
	nerdIconArrowRight = "󰁔" // md-arrow_right (U+F0054)
	nerdIconSuccess    = "󰄬" // md-check (U+F012C)
	nerdIconError      = "" // cod-error (U+EA87)
	nerdIconInfo       = "󰋼" // md-information (U+F02FC)
	nerdIconRunning    = "" // fa-refresh (U+F021)
	nerdIconBullet     = "" // oct-dot_fill (U+F444)
	nerdIconPage       = "󰈙" // md-file_document (U+F0219)
)

// ASCII fallback icons
const (
	asciiIconArrowLeft  = "←"
	asciiIconArrowRight = "→"
	asciiIconSuccess    = "✓"
	asciiIconError      = "✗"
	asciiIconInfo       = "ℹ"
	asciiIconRunning    = "◐"
	asciiIconBullet     = "•"
	asciiIconPage       = "▢"
)

var (
	IconArrowLeft  string
	IconArrowRight string
	IconSuccess    string
	IconError      string
	IconInfo       string
	IconRunning    string
	IconBullet     string
	IconPage       string
)

// init selects the icon set. Nerd Font glyphs are the default; set
// LANTERN_ICONS=ascii for terminals without a patched font.
func init() {
	if os.Getenv("LANTERN_ICONS") == "ascii" {
		IconArrowLeft = asciiIconArrowLeft
		IconArrowRight = asciiIconArrowRight
		IconSuccess = asciiIconSuccess
		IconError = asciiIconError
		IconInfo = asciiIconInfo
		IconRunning = asciiIconRunning
		IconBullet = asciiIconBullet
		IconPage = asciiIconPage
		return
	}

	IconArrowLeft = nerdIconArrowLeft
	IconArrowRight = nerdIconArrowRight
	IconSuccess = nerdIconSuccess
	IconError = nerdIconError
	IconInfo = nerdIconInfo
	IconRunning = nerdIconRunning
	IconBullet = nerdIconBullet
	IconPage = nerdIconPage
}
