package parameter

import "time"

// Layout
const (
	// HUDRows are reserved at the top for score and hearts
	HUDRows = 1

	// FooterRows are reserved at the bottom for the controls line
	FooterRows = 1
)

// Glyphs
const (
	PlayerGlyph       = '@'
	PlayerDownGlyph   = 'x'
	EnemyGlyph        = '●'
	AllyGlyph         = '☺'
	PickupGlyph       = '♥'
	ShieldGlyph       = '·'
	HeartGlyph        = '♥'
	ShieldRingSamples = 24
)

// Text
const (
	GameOverText     = "GAME OVER"
	RestartHintText  = "Enter: restart  Esc: quit"
	ControlsSingle   = "P1 Move=%s | Rescue=%s | Shield=%s"
	ControlsTwo      = "P1 %s Move | Rescue=%s | Shield=%s    P2 %s Move | Rescue=%s | Shield=%s"
	ScoreLabelFormat = "Score: %d  Rescued: %d"

	TitleText      = "SACRIFICES MUST BE MADE"
	MenuPromptText = "Choose Mode"
	MenuSingleText = "1 - Single Player"
	MenuTwoText    = "2 - Two Players"
	IntroText      = "WE WORKED SO HARD FOR THIS"
)

// Intro timing: fade in, hold, fade out
const (
	IntroDuration = 5 * time.Second
	IntroFade     = 1 * time.Second
)

// Input
const (
	// DefaultKeyHold is how long a direction stays pressed after its last key event;
	// terminals report presses and auto-repeat only, never releases
	DefaultKeyHold = 180 * time.Millisecond
)

// Loop
const (
	// MaxFrameDelta caps one step after a stall so entities never jump across the screen
	MaxFrameDelta = 100 * time.Millisecond
)
