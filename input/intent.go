package input

// IntentType discriminates what a key event means to the driver
type IntentType uint8

const (
	IntentNone    IntentType = iota
	IntentQuit               // Esc, Ctrl+C
	IntentRestart            // Enter, honoured only after game over
	IntentControl            // Player control latched for the next tick
	IntentResize             // Terminal resize
)

// Intent is the parsed result of one terminal event
type Intent struct {
	Type    IntentType
	Player  int
	Control Control
}
