package input

// Control is one player control slot
type Control uint8

const (
	ControlUp Control = iota
	ControlDown
	ControlLeft
	ControlRight
	ControlRescue
	ControlShield

	controlCount
)

var controlNames = [...]string{
	ControlUp:     "up",
	ControlDown:   "down",
	ControlLeft:   "left",
	ControlRight:  "right",
	ControlRescue: "rescue",
	ControlShield: "shield",
}

func (c Control) String() string {
	if int(c) < len(controlNames) {
		return controlNames[c]
	}
	return "unknown"
}

// IsDirection reports a held movement control
func (c Control) IsDirection() bool {
	return c <= ControlRight
}

// opposite returns the direction cancelled by c, or c itself for actions
func (c Control) opposite() Control {
	switch c {
	case ControlUp:
		return ControlDown
	case ControlDown:
		return ControlUp
	case ControlLeft:
		return ControlRight
	case ControlRight:
		return ControlLeft
	}
	return c
}
