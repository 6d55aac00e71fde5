package session

// Action is a single command applied to a session
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotate
	ActionRotateCCW
	ActionTick
	ActionPause
)

var actionCodes = map[Action]string{
	ActionMoveLeft:  "l",
	ActionMoveRight: "r",
	ActionSoftDrop:  "sd",
	ActionHardDrop:  "hd",
	ActionRotate:    "rot",
	ActionRotateCCW: "ccw",
	ActionTick:      "t",
	ActionPause:     "p",
}

// Code returns the compact code used in recordings, or "" for ActionNone
func (a Action) Code() string {
	return actionCodes[a]
}

// String returns a readable name for logs
func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotate:
		return "Rotate"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionTick:
		return "Tick"
	case ActionPause:
		return "Pause"
	default:
		return "None"
	}
}

// ParseAction maps a recording code back to its Action
func ParseAction(code string) (Action, bool) {
	for a, c := range actionCodes {
		if c == code {
			return a, true
		}
	}
	return ActionNone, false
}
