package obj

// Action is a logical input the level reacts to.
type Action int

const (
	ActionUp Action = iota
	ActionLeft
	ActionRight
)

func (a Action) String() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	default:
		return "unknown"
	}
}
