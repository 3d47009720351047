package workflow

import "fmt"

// State is the interaction state of a Controller.
type State int

const (
	Idle State = iota
	Processing
	Success
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Processing:
		return "processing"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
