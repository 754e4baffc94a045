package dockerps

import "strings"

// Class is the color class of a status
type Class int

const (
	Other Class = iota
	Up
	Down
)

func (c Class) String() string {
	switch c {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "other"
	}
}

// Classify maps a free text status to its class
func Classify(status string) Class {
	switch {
	case strings.HasPrefix(status, "Up"):
		return Up
	case strings.HasPrefix(status, "Exited"), strings.HasPrefix(status, "stopped"):
		return Down
	default:
		return Other
	}
}
