// core/ledger/direction.go
package ledger

import "fmt"

// Direction is the temporal orientation of a chain. It is a closed
// two-valued enum: anything outside Forward/Backward is rejected at the
// append boundary instead of surviving as a stray string tag.
type Direction int

const (
	// Forward records extend the creation chain.
	Forward Direction = iota
	// Backward records extend the resolution chain.
	Backward
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

func (d Direction) valid() bool {
	return d == Forward || d == Backward
}

// ParseDirection maps a textual direction ("forward"/"fwd", "backward"/
// "bwd") to its enum value.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "forward", "fwd", "f":
		return Forward, nil
	case "backward", "bwd", "b":
		return Backward, nil
	default:
		return Forward, fmt.Errorf("ledger: unknown direction %q (want forward or backward)", s)
	}
}
