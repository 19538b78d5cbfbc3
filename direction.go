package blurkit

import "fmt"

// Direction names the edge a gradient fades toward, the way a UI describes
// it: a "down" gradient is opaque at the top of the strip and transparent at
// the bottom. Each direction maps onto an [Axis] and a reversal flag.
type Direction uint8

const (
	// DirectionDown fades downward: opaque at the top edge.
	DirectionDown Direction = iota

	// DirectionUp fades upward: opaque at the bottom edge.
	DirectionUp

	// DirectionLeft fades leftward: opaque at the right edge.
	DirectionLeft

	// DirectionRight fades rightward: opaque at the left edge.
	DirectionRight
)

// Axis returns the strip axis the direction runs along.
func (d Direction) Axis() Axis {
	if d == DirectionLeft || d == DirectionRight {
		return AxisHorizontal
	}
	return AxisVertical
}

// Reversed reports whether the direction runs against the axis: true when
// the strip is transparent at index 0 and opaque at the far end.
func (d Direction) Reversed() bool {
	return d == DirectionUp || d == DirectionLeft
}

// Request builds the [GradientRequest] for a strip of the given length
// fading in this direction.
func (d Direction) Request(length int, startLocation float64, smooth bool) GradientRequest {
	return GradientRequest{
		Length:        length,
		Axis:          d.Axis(),
		StartLocation: startLocation,
		Reversed:      d.Reversed(),
		Smooth:        smooth,
	}
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionUp:
		return "up"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection converts a string such as "down" or "left" into a
// [Direction].
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "down":
		return DirectionDown, nil
	case "up":
		return DirectionUp, nil
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	}
	return DirectionDown, fmt.Errorf("blurkit: unknown direction %q", s)
}
