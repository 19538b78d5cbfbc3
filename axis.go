package blurkit

import "fmt"

// Axis selects the dimension along which a gradient strip runs.
type Axis uint8

const (
	// AxisVertical produces a 1 x Length strip whose alpha varies along y.
	AxisVertical Axis = iota

	// AxisHorizontal produces a Length x 1 strip whose alpha varies along x.
	AxisHorizontal
)

// String returns the lowercase name of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// ParseAxis converts a string such as "vertical" or "horizontal" into an
// [Axis]. It accepts the single-letter shorthands "y" and "x".
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "vertical", "y":
		return AxisVertical, nil
	case "horizontal", "x":
		return AxisHorizontal, nil
	}
	return AxisVertical, fmt.Errorf("blurkit: unknown axis %q", s)
}
