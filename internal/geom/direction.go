package geom

import "math"

// Cardinal labels, counter-clockwise from 0° (positive X axis).
// Screen semantics: positive Y is "up".
var cardinalLabels = [8]string{
	"right", "up-right", "up", "up-left",
	"left", "down-left", "down", "down-right",
}

// Entry direction labels, counter-clockwise from 0°.
// Compass semantics: the vertical axis is inverted relative to Cardinal.
var entryLabels = [4]string{"east", "north", "west", "south"}

// Cardinal buckets a displacement into one of eight screen-space
// direction labels. Sectors are 45° wide, centered on the eight compass
// points, half-open [k*45-22.5, k*45+22.5). Invariant under scaling by
// any positive factor.
func Cardinal(v Vec2) string {
	ang := normalizeDegrees(math.Atan2(v.Y, v.X))
	idx := int(math.Floor(math.Mod(ang+22.5, 360) / 45))
	return cardinalLabels[idx]
}

// EntryDirection buckets a displacement into one of four compass labels
// using atan2(-dy, dx): sign flip turns screen coordinates into compass
// semantics. Sectors are 90° wide and half-open, [315,360)∪[0,45) = east.
func EntryDirection(v Vec2) string {
	ang := normalizeDegrees(math.Atan2(-v.Y, v.X))
	idx := int(math.Floor(math.Mod(ang+45, 360) / 90))
	return entryLabels[idx]
}

// RelativePosition describes where p falls within bounds b, as a phrase
// fragment: "" (degenerate bounds), "center of the", or
// "<vertical> <horizontal> of the". Axes are split into thirds at 0.33
// and 0.66 of the bounds fraction.
func RelativePosition(p Vec2, b Bounds) string {
	w := b.Width()
	h := b.Height()
	if w <= 0 || h <= 0 {
		// Zero-size bounds carry no positional information.
		return ""
	}

	fx := (p.X - b.Min.X) / w
	fy := (p.Y - b.Min.Y) / h

	horizontal := "middle"
	switch {
	case fx < 0.33:
		horizontal = "left"
	case fx > 0.66:
		horizontal = "right"
	}

	vertical := "middle"
	switch {
	case fy < 0.33:
		vertical = "bottom"
	case fy > 0.66:
		vertical = "top"
	}

	if horizontal == "middle" && vertical == "middle" {
		return "center of the"
	}

	return vertical + " " + horizontal + " of the"
}

// RoundDistance rounds a distance to the nearest 0.1 world unit for
// speech output.
func RoundDistance(d float64) float64 {
	return math.Round(d*10) / 10
}

// normalizeDegrees converts radians to degrees in [0, 360).
func normalizeDegrees(rad float64) float64 {
	deg := math.Mod(rad*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
