// Package physics provides the axis-aligned collision primitives used by the
// game: bounding boxes derived from entity pixel shapes, box overlap, and
// point-in-box hit tests.
package physics

import "math"

// Shrink factors applied to pixel-shape dimensions when building a bounding
// box. Boxes are tightened so near misses at sprite corners don't register;
// projectile hit tests use a slightly looser shrink so shots feel fair.
const (
	DefaultShrink    = 0.8
	ProjectileShrink = 0.9
)

// Box is an axis-aligned bounding box with integer-rounded corners.
type Box struct {
	X1, Y1 int
	X2, Y2 int
}

// BoundingBox computes a box centered on (cx, cy) sized from a w×h pixel
// shape scaled by shrink.
func BoundingBox(cx, cy float64, w, h int, shrink float64) Box {
	halfW := float64(w) * shrink / 2
	halfH := float64(h) * shrink / 2
	return Box{
		X1: int(math.Round(cx - halfW)),
		Y1: int(math.Round(cy - halfH)),
		X2: int(math.Round(cx + halfW)),
		Y2: int(math.Round(cy + halfH)),
	}
}

// Overlap reports whether two boxes intersect. Separating-axis
// short-circuit: no overlap if one box's edge strictly exceeds the other's
// opposite edge.
func Overlap(a, b Box) bool {
	return !(a.X2 < b.X1 || a.X1 > b.X2 || a.Y2 < b.Y1 || a.Y1 > b.Y2)
}

// PointInBox reports whether the integer-rounded point lies within the box's
// half-open bounds [X1, X2) × [Y1, Y2).
func PointInBox(px, py float64, b Box) bool {
	x := int(math.Round(px))
	y := int(math.Round(py))
	return x >= b.X1 && x < b.X2 && y >= b.Y1 && y < b.Y2
}
