package image

// BoundaryMode selects what a read outside an image's bounds returns.
type BoundaryMode uint8

const (
	// BoundaryBlack resolves every outside read to "none": a zero pixel with
	// zero alpha.
	BoundaryBlack BoundaryMode = iota

	// BoundaryClamp replicates the nearest edge pixel.
	BoundaryClamp

	// BoundaryPeriodic wraps coordinates so the image tiles the plane.
	BoundaryPeriodic
)

// String returns a string representation of the boundary mode.
func (m BoundaryMode) String() string {
	switch m {
	case BoundaryBlack:
		return "black"
	case BoundaryClamp:
		return "clamp"
	case BoundaryPeriodic:
		return "periodic"
	default:
		return "unknown"
	}
}

// Resolve maps pixel (x, y) to an addressable pixel of bounds under mode.
// It returns ok == false when the read must be treated as zero: the bounds
// are empty, or (x, y) is outside and mode is BoundaryBlack (or unknown).
//
// Resolve is total: every integer input yields a result, and for Clamp and
// Periodic the result is always inside bounds.
func Resolve(x, y int, bounds Rect, mode BoundaryMode) (rx, ry int, ok bool) {
	if bounds.Empty() {
		return 0, 0, false
	}
	if bounds.Contains(x, y) {
		return x, y, true
	}
	switch mode {
	case BoundaryClamp:
		return clampAxis(x, bounds.X1, bounds.X2), clampAxis(y, bounds.Y1, bounds.Y2), true
	case BoundaryPeriodic:
		return wrapAxis(x, bounds.X1, bounds.X2), wrapAxis(y, bounds.Y1, bounds.Y2), true
	default:
		return 0, 0, false
	}
}

// ResolveX applies Resolve to a column only, with the row assumed valid.
func ResolveX(x int, bounds Rect, mode BoundaryMode) (int, bool) {
	if bounds.Empty() {
		return 0, false
	}
	if x >= bounds.X1 && x < bounds.X2 {
		return x, true
	}
	switch mode {
	case BoundaryClamp:
		return clampAxis(x, bounds.X1, bounds.X2), true
	case BoundaryPeriodic:
		return wrapAxis(x, bounds.X1, bounds.X2), true
	default:
		return 0, false
	}
}

// ResolveY applies Resolve to a row only, with the column assumed valid.
func ResolveY(y int, bounds Rect, mode BoundaryMode) (int, bool) {
	if bounds.Empty() {
		return 0, false
	}
	if y >= bounds.Y1 && y < bounds.Y2 {
		return y, true
	}
	switch mode {
	case BoundaryClamp:
		return clampAxis(y, bounds.Y1, bounds.Y2), true
	case BoundaryPeriodic:
		return wrapAxis(y, bounds.Y1, bounds.Y2), true
	default:
		return 0, false
	}
}

// clampAxis clamps v into [lo, hi-1]. hi > lo.
func clampAxis(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v >= hi {
		return hi - 1
	}
	return v
}

// wrapAxis wraps v into [lo, hi) with a non-negative modulo. hi > lo.
func wrapAxis(v, lo, hi int) int {
	n := hi - lo
	return lo + ((v-lo)%n+n)%n
}
