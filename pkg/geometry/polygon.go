package geometry

import "sort"

// ConvexHull computes the convex hull of a set of points using Graham scan.
// Returns the points forming the convex hull in counter-clockwise order
// (y axis up); in screen space with y down the order appears clockwise.
func ConvexHull(points []Point2D) []Point2D {
	if len(points) < 3 {
		out := make([]Point2D, len(points))
		copy(out, points)
		return out
	}

	pts := make([]Point2D, len(points))
	copy(pts, points)

	// Pivot is the lowest y, leftmost on ties
	lowest := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Y < pts[lowest].Y ||
			(pts[i].Y == pts[lowest].Y && pts[i].X < pts[lowest].X) {
			lowest = i
		}
	}
	pts[0], pts[lowest] = pts[lowest], pts[0]
	pivot := pts[0]

	rest := pts[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		cross := crossProduct(pivot, rest[i], rest[j])
		if cross != 0 {
			return cross > 0
		}
		return distSq(pivot, rest[i]) < distSq(pivot, rest[j])
	})

	hull := []Point2D{pivot}
	for _, p := range rest {
		for len(hull) > 1 && crossProduct(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull
}

// crossProduct computes the cross product of vectors OA and OB.
func crossProduct(o, a, b Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// distSq computes the squared distance between two points.
func distSq(a, b Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}
