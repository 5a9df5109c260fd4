// Copyright 2026 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geom

import "strconv"

// A Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Origin Point
	Size   Size
}

// RectXYWH constructs a Rect from an origin coordinate and dimensions.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// MinX returns the rectangle's smallest X-coordinate.
func (r Rect) MinX() float64 { return r.Origin.X }

// MinY returns the rectangle's smallest Y-coordinate.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxX returns the rectangle's largest X-coordinate.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY returns the rectangle's largest Y-coordinate.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// MidX returns the X-coordinate of the rectangle's vertical mid line.
func (r Rect) MidX() float64 { return (r.MinX() + r.MaxX()) / 2 }

// MidY returns the Y-coordinate of the rectangle's horizontal mid
// line.
func (r Rect) MidY() float64 { return (r.MinY() + r.MaxY()) / 2 }

// Width returns the rectangle's horizontal extent.
func (r Rect) Width() float64 { return r.Size.Width }

// Height returns the rectangle's vertical extent.
func (r Rect) Height() float64 { return r.Size.Height }

// Center returns the rectangle's center point, the intersection of its
// two mid lines.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// Empty reports whether the rectangle has non-positive width or
// height, i.e. encloses no area.
func (r Rect) Empty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Contains reports whether p lies within r. Containment is half-open:
// the minimum edges are inclusive and the maximum edges are exclusive,
// so adjacent rectangles never both contain a shared-edge point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() &&
		p.Y >= r.MinY() && p.Y < r.MaxY()
}

// Intersects reports whether r and o share at least one point. The
// comparison is closed: rectangles that merely touch along an edge or
// corner intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX() <= o.MaxX() && r.MaxX() >= o.MinX() &&
		r.MinY() <= o.MaxY() && r.MaxY() >= o.MinY()
}

// String returns a compact "[minX,minY,maxX,maxY]" representation of
// the rectangle.
func (r Rect) String() string {
	b := make([]byte, 0, 32)
	b = append(b, '[')
	b = strconv.AppendFloat(b, r.MinX(), 'g', -1, 64)
	b = append(b, ',')
	b = strconv.AppendFloat(b, r.MinY(), 'g', -1, 64)
	b = append(b, ',')
	b = strconv.AppendFloat(b, r.MaxX(), 'g', -1, 64)
	b = append(b, ',')
	b = strconv.AppendFloat(b, r.MaxY(), 'g', -1, 64)
	b = append(b, ']')
	return string(b)
}

// A Quadrant identifies one of the four subdivisions of a rectangle.
// The zero value is TopLeft. Quadrant values are valid indices into
// the array returned by Rect.Quadrants.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight

	// NumQuadrants is the number of quadrants of a rectangle.
	NumQuadrants = 4
)

var quadrantNames = [NumQuadrants]string{
	TopLeft:     "TopLeft",
	TopRight:    "TopRight",
	BottomLeft:  "BottomLeft",
	BottomRight: "BottomRight",
}

// String returns the conventional name of the quadrant, or a numeric
// placeholder for out-of-range values.
func (q Quadrant) String() string {
	if q < 0 || q >= NumQuadrants {
		return "Quadrant(" + strconv.Itoa(int(q)) + ")"
	}
	return quadrantNames[q]
}

// Quadrant returns the sub-rectangle of r identified by q. Each
// sub-rectangle's edges are taken directly from r's outer edges and
// mid lines, so the four quadrants tile r exactly, with no gap and no
// overlap.
func (r Rect) Quadrant(q Quadrant) Rect {
	minX, minY := r.MinX(), r.MinY()
	midX, midY := r.MidX(), r.MidY()
	switch q {
	case TopLeft:
		return RectXYWH(minX, minY, midX-minX, midY-minY)
	case TopRight:
		return RectXYWH(midX, minY, r.MaxX()-midX, midY-minY)
	case BottomLeft:
		return RectXYWH(minX, midY, midX-minX, r.MaxY()-midY)
	case BottomRight:
		return RectXYWH(midX, midY, r.MaxX()-midX, r.MaxY()-midY)
	default:
		panic("geom: invalid quadrant " + q.String())
	}
}

// Quadrants returns the four quadrant sub-rectangles of r, indexed by
// Quadrant.
func (r Rect) Quadrants() [NumQuadrants]Rect {
	return [NumQuadrants]Rect{
		TopLeft:     r.Quadrant(TopLeft),
		TopRight:    r.Quadrant(TopRight),
		BottomLeft:  r.Quadrant(BottomLeft),
		BottomRight: r.Quadrant(BottomRight),
	}
}
