// Package rooms implements room geometry, canonical room identities and
// the per-player room tracker that detects transitions between rooms.
package rooms

import "github.com/blindrun/blindrun/internal/geom"

// Area is a host-owned room shape. Read-only from the overlay's side.
type Area interface {
	Contains(p geom.Vec2) bool
	Bounds() geom.Bounds
}

// Polygon is an arbitrary closed room outline.
type Polygon struct {
	nodes  []geom.Vec2
	bounds geom.Bounds
}

// NewPolygon builds a polygon area from its vertices. Fewer than three
// vertices yields a degenerate area that contains nothing.
func NewPolygon(nodes ...geom.Vec2) *Polygon {
	p := &Polygon{nodes: nodes}
	if len(nodes) > 0 {
		p.bounds = geom.Bounds{Min: nodes[0], Max: nodes[0]}
		for _, n := range nodes[1:] {
			if n.X < p.bounds.Min.X {
				p.bounds.Min.X = n.X
			}
			if n.X > p.bounds.Max.X {
				p.bounds.Max.X = n.X
			}
			if n.Y < p.bounds.Min.Y {
				p.bounds.Min.Y = n.Y
			}
			if n.Y > p.bounds.Max.Y {
				p.bounds.Max.Y = n.Y
			}
		}
	}
	return p
}

// Contains checks point-in-polygon by the even-odd ray casting rule.
func (p *Polygon) Contains(pt geom.Vec2) bool {
	n := len(p.nodes)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		ni, nj := p.nodes[i], p.nodes[j]
		if (ni.Y > pt.Y) != (nj.Y > pt.Y) {
			cross := ni.X + (pt.Y-ni.Y)/(nj.Y-ni.Y)*(nj.X-ni.X)
			if pt.X < cross {
				inside = !inside
			}
		}
		j = i
	}

	return inside
}

// Bounds returns the polygon's axis-aligned bounding box.
func (p *Polygon) Bounds() geom.Bounds { return p.bounds }

// Box is an axis-aligned rectangular room.
type Box struct {
	bounds geom.Bounds
}

// NewBox builds a rectangular area from two opposite corners.
func NewBox(min, max geom.Vec2) *Box {
	if max.X < min.X {
		min.X, max.X = max.X, min.X
	}
	if max.Y < min.Y {
		min.Y, max.Y = max.Y, min.Y
	}
	return &Box{bounds: geom.Bounds{Min: min, Max: max}}
}

// Contains checks point-in-box, edges inclusive.
func (b *Box) Contains(p geom.Vec2) bool { return b.bounds.Contains(p) }

// Bounds returns the box extent.
func (b *Box) Bounds() geom.Bounds { return b.bounds }
