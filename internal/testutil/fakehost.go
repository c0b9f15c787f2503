// Package testutil provides an in-memory host implementation shared by
// package tests and the simulator: rooms, interactive consoles, wall
// segments for the raycaster, and a UI panel honoring selection
// commands.
package testutil

import (
	"math"

	"github.com/blindrun/blindrun/internal/geom"
	"github.com/blindrun/blindrun/internal/host"
)

// Console is a scriptable interactive object.
type Console struct {
	ObjectID  string
	Name      string
	Pos       geom.Vec2
	TaskTypes []string
	Task      bool
	Complete  bool
	Invalid   bool
	Reach     float64
	BelowOnly bool
}

// ID implements host.Object.
func (c *Console) ID() string { return c.ObjectID }

// DisplayName implements host.Object.
func (c *Console) DisplayName() string { return c.Name }

// Position implements host.Object.
func (c *Console) Position() geom.Vec2 { return c.Pos }

// TaskTypeNames implements host.Object.
func (c *Console) TaskTypeNames() []string { return c.TaskTypes }

// HasTask implements host.Object.
func (c *Console) HasTask() bool { return c.Task }

// TaskComplete implements host.Object.
func (c *Console) TaskComplete() bool { return c.Complete }

// Usable implements host.Object.
func (c *Console) Usable() bool { return !c.Invalid }

// UsableDistance implements host.Object.
func (c *Console) UsableDistance() float64 { return c.Reach }

// ApproachFromBelowOnly implements host.Object.
func (c *Console) ApproachFromBelowOnly() bool { return c.BelowOnly }

// World is a fixed set of consoles.
type World struct {
	Consoles []host.Object
}

// Interactives implements host.World.
func (w *World) Interactives() []host.Object { return w.Consoles }

// Wall is a blocking segment for the fake raycaster.
type Wall struct {
	A geom.Vec2
	B geom.Vec2
}

// Raycaster intersects rays with wall segments.
type Raycaster struct {
	Walls []Wall
}

// Cast implements host.Raycaster: the nearest wall intersection within
// maxDist of origin along the origin→target direction, if any.
func (r *Raycaster) Cast(origin, target geom.Vec2, maxDist float64) (geom.Vec2, bool) {
	dir := target.Sub(origin)
	length := dir.Length()
	if length == 0 {
		return geom.Vec2{}, false
	}
	dir = dir.Scale(1 / length)

	bestT := math.Inf(1)
	for _, w := range r.Walls {
		seg := w.B.Sub(w.A)
		denom := cross(dir, seg)
		if math.Abs(denom) < 1e-12 {
			continue
		}
		toA := w.A.Sub(origin)
		t := cross(toA, seg) / denom
		u := cross(toA, dir) / denom
		if t >= 0 && t <= maxDist && u >= 0 && u <= 1 && t < bestT {
			bestT = t
		}
	}

	if math.IsInf(bestT, 1) {
		return geom.Vec2{}, false
	}
	return origin.Add(dir.Scale(bestT)), true
}

func cross(a, b geom.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Element is a scriptable UI element.
type Element struct {
	EID     string
	Pos     geom.Vec2
	Text    string
	AltText string
}

// ID implements host.UIElement.
func (e *Element) ID() string { return e.EID }

// Position implements host.UIElement.
func (e *Element) Position() geom.Vec2 { return e.Pos }

// Label implements host.UIElement.
func (e *Element) Label() string { return e.Text }

// SecondaryLabel implements host.UIElement.
func (e *Element) SecondaryLabel() string { return e.AltText }

// Panel is a scriptable UI scene that honors selection commands.
type Panel struct {
	Scene   string
	Items   []host.UIElement
	Current host.UIElement
	Clicked []string
}

// SceneName implements host.UIState.
func (p *Panel) SceneName() string { return p.Scene }

// Elements implements host.UIState.
func (p *Panel) Elements() []host.UIElement { return p.Items }

// Selected implements host.UIState.
func (p *Panel) Selected() host.UIElement { return p.Current }

// SetSelection implements host.UIState.
func (p *Panel) SetSelection(el host.UIElement) { p.Current = el }

// InvokeClick implements host.UIState by recording the clicked ID.
func (p *Panel) InvokeClick(el host.UIElement) {
	if el != nil {
		p.Clicked = append(p.Clicked, el.ID())
	}
}
