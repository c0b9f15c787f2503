// Package poi locates the interactive points of interest around a
// player: which consoles in the current room still carry incomplete
// tasks, how far away they are and whether they are within reach.
package poi

import (
	"sort"

	"github.com/blindrun/blindrun/internal/geom"
	"github.com/blindrun/blindrun/internal/host"
	"github.com/blindrun/blindrun/internal/rooms"
	"github.com/blindrun/blindrun/internal/sight"
)

// PointOfInterest is one ranked query result. Ephemeral: recomputed on
// every query, never cached beyond the call.
type PointOfInterest struct {
	Object         host.Object
	Distance       float64
	UsableDistance float64
	// Visible is advisory by default; see QueryOpts.RequireVisible.
	Visible     bool
	WithinReach bool
}

// QueryOpts tunes the filtering pipeline.
type QueryOpts struct {
	// RequireVisible turns the advisory visibility flag into a hard
	// filter. Off by default: an occluded console is still reported so
	// the player knows it exists.
	RequireVisible bool
}

// Locator queries the host object graph. Stateless between calls.
type Locator struct {
	world host.World
	rooms *rooms.Set
	probe *sight.Probe
}

// NewLocator builds a locator over the host world, the room registry
// and a visibility probe.
func NewLocator(world host.World, set *rooms.Set, probe *sight.Probe) *Locator {
	return &Locator{world: world, rooms: set, probe: probe}
}

// Query returns the points of interest in the given room, ordered by
// ascending distance from playerPos. In the hallway it always returns
// nothing: no task surfacing in corridors, by policy. Room membership
// of each object is resolved independently against the room geometry,
// not read from any tracker state.
func (l *Locator) Query(playerPos geom.Vec2, room string, opts QueryOpts) []PointOfInterest {
	if room == "" || rooms.SameRoom(room, rooms.Hallway) {
		return nil
	}

	var out []PointOfInterest
	for _, obj := range l.world.Interactives() {
		if obj == nil {
			// Disappeared between enumeration and use; treat as absent.
			continue
		}
		pos := obj.Position()
		if !rooms.SameRoom(l.rooms.RoomAt(pos), room) {
			continue
		}
		if !obj.HasTask() || obj.TaskComplete() {
			continue
		}
		if !obj.Usable() {
			continue
		}
		if obj.ApproachFromBelowOnly() && playerPos.Y > pos.Y {
			continue
		}

		visible := l.probe.Visible(playerPos, pos)
		if opts.RequireVisible && !visible {
			continue
		}

		dist := playerPos.Distance(pos)
		out = append(out, PointOfInterest{
			Object:         obj,
			Distance:       dist,
			UsableDistance: obj.UsableDistance(),
			Visible:        visible,
			WithinReach:    dist <= obj.UsableDistance(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Object.ID() < out[j].Object.ID()
	})

	return out
}

// Nearest returns the closest point of interest in the room, if any.
// Room-scoped by the same hallway policy as Query.
func (l *Locator) Nearest(playerPos geom.Vec2, room string, opts QueryOpts) (PointOfInterest, bool) {
	results := l.Query(playerPos, room, opts)
	if len(results) == 0 {
		return PointOfInterest{}, false
	}
	return results[0], true
}
