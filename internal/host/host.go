// Package host defines the capability surface the overlay needs from the
// game it augments. The overlay never touches concrete engine types;
// adapters over real object handles implement these interfaces, and the
// in-repo fake host implements them for tests and the simulator.
package host

import "github.com/blindrun/blindrun/internal/geom"

// Object is an interactive world object (console, task station).
// A handle may go stale between enumeration and use; implementations
// return zero values rather than panicking when that happens.
type Object interface {
	// ID uniquely identifies the object within the host session.
	ID() string
	// DisplayName returns the raw host-side object name.
	DisplayName() string
	// Position returns the object's world position.
	Position() geom.Vec2
	// TaskTypeNames returns the declared task-type names, possibly
	// empty or "None".
	TaskTypeNames() []string
	// HasTask reports whether a task is currently associated.
	HasTask() bool
	// TaskComplete reports whether the associated task is finished.
	TaskComplete() bool
	// Usable reports whether the host validates this object for the
	// current task context.
	Usable() bool
	// UsableDistance is the interaction-range threshold: within it the
	// object counts as "within reach".
	UsableDistance() float64
	// ApproachFromBelowOnly marks objects only reachable from below.
	ApproachFromBelowOnly() bool
}

// World enumerates the host's interactive objects.
type World interface {
	Interactives() []Object
}

// Raycaster exposes the host's blocking-geometry raycast. Cast traces
// from origin toward target, at most maxDist, and reports the first
// blocking hit.
type Raycaster interface {
	Cast(origin, target geom.Vec2, maxDist float64) (hit geom.Vec2, blocked bool)
}

// UIElement is an opaque handle to one interactive on-screen control.
// Lifecycle is entirely host-owned.
type UIElement interface {
	ID() string
	Position() geom.Vec2
	// Label is the explicit label component, "" when absent.
	Label() string
	// SecondaryLabel is the fallback label component, "" when absent.
	SecondaryLabel() string
}

// UIState is the host's view of the active UI scene, including the
// selection commands the overlay issues back.
type UIState interface {
	SceneName() string
	Elements() []UIElement
	// Selected returns the host-reported focused element, nil if none.
	Selected() UIElement
	// SetSelection moves host focus to the given element.
	SetSelection(el UIElement)
	// InvokeClick performs a pointer down+up pair on the element.
	InvokeClick(el UIElement)
}

// PlayerState is the per-tick snapshot the host hands to the overlay.
type PlayerState struct {
	Position geom.Vec2
	// Owned is false for remote players; the overlay ignores them.
	Owned bool
}
