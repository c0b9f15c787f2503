package rooms

import "github.com/blindrun/blindrun/internal/geom"

// Change is a room-transition event.
type Change struct {
	Room string
	// EntryDirection is a compass label ("north", ...) computed from
	// the previous entrance point, or "" when none was recorded yet.
	EntryDirection string
}

// Tracker follows one player's room membership across ticks and detects
// transition edges. State moves only through Update and Reset; callers
// never mutate it directly.
type Tracker struct {
	rooms *Set

	current         string
	lastEntrance    geom.Vec2
	hasLastEntrance bool
	initialEntry    bool
}

// NewTracker creates a tracker over the given room registry. The
// current room starts empty, so the first Update always transitions.
func NewTracker(rooms *Set) *Tracker {
	return &Tracker{rooms: rooms}
}

// Update resolves the room at p against the current tick's geometry and
// fires a transition when it differs from the stored room. Already in
// the hallway and still in no recognized area is not a transition.
func (t *Tracker) Update(p geom.Vec2) (Change, bool) {
	room := t.rooms.RoomAt(p)
	if SameRoom(room, t.current) {
		return Change{}, false
	}

	dir := ""
	if t.hasLastEntrance {
		dir = geom.EntryDirection(t.lastEntrance.Sub(p))
	}

	t.current = room
	t.lastEntrance = p
	t.hasLastEntrance = true
	t.initialEntry = true

	return Change{Room: room, EntryDirection: dir}, true
}

// CurrentRoom returns the stored room identity ("" before the first
// Update).
func (t *Tracker) CurrentRoom() string { return t.current }

// InitialEntry reports whether the current room has not been announced
// yet; it drives "Entered X" versus "In the Y of X" phrasing.
func (t *Tracker) InitialEntry() bool { return t.initialEntry }

// MarkAnnounced clears the initial-entry flag after the first
// announcement or an explicit position scan.
func (t *Tracker) MarkAnnounced() { t.initialEntry = false }

// Reset forgets all tracked state, as on respawn or map change.
func (t *Tracker) Reset() {
	t.current = ""
	t.hasLastEntrance = false
	t.initialEntry = false
}
