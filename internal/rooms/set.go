package rooms

import (
	"strings"

	"github.com/blindrun/blindrun/internal/geom"
)

// Hallway is the reserved room identity meaning "not inside any
// recognized room".
const Hallway = "hallway"

// roomSuffix is the enum-like suffix token hosts append to room names
// ("ElectricalArea"); CanonicalID strips it.
const roomSuffix = "area"

// CanonicalID derives a room identity from a host-provided enum-like
// name: one trailing suffix token is stripped and whitespace trimmed.
// Identities compare case-insensitively everywhere in this package.
func CanonicalID(name string) string {
	name = strings.TrimSpace(name)
	if len(name) > len(roomSuffix) {
		tail := name[len(name)-len(roomSuffix):]
		if strings.EqualFold(tail, roomSuffix) {
			name = strings.TrimSpace(name[:len(name)-len(roomSuffix)])
		}
	}
	return name
}

// SameRoom compares two room identities case-insensitively.
func SameRoom(a, b string) bool { return strings.EqualFold(a, b) }

type room struct {
	id   string
	area Area
}

// Set is an ordered registry of room areas. Registration order is the
// host's iteration order and decides lookups when areas overlap.
type Set struct {
	rooms []room
}

// NewSet creates an empty room registry.
func NewSet() *Set { return &Set{} }

// Add registers an area under the canonical identity derived from name.
func (s *Set) Add(name string, area Area) {
	s.rooms = append(s.rooms, room{id: CanonicalID(name), area: area})
}

// RoomAt resolves the room containing p. First containment match in
// registration order wins; if the host produces overlapping areas the
// result is ordering-dependent. Returns Hallway when no area matches.
func (s *Set) RoomAt(p geom.Vec2) string {
	for _, r := range s.rooms {
		if r.area.Contains(p) {
			return r.id
		}
	}
	return Hallway
}

// AreaOf returns the registered area for a room identity, nil when the
// identity is unknown (including the hallway sentinel).
func (s *Set) AreaOf(id string) Area {
	for _, r := range s.rooms {
		if SameRoom(r.id, id) {
			return r.area
		}
	}
	return nil
}

// IDs returns the registered room identities in registration order.
func (s *Set) IDs() []string {
	out := make([]string, len(s.rooms))
	for i, r := range s.rooms {
		out[i] = r.id
	}
	return out
}
