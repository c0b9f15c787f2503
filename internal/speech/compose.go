package speech

import (
	"fmt"
	"strings"
)

// Entry phrases a room-entry announcement.
func Entry(room, direction string) string {
	if direction != "" {
		return fmt.Sprintf("Entered %s from the %s", room, direction)
	}
	return "Entered " + room
}

// Position phrases a non-initial position update. descriptor is the
// bounds-relative fragment ("center of the", "top left of the") or "".
func Position(room, descriptor string) string {
	if descriptor != "" {
		return fmt.Sprintf("In the %s %s", descriptor, room)
	}
	return "In " + room
}

// Task phrases one point of interest: within reach, or bearing plus
// rounded distance.
func Task(name string, withinReach bool, cardinal string, distance float64) string {
	if withinReach {
		return name + " within reach"
	}
	return fmt.Sprintf("%s %s, %.1f meters", name, cardinal, distance)
}

// AtTask phrases the find-nearest result when already within reach.
func AtTask(name string) string {
	return "At " + name
}

// NoTasks phrases the empty-room case.
func NoTasks(room string) string {
	return "No tasks available in " + room
}

// Join assembles announcement parts into one utterance with
// period-space separators, skipping empty parts.
func Join(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ". ")
}
