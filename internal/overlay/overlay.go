// Package overlay is the host-facing plugin facade: it receives the
// host's per-frame callbacks, runs the room tracker and focus tracker,
// and routes composed announcements to the speech sink.
//
// Single-threaded by contract: every entry point is invoked
// synchronously from the host's frame callbacks. Each entry point
// isolates failures — a panic is logged and the next tick re-evaluates
// full state from scratch.
package overlay

import (
	"log/slog"

	"github.com/blindrun/blindrun/internal/geom"
	"github.com/blindrun/blindrun/internal/host"
	"github.com/blindrun/blindrun/internal/poi"
	"github.com/blindrun/blindrun/internal/rooms"
	"github.com/blindrun/blindrun/internal/sight"
	"github.com/blindrun/blindrun/internal/speech"
	"github.com/blindrun/blindrun/internal/ui"
)

// Options tunes overlay policy.
type Options struct {
	// RequireVisible makes the point-of-interest queries drop occluded
	// objects instead of reporting them with an advisory flag.
	RequireVisible bool
}

// Overlay wires the trackers, locator and sink behind the host entry
// points. All state is owned here and mutated only from host ticks.
type Overlay struct {
	roomSet *rooms.Set
	tracker *rooms.Tracker
	locator *poi.Locator
	focus   *ui.FocusTracker
	sink    speech.Sink
	opts    Options

	lastPos    geom.Vec2
	lastSpoken string
	uiBusy     bool
}

// New builds an overlay over the host world, raycast capability and
// room registry, speaking into sink.
func New(world host.World, rc host.Raycaster, set *rooms.Set, sink speech.Sink, opts Options) *Overlay {
	probe := sight.NewProbe(rc)
	return &Overlay{
		roomSet: set,
		tracker: rooms.NewTracker(set),
		locator: poi.NewLocator(world, set, probe),
		focus:   ui.NewFocusTracker(sink),
		sink:    sink,
		opts:    opts,
	}
}

// SetMenuConfig applies a scene's UI layout config, replacing any
// previous one wholesale.
func (o *Overlay) SetMenuConfig(scene string, cfg ui.LayoutConfig) {
	o.focus.SetMenuConfig(scene, cfg)
}

// OnPlayerTick is the host's per-frame movement callback. No-op for
// players the local client does not own.
func (o *Overlay) OnPlayerTick(p host.PlayerState) {
	defer o.guard("player tick")

	if !p.Owned {
		return
	}
	o.lastPos = p.Position

	change, ok := o.tracker.Update(p.Position)
	if !ok {
		return
	}

	slog.Debug("room change", "room", change.Room, "entry_direction", change.EntryDirection)
	o.announceRoom(speech.Entry(change.Room, change.EntryDirection), change.Room, p.Position)
}

// OnUITick is the host's per-frame UI callback. A busy flag skips
// nested invocation silently; the host contract forbids concurrency, so
// the guard only protects against re-entrant callbacks within a tick.
func (o *Overlay) OnUITick(state host.UIState) {
	defer o.guard("ui tick")

	if state == nil || o.uiBusy {
		return
	}
	o.uiBusy = true
	defer func() { o.uiBusy = false }()

	o.focus.OnTick(state)
}

// AnnouncePosition is the key-driven position scan. Initial entries use
// the "Entered" phrasing; later scans describe where within the room
// the player stands.
func (o *Overlay) AnnouncePosition() {
	defer o.guard("announce position")

	room := o.currentRoom()
	if o.tracker.InitialEntry() {
		o.announceRoom(speech.Entry(room, ""), room, o.lastPos)
		return
	}

	descriptor := ""
	if area := o.roomSet.AreaOf(room); area != nil {
		descriptor = geom.RelativePosition(o.lastPos, area.Bounds())
	}
	o.announceRoom(speech.Position(room, descriptor), room, o.lastPos)
}

// FindNearest is the key-driven nearest-task search, scoped to the
// current room.
func (o *Overlay) FindNearest() {
	defer o.guard("find nearest")

	room := o.currentRoom()
	nearest, ok := o.locator.Nearest(o.lastPos, room, o.queryOpts())
	if !ok {
		o.speak(speech.NoTasks(room), true)
		return
	}

	name := speech.ObjectName(nearest.Object)
	if nearest.WithinReach {
		o.speak(speech.AtTask(name), true)
		return
	}
	bearing := geom.Cardinal(nearest.Object.Position().Sub(o.lastPos))
	o.speak(speech.Task(name, false, bearing, geom.RoundDistance(nearest.Distance)), true)
}

// RepeatLast re-speaks the most recent announcement.
func (o *Overlay) RepeatLast() {
	defer o.guard("repeat last")

	if o.lastSpoken != "" {
		o.sink.Speak(o.lastSpoken, true)
	}
}

// FocusNext, FocusPrev and Activate forward key-driven UI navigation to
// the focus tracker.
func (o *Overlay) FocusNext(state host.UIState) {
	defer o.guard("focus next")
	o.focus.FocusNext(state)
}

// FocusPrev moves UI focus backwards.
func (o *Overlay) FocusPrev(state host.UIState) {
	defer o.guard("focus prev")
	o.focus.FocusPrev(state)
}

// Activate clicks the focused element.
func (o *Overlay) Activate(state host.UIState) {
	defer o.guard("activate")
	o.focus.Activate(state)
}

// Reset forgets tracked movement state, as on respawn or map change.
func (o *Overlay) Reset() {
	o.tracker.Reset()
}

// announceRoom speaks the lead phrase followed by the room's points of
// interest, ordered by ascending distance. Recognized rooms with no
// tasks get the explicit no-tasks line; the hallway does not.
func (o *Overlay) announceRoom(lead, room string, pos geom.Vec2) {
	parts := []string{lead}

	results := o.locator.Query(pos, room, o.queryOpts())
	for _, r := range results {
		name := speech.ObjectName(r.Object)
		bearing := geom.Cardinal(r.Object.Position().Sub(pos))
		parts = append(parts, speech.Task(name, r.WithinReach, bearing, geom.RoundDistance(r.Distance)))
	}
	if len(results) == 0 && !rooms.SameRoom(room, rooms.Hallway) {
		parts = append(parts, speech.NoTasks(room))
	}

	o.speak(speech.Join(parts...), true)
	o.tracker.MarkAnnounced()
}

// currentRoom resolves the tracker's room, updating first if the
// tracker has not seen any position yet.
func (o *Overlay) currentRoom() string {
	if o.tracker.CurrentRoom() == "" {
		o.tracker.Update(o.lastPos)
	}
	return o.tracker.CurrentRoom()
}

func (o *Overlay) queryOpts() poi.QueryOpts {
	return poi.QueryOpts{RequireVisible: o.opts.RequireVisible}
}

func (o *Overlay) speak(text string, interrupt bool) {
	if text == "" {
		return
	}
	o.lastSpoken = text
	o.sink.Speak(text, interrupt)
}

// guard is the isolate-and-continue boundary: a failing frame must
// never disable the overlay, so panics are logged and dropped.
func (o *Overlay) guard(op string) {
	if r := recover(); r != nil {
		o.uiBusy = false
		slog.Error("overlay entry point failed", "op", op, "panic", r)
	}
}
