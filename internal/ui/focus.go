package ui

import (
	"fmt"
	"strings"

	"github.com/blindrun/blindrun/internal/host"
	"github.com/blindrun/blindrun/internal/speech"
)

// FocusTracker diffs the ordered element set tick-over-tick and
// narrates focus changes. Owned state is mutated only from the host UI
// tick; the single-threaded host contract means no locking.
type FocusTracker struct {
	sink    speech.Sink
	configs map[string]LayoutConfig

	lastOrdered []host.UIElement
	lastFocused host.UIElement
}

// NewFocusTracker creates a tracker speaking into sink.
func NewFocusTracker(sink speech.Sink) *FocusTracker {
	return &FocusTracker{
		sink:    sink,
		configs: map[string]LayoutConfig{},
	}
}

// SetMenuConfig applies a scene's layout config, replacing any previous
// one wholesale.
func (t *FocusTracker) SetMenuConfig(scene string, cfg LayoutConfig) {
	t.configs[strings.ToLower(scene)] = cfg
}

// configFor returns the active config for a scene, nil when none is
// declared.
func (t *FocusTracker) configFor(scene string) *LayoutConfig {
	if cfg, ok := t.configs[strings.ToLower(scene)]; ok {
		return &cfg
	}
	return nil
}

// OnTick recomputes the element order and reacts to two independent
// kinds of change: membership deltas in the element set, and focus
// moves reported by the host.
//
// Membership is compared as an unordered identity set: a reorder with
// the same members is not a change, an added or removed element is. On
// a membership change the tracker announces the new element count,
// auto-focuses the first element and announces it.
func (t *FocusTracker) OnTick(ui host.UIState) {
	cfg := t.configFor(ui.SceneName())
	ordered := Sort(ui.Elements(), cfg)

	if !sameMembers(ordered, t.lastOrdered) {
		t.lastOrdered = ordered
		t.sink.Speak(fmt.Sprintf("%d menu items", len(ordered)), false)
		if len(ordered) > 0 {
			first := ordered[0]
			ui.SetSelection(first)
			t.announceFocus(first, cfg)
			t.lastFocused = first
		} else {
			t.lastFocused = nil
		}
	}

	sel := ui.Selected()
	if sel != nil && !sameElement(sel, t.lastFocused) {
		t.announceFocus(sel, cfg)
		t.runAction(sel, cfg)
		t.lastFocused = sel
	}
}

// FocusNext moves host focus to the element after the current one in
// the last computed order, wrapping around.
func (t *FocusTracker) FocusNext(ui host.UIState) { t.moveFocus(ui, 1) }

// FocusPrev moves host focus to the element before the current one,
// wrapping around.
func (t *FocusTracker) FocusPrev(ui host.UIState) { t.moveFocus(ui, -1) }

// Activate clicks the currently focused element.
func (t *FocusTracker) Activate(ui host.UIState) {
	if t.lastFocused != nil {
		ui.InvokeClick(t.lastFocused)
	}
}

func (t *FocusTracker) moveFocus(ui host.UIState, step int) {
	n := len(t.lastOrdered)
	if n == 0 {
		return
	}
	idx := indexOf(t.lastOrdered, t.lastFocused)
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+step)%n + n) % n
	}

	cfg := t.configFor(ui.SceneName())
	target := t.lastOrdered[idx]
	ui.SetSelection(target)
	t.announceFocus(target, cfg)
	t.runAction(target, cfg)
	t.lastFocused = target
}

// announceFocus speaks an element using its custom provider or text
// when configured, else the default name resolution, with a 1-based
// "N of M" suffix when the element appears in the last computed order.
func (t *FocusTracker) announceFocus(el host.UIElement, cfg *LayoutConfig) {
	text := ""
	if cfg != nil {
		if ident := identFor(cfg.SpeechProviders, el); ident != "" {
			text = cfg.SpeechProviders[ident](el)
		} else if ident := identFor(cfg.SpeechText, el); ident != "" {
			text = cfg.SpeechText[ident]
		}
	}
	if text == "" {
		text = speech.ElementName(el)
	}

	if idx := indexOf(t.lastOrdered, el); idx >= 0 {
		text = fmt.Sprintf("%s %d of %d", text, idx+1, len(t.lastOrdered))
	}

	t.sink.Speak(text, true)
}

func (t *FocusTracker) runAction(el host.UIElement, cfg *LayoutConfig) {
	if cfg == nil {
		return
	}
	if ident := identFor(cfg.Actions, el); ident != "" {
		cfg.Actions[ident](el)
	}
}

func sameElement(a, b host.UIElement) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}

func indexOf(ordered []host.UIElement, el host.UIElement) int {
	if el == nil {
		return -1
	}
	for i, o := range ordered {
		if o.ID() == el.ID() {
			return i
		}
	}
	return -1
}

func sameMembers(a, b []host.UIElement) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[string]int, len(a))
	for _, el := range a {
		ids[el.ID()]++
	}
	for _, el := range b {
		ids[el.ID()]--
		if ids[el.ID()] < 0 {
			return false
		}
	}
	return true
}
