// Package ui reorders the host's interactive on-screen elements into a
// stable navigable sequence and narrates focus changes.
package ui

import (
	"strings"

	"github.com/blindrun/blindrun/internal/host"
	"github.com/blindrun/blindrun/internal/speech"
)

// SpeechProvider produces custom speech for an element.
type SpeechProvider func(el host.UIElement) string

// ActionHandler runs when a configured element receives focus.
type ActionHandler func(el host.UIElement)

// LayoutConfig declares how one scene's elements are ordered, hidden
// and narrated. Immutable once applied: SetMenuConfig replaces a
// scene's config wholesale, never patches it.
type LayoutConfig struct {
	// Ordered lists identifiers in explicit placement priority.
	Ordered []string
	// Hidden identifiers are suppressed from output entirely.
	Hidden []string
	// HideUnorganized drops elements not named in Ordered instead of
	// appending them after it.
	HideUnorganized bool
	// Required gates the layout: unless every identifier here matches a
	// current element, the default positional sort is used instead.
	Required []string

	SpeechText      map[string]string
	SpeechProviders map[string]SpeechProvider
	Actions         map[string]ActionHandler
}

// Matches reports whether el answers to ident, by display name or
// object identifier, case-insensitive.
func Matches(el host.UIElement, ident string) bool {
	if el == nil {
		return false
	}
	return strings.EqualFold(speech.ElementName(el), ident) ||
		strings.EqualFold(el.ID(), ident)
}

// identFor returns the config key matching el from the given map's key
// set, "" when none matches.
func identFor[V any](m map[string]V, el host.UIElement) string {
	for ident := range m {
		if Matches(el, ident) {
			return ident
		}
	}
	return ""
}

// Builder declares a LayoutConfig through chained calls and produces an
// immutable value.
type Builder struct {
	cfg LayoutConfig
}

// NewLayout starts a layout declaration.
func NewLayout() *Builder {
	return &Builder{cfg: LayoutConfig{
		SpeechText:      map[string]string{},
		SpeechProviders: map[string]SpeechProvider{},
		Actions:         map[string]ActionHandler{},
	}}
}

// Order appends identifiers to the explicit placement list.
func (b *Builder) Order(idents ...string) *Builder {
	b.cfg.Ordered = append(b.cfg.Ordered, idents...)
	return b
}

// Hide suppresses the given identifiers.
func (b *Builder) Hide(idents ...string) *Builder {
	b.cfg.Hidden = append(b.cfg.Hidden, idents...)
	return b
}

// HideUnorganized drops every element not named in the order list.
func (b *Builder) HideUnorganized() *Builder {
	b.cfg.HideUnorganized = true
	return b
}

// Require gates the layout on the presence of the given identifiers.
func (b *Builder) Require(idents ...string) *Builder {
	b.cfg.Required = append(b.cfg.Required, idents...)
	return b
}

// SpeakText sets fixed custom speech for an identifier.
func (b *Builder) SpeakText(ident, text string) *Builder {
	b.cfg.SpeechText[ident] = text
	return b
}

// SpeakWith sets a custom speech provider for an identifier.
func (b *Builder) SpeakWith(ident string, fn SpeechProvider) *Builder {
	b.cfg.SpeechProviders[ident] = fn
	return b
}

// OnFocus sets a focus action handler for an identifier.
func (b *Builder) OnFocus(ident string, fn ActionHandler) *Builder {
	b.cfg.Actions[ident] = fn
	return b
}

// Build returns the declared config.
func (b *Builder) Build() LayoutConfig {
	return b.cfg
}
