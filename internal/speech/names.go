package speech

import (
	"strings"
	"unicode"

	"github.com/blindrun/blindrun/internal/host"
)

const (
	// cleaningLabel replaces any object whose raw name carries the
	// cleaning keyword; those names are engine noise, not task names.
	cleaningKeyword = "clean"
	cleaningLabel   = "Cleaning station"

	// fallbackLabel is spoken when no usable name can be resolved.
	fallbackLabel = "Task console"

	elementFallbackLabel = "Unlabeled control"
)

// noiseSuffixes are type suffixes stripped from raw object names before
// word splitting.
var noiseSuffixes = []string{"Task", "Console"}

// ObjectName resolves the spoken name of an interactive object:
// cleaning keyword, then the first declared non-"None" task-type name,
// then the sanitized raw name, then a generic fallback. Never fails;
// a nil object resolves to the fallback label.
func ObjectName(obj host.Object) string {
	if obj == nil {
		return fallbackLabel
	}

	raw := obj.DisplayName()
	if containsFold(raw, cleaningKeyword) {
		return cleaningLabel
	}

	for _, tn := range obj.TaskTypeNames() {
		if tn == "" || strings.EqualFold(tn, "None") {
			continue
		}
		if s := SanitizeName(tn); s != "" {
			return s
		}
	}

	if s := SanitizeName(raw); s != "" {
		return s
	}
	return fallbackLabel
}

// ElementName resolves a UI element's spoken name via the fallback
// chain: explicit label, secondary label, object identifier,
// placeholder.
func ElementName(el host.UIElement) string {
	if el == nil {
		return elementFallbackLabel
	}
	if s := SanitizeName(el.Label()); s != "" {
		return s
	}
	if s := SanitizeName(el.SecondaryLabel()); s != "" {
		return s
	}
	if s := SanitizeName(el.ID()); s != "" {
		return s
	}
	return elementFallbackLabel
}

// SanitizeName strips known noise substrings (clone markers, type
// suffixes) and splits concatenated-word identifiers by inserting a
// space before each interior capital that follows a non-space rune.
// "FixWiring(Clone)" becomes "Fix Wiring".
func SanitizeName(name string) string {
	name = strings.ReplaceAll(name, "(Clone)", "")
	name = strings.TrimSpace(name)
	for _, suffix := range noiseSuffixes {
		if len(name) > len(suffix) && strings.HasSuffix(name, suffix) {
			name = strings.TrimSpace(name[:len(name)-len(suffix)])
			break
		}
	}

	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsSpace(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
