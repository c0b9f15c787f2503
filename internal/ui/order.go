package ui

import (
	"math"
	"sort"

	"github.com/blindrun/blindrun/internal/host"
)

// rowBucket absorbs float jitter when grouping elements into rows:
// vertical positions within the same 0.1-unit bucket count as one row.
const rowBucket = 0.1

// Sort produces the single deterministic linear order for a set of
// elements. With no config, or when the config's required elements are
// not all present, the default positional sort applies: rows
// top-to-bottom, left-to-right within a row. With an active config the
// explicitly ordered elements come first in declared sequence, hidden
// elements are removed, and the remainder is appended positionally
// unless the config hides unorganized elements.
//
// The result never depends on the input ordering of elements beyond
// what the row bucketing and explicit lists dictate.
func Sort(elements []host.UIElement, cfg *LayoutConfig) []host.UIElement {
	if cfg == nil || !requiredMet(elements, cfg) {
		return defaultSort(elements)
	}

	visible := make([]host.UIElement, 0, len(elements))
	for _, el := range elements {
		if el == nil || matchesAny(el, cfg.Hidden) {
			continue
		}
		visible = append(visible, el)
	}

	placed := make([]host.UIElement, 0, len(visible))
	used := make(map[string]bool, len(visible))
	for _, ident := range cfg.Ordered {
		for _, el := range visible {
			if used[el.ID()] || !Matches(el, ident) {
				continue
			}
			placed = append(placed, el)
			used[el.ID()] = true
			break
		}
	}

	if cfg.HideUnorganized {
		return placed
	}

	var rest []host.UIElement
	for _, el := range visible {
		if !used[el.ID()] {
			rest = append(rest, el)
		}
	}
	return append(placed, defaultSort(rest)...)
}

// defaultSort orders by row bucket (descending y), then x ascending,
// with the element ID as final tiebreaker for determinism.
func defaultSort(elements []host.UIElement) []host.UIElement {
	out := make([]host.UIElement, 0, len(elements))
	for _, el := range elements {
		if el != nil {
			out = append(out, el)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		bi := rowOf(out[i])
		bj := rowOf(out[j])
		if bi != bj {
			return bi > bj
		}
		pi := out[i].Position()
		pj := out[j].Position()
		if pi.X != pj.X {
			return pi.X < pj.X
		}
		return out[i].ID() < out[j].ID()
	})

	return out
}

func rowOf(el host.UIElement) int {
	return int(math.Round(el.Position().Y / rowBucket))
}

func matchesAny(el host.UIElement, idents []string) bool {
	for _, ident := range idents {
		if Matches(el, ident) {
			return true
		}
	}
	return false
}

func requiredMet(elements []host.UIElement, cfg *LayoutConfig) bool {
	for _, ident := range cfg.Required {
		found := false
		for _, el := range elements {
			if Matches(el, ident) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
