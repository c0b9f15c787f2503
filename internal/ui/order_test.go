package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blindrun/blindrun/internal/geom"
	"github.com/blindrun/blindrun/internal/host"
	"github.com/blindrun/blindrun/internal/testutil"
)

func el(id, label string, x, y float64) host.UIElement {
	return &testutil.Element{EID: id, Text: label, Pos: geom.Vec2{X: x, Y: y}}
}

func ids(elements []host.UIElement) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = e.ID()
	}
	return out
}

func TestDefaultSortRowsTopToBottom(t *testing.T) {
	// Two y-bands of two elements each; jitter inside the row bucket.
	elements := []host.UIElement{
		el("low-right", "D", 4, 1.04),
		el("high-left", "A", 1, 2.0),
		el("low-left", "C", 1, 0.96),
		el("high-right", "B", 4, 1.98),
	}

	got := Sort(elements, nil)
	assert.Equal(t, []string{"high-left", "high-right", "low-left", "low-right"}, ids(got))
}

func TestSortDeterministicAcrossInputOrder(t *testing.T) {
	a := el("a", "A", 1, 2)
	b := el("b", "B", 4, 2)
	c := el("c", "C", 1, 1)
	d := el("d", "D", 4, 1)

	first := Sort([]host.UIElement{a, b, c, d}, nil)
	second := Sort([]host.UIElement{d, b, a, c}, nil)
	third := Sort([]host.UIElement{c, d, b, a}, nil)

	assert.Equal(t, ids(first), ids(second))
	assert.Equal(t, ids(first), ids(third))
}

func TestSortWithConfigOrderAndHide(t *testing.T) {
	elements := []host.UIElement{
		el("settings", "Settings", 0, 1),
		el("join", "Join Game", 0, 2),
		el("host", "Host Game", 0, 3),
		el("decor", "Decoration", 5, 3),
	}

	cfg := NewLayout().
		Order("Host Game", "Join Game").
		Hide("Decoration").
		Build()

	got := Sort(elements, &cfg)
	assert.Equal(t, []string{"host", "join", "settings"}, ids(got))
}

func TestSortConfigSkipsMissingOrderedElements(t *testing.T) {
	elements := []host.UIElement{
		el("join", "Join Game", 0, 2),
	}
	cfg := NewLayout().Order("Host Game", "Join Game").Build()

	got := Sort(elements, &cfg)
	assert.Equal(t, []string{"join"}, ids(got))
}

func TestSortHideUnorganized(t *testing.T) {
	elements := []host.UIElement{
		el("join", "Join Game", 0, 2),
		el("host", "Host Game", 0, 3),
		el("stray", "Stray", 0, 1),
	}
	cfg := NewLayout().Order("Host Game").HideUnorganized().Build()

	got := Sort(elements, &cfg)
	assert.Equal(t, []string{"host"}, ids(got))
}

func TestSortRequiredUnmetFallsBackToDefault(t *testing.T) {
	elements := []host.UIElement{
		el("join", "Join Game", 0, 2),
		el("settings", "Settings", 0, 1),
	}
	cfg := NewLayout().
		Order("Settings", "Join Game").
		Require("Host Game").
		Build()

	got := Sort(elements, &cfg)
	require.Len(t, got, 2)
	// Default positional order, not the declared order.
	assert.Equal(t, []string{"join", "settings"}, ids(got))
}

func TestSortMatchesByIDCaseInsensitive(t *testing.T) {
	elements := []host.UIElement{
		el("BtnHost", "", 0, 1),
		el("BtnJoin", "", 0, 2),
	}
	cfg := NewLayout().Order("btnhost", "btnjoin").Build()

	got := Sort(elements, &cfg)
	assert.Equal(t, []string{"BtnHost", "BtnJoin"}, ids(got))
}
