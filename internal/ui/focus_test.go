package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blindrun/blindrun/internal/geom"
	"github.com/blindrun/blindrun/internal/host"
	"github.com/blindrun/blindrun/internal/speech"
	"github.com/blindrun/blindrun/internal/testutil"
)

func lobbyPanel() *testutil.Panel {
	return &testutil.Panel{Scene: "lobby", Items: []host.UIElement{
		&testutil.Element{EID: "join", Text: "Join Game", Pos: geom.Vec2{X: 0, Y: 2}},
		&testutil.Element{EID: "host", Text: "Host Game", Pos: geom.Vec2{X: 0, Y: 3}},
		&testutil.Element{EID: "settings", Text: "Settings", Pos: geom.Vec2{X: 0, Y: 1}},
	}}
}

func TestFocusTrackerAnnouncesNewMenu(t *testing.T) {
	sink := &speech.Memory{}
	tr := NewFocusTracker(sink)
	panel := lobbyPanel()

	tr.OnTick(panel)

	require.Len(t, sink.Lines, 2)
	assert.Equal(t, "3 menu items", sink.Lines[0])
	assert.Equal(t, "Host Game 1 of 3", sink.Lines[1], "top row is auto-focused")
	require.NotNil(t, panel.Current)
	assert.Equal(t, "host", panel.Current.ID())
}

func TestFocusTrackerReorderIsNotASetChange(t *testing.T) {
	sink := &speech.Memory{}
	tr := NewFocusTracker(sink)
	panel := lobbyPanel()

	tr.OnTick(panel)
	spoken := len(sink.Lines)

	// Same members, different input order: silence.
	panel.Items[0], panel.Items[2] = panel.Items[2], panel.Items[0]
	tr.OnTick(panel)
	assert.Len(t, sink.Lines, spoken)
}

func TestFocusTrackerRemovalIsASetChange(t *testing.T) {
	sink := &speech.Memory{}
	tr := NewFocusTracker(sink)
	panel := lobbyPanel()

	tr.OnTick(panel)
	spoken := len(sink.Lines)

	panel.Items = panel.Items[:2] // drop "settings"
	tr.OnTick(panel)
	require.Greater(t, len(sink.Lines), spoken)
	assert.Equal(t, "2 menu items", sink.Lines[spoken])
}

func TestFocusTrackerAnnouncesHostFocusMove(t *testing.T) {
	sink := &speech.Memory{}
	tr := NewFocusTracker(sink)
	panel := lobbyPanel()

	tr.OnTick(panel)
	panel.Current = panel.Items[0] // host moved focus to "join"
	tr.OnTick(panel)

	assert.Equal(t, "Join Game 2 of 3", sink.Last())
	assert.True(t, sink.Interrupts[len(sink.Interrupts)-1])
}

func TestFocusTrackerCustomSpeechAndAction(t *testing.T) {
	sink := &speech.Memory{}
	tr := NewFocusTracker(sink)

	var actioned []string
	tr.SetMenuConfig("lobby", NewLayout().
		SpeakText("Join Game", "Join an existing game").
		OnFocus("Join Game", func(el host.UIElement) {
			actioned = append(actioned, el.ID())
		}).
		Build())

	panel := lobbyPanel()
	tr.OnTick(panel)
	panel.Current = panel.Items[0] // "join"
	tr.OnTick(panel)

	assert.Equal(t, "Join an existing game 2 of 3", sink.Last())
	assert.Equal(t, []string{"join"}, actioned)
}

func TestFocusTrackerSpeechProviderBeatsText(t *testing.T) {
	sink := &speech.Memory{}
	tr := NewFocusTracker(sink)
	tr.SetMenuConfig("lobby", NewLayout().
		SpeakText("Host Game", "plain text").
		SpeakWith("Host Game", func(el host.UIElement) string {
			return "provided for " + el.ID()
		}).
		Build())

	panel := lobbyPanel()
	tr.OnTick(panel)

	assert.Equal(t, "provided for host 1 of 3", sink.Last())
}

func TestFocusNavigationWrapsAndClicks(t *testing.T) {
	sink := &speech.Memory{}
	tr := NewFocusTracker(sink)
	panel := lobbyPanel()

	tr.OnTick(panel) // focus "host" (1 of 3)

	tr.FocusNext(panel)
	assert.Equal(t, "Join Game 2 of 3", sink.Last())
	tr.FocusNext(panel)
	assert.Equal(t, "Settings 3 of 3", sink.Last())
	tr.FocusNext(panel)
	assert.Equal(t, "Host Game 1 of 3", sink.Last(), "wraps around")

	tr.FocusPrev(panel)
	assert.Equal(t, "Settings 3 of 3", sink.Last())

	tr.Activate(panel)
	assert.Equal(t, []string{"settings"}, panel.Clicked)
}

func TestFocusTrackerEmptiedMenu(t *testing.T) {
	sink := &speech.Memory{}
	tr := NewFocusTracker(sink)
	panel := lobbyPanel()

	tr.OnTick(panel)
	spoken := len(sink.Lines)

	panel.Items = nil
	panel.Current = nil
	tr.OnTick(panel)
	require.Len(t, sink.Lines, spoken+1)
	assert.Equal(t, "0 menu items", sink.Lines[spoken])

	// Navigation over an empty order is a silent no-op.
	tr.FocusNext(panel)
	tr.Activate(panel)
	assert.Len(t, sink.Lines, spoken+1)
	assert.Empty(t, panel.Clicked)
}
