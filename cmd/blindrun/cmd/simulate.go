package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blindrun/blindrun/internal/geom"
	"github.com/blindrun/blindrun/internal/history"
	"github.com/blindrun/blindrun/internal/host"
	"github.com/blindrun/blindrun/internal/overlay"
	"github.com/blindrun/blindrun/internal/rooms"
	"github.com/blindrun/blindrun/internal/speech"
	"github.com/blindrun/blindrun/internal/testutil"
	"github.com/blindrun/blindrun/internal/ui"
)

var tickInterval time.Duration

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a scripted walkthrough through the full overlay",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().DurationVar(&tickInterval, "tick", 300*time.Millisecond, "time between script ticks")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(command *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(command.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sink, cleanup, err := buildSink()
	if err != nil {
		return err
	}
	defer cleanup()

	world, rc, set := buildDemoMap()
	ov := overlay.New(world, rc, set, sink, overlay.Options{RequireVisible: cfg.RequireVisible})
	ov.SetMenuConfig("lobby", lobbyLayout())

	slog.Info("simulation starting", "rooms", set.IDs(), "tick", tickInterval)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return runScript(ctx, ov) })
	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}

	return nil
}

// buildSink resolves the speech sink chain from config: bridge or
// stdout, optionally recorded to the history transcript.
func buildSink() (speech.Sink, func(), error) {
	var sink speech.Sink
	cleanup := func() {}

	if cfg.BridgeURL != "" {
		bridge, err := speech.DialBridge(cfg.BridgeURL)
		if err != nil {
			return nil, nil, err
		}
		sink = bridge
		cleanup = func() { bridge.Close() }
	} else {
		sink = speech.NewStdout()
	}

	if cfg.HistoryPath != "" {
		store, err := history.Open(cfg.HistoryPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening history: %w", err)
		}
		inner := cleanup
		cleanup = func() {
			store.Close()
			inner()
		}
		sink = &history.RecordingSink{Next: sink, Store: store}
	}

	return sink, cleanup, nil
}

// buildDemoMap lays out two rooms joined by a hallway, with a wall
// occluding one console and three task consoles in Electrical.
func buildDemoMap() (host.World, host.Raycaster, *rooms.Set) {
	set := rooms.NewSet()
	set.Add("ElectricalArea", rooms.NewPolygon(
		geom.Vec2{X: 0, Y: 0},
		geom.Vec2{X: 10, Y: 0},
		geom.Vec2{X: 10, Y: 8},
		geom.Vec2{X: 0, Y: 8},
	))
	set.Add("MedbayArea", rooms.NewBox(geom.Vec2{X: 14, Y: 0}, geom.Vec2{X: 20, Y: 6}))

	world := &testutil.World{Consoles: []host.Object{
		&testutil.Console{
			ObjectID: "elec-wiring", Name: "FixWiringConsole",
			Pos: geom.Vec2{X: 2.4, Y: 2.2}, TaskTypes: []string{"FixWiring"},
			Task: true, Reach: 1.0,
		},
		&testutil.Console{
			ObjectID: "elec-upload", Name: "UploadDataConsole",
			Pos: geom.Vec2{X: 8.5, Y: 2.0}, TaskTypes: []string{"UploadData"},
			Task: true, Reach: 1.0,
		},
		&testutil.Console{
			ObjectID: "med-scan", Name: "SubmitScanConsole",
			Pos: geom.Vec2{X: 17, Y: 3}, TaskTypes: []string{"SubmitScan"},
			Task: true, Reach: 1.2,
		},
	}}

	rc := &testutil.Raycaster{Walls: []testutil.Wall{
		{A: geom.Vec2{X: 6, Y: 0.5}, B: geom.Vec2{X: 6, Y: 3.5}},
	}}

	return world, rc, set
}

// lobbyLayout orders the lobby menu for keyboard traversal and narrates
// the host button with custom speech.
func lobbyLayout() ui.LayoutConfig {
	return ui.NewLayout().
		Order("Host Game", "Join Game", "Settings").
		Hide("Decoration").
		Require("Host Game").
		SpeakText("Host Game", "Host a new game").
		OnFocus("Settings", func(el host.UIElement) {
			slog.Debug("settings focused", "element", el.ID())
		}).
		Build()
}

// runScript walks the player from the hallway into Electrical, runs the
// position and nearest-task commands, then traverses the lobby menu.
func runScript(ctx context.Context, ov *overlay.Overlay) error {
	type step struct {
		pos geom.Vec2
		act func()
	}

	steps := []step{
		{pos: geom.Vec2{X: 12, Y: 4}},                          // hallway between rooms
		{pos: geom.Vec2{X: 9, Y: 4}},                           // enter Electrical
		{pos: geom.Vec2{X: 5, Y: 4}, act: ov.AnnouncePosition}, // mid-room scan
		{pos: geom.Vec2{X: 3, Y: 3}, act: ov.FindNearest},
		{pos: geom.Vec2{X: 12, Y: 4}}, // back to the hallway
		{pos: geom.Vec2{X: 16, Y: 3}}, // into Medbay
	}

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for _, s := range steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		ov.OnPlayerTick(host.PlayerState{Position: s.pos, Owned: true})
		if s.act != nil {
			s.act()
		}
	}

	panel := &testutil.Panel{Scene: "lobby", Items: []host.UIElement{
		&testutil.Element{EID: "btn-join", Pos: geom.Vec2{X: 0, Y: 2}, Text: "Join Game"},
		&testutil.Element{EID: "btn-host", Pos: geom.Vec2{X: 0, Y: 3}, Text: "Host Game"},
		&testutil.Element{EID: "btn-settings", Pos: geom.Vec2{X: 0, Y: 1}, Text: "Settings"},
		&testutil.Element{EID: "decor", Pos: geom.Vec2{X: 5, Y: 3}, Text: "Decoration"},
	}}

	uiSteps := []func(){
		func() { ov.OnUITick(panel) },
		func() { ov.FocusNext(panel) },
		func() { ov.FocusNext(panel) },
		func() { ov.Activate(panel) },
	}
	for _, act := range uiSteps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		act()
	}

	slog.Info("simulation finished")
	return nil
}
