package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gridsnake/agent"
	"gridsnake/api"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/logging"
	"gridsnake/publish"
	"gridsnake/ui"
)

func main() {
	headless := flag.Bool("headless", false, "Run without a window")
	autopilot := flag.Bool("autopilot", false, "Let the built-in pilot play")
	restartDelay := flag.Duration("restart-delay", time.Second, "Autopilot pause before restarting a finished round")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	snakeLength := flag.Int("snake-length", 1, "Starting snake length (1 or 3)")
	avoidFood := flag.Bool("avoid-food-overlap", false, "Never place food on the snake")
	dataDir := flag.String("data", "data", "Directory for gamestats.json (empty = memory only)")
	httpAddr := flag.String("http", "", "Serve the snapshot feed on this address, e.g. :8080")
	mqttBroker := flag.String("mqtt-broker", "", "Publish snapshots to this MQTT broker, e.g. tcp://localhost:1883")
	mqttTopic := flag.String("mqtt-topic", "gridsnake/snapshot", "MQTT topic for snapshots")
	logLevel := flag.String("log-level", "INFO", "Log level")
	theme := flag.String("theme", game.Themes[0], "Initial theme (sci, matrix, space)")
	flag.Parse()

	logging.InitLogging(*logLevel)

	store, err := manager.NewStateManager(*dataDir)
	if err != nil {
		logging.Log.Warningf("keeping scores in memory: %v", err)
		store = manager.NewMemoryStateManager()
	}

	if *snakeLength != 1 && *snakeLength != 3 {
		logging.Log.Warningf("unsupported snake length %d, using 1", *snakeLength)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	logging.Log.Debugf("food seed %d", *seed)

	bus := game.NewEventBus()
	g := game.NewGame(game.Config{
		SnakeLength:      *snakeLength,
		Seed:             *seed,
		AvoidFoodOverlap: *avoidFood,
		Theme:            *theme,
	}, store, bus)
	runner := game.NewRunner(g, nil)

	bus.Subscribe(game.EventRoundOver, func(e game.Event) {
		logging.Log.Noticef("Game over: score %d, best %d", e.Snapshot.Score, e.Snapshot.BestScore)
	})
	bus.Subscribe(game.EventNewBest, func(e game.Event) {
		logging.Log.Noticef("New best score: %d", e.Snapshot.BestScore)
	})

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()
	grp, ctx := errgroup.WithContext(ctx)

	if *httpAddr != "" {
		srv := api.NewServer(store)
		bus.Subscribe(game.EventSnapshot, srv.Observe)
		grp.Go(func() error {
			return srv.Run(ctx, *httpAddr)
		})
	}

	if *mqttBroker != "" {
		client := publish.NewClient(*mqttBroker, "gridsnake-"+uuid.NewString())
		pub := publish.NewPublisher(client, *mqttTopic)
		bus.Subscribe(game.EventSnapshot, pub.Observe)
		grp.Go(func() error {
			if err := publish.Connect(ctx, client); err != nil {
				return ignoreShutdown(err)
			}
			return ignoreShutdown(pub.Run(ctx))
		})
		defer func() {
			if client.IsConnected() {
				client.Disconnect(250)
			}
		}()
	}

	if *autopilot {
		pilot := agent.NewAutopilot(*restartDelay)
		bus.Subscribe(game.EventSnapshot, pilot.Observe)
		grp.Go(func() error {
			return ignoreShutdown(pilot.Run(ctx, runner))
		})
	}

	var renderer *ui.Renderer
	if !*headless {
		renderer = ui.NewRenderer()
		bus.Subscribe(game.EventSnapshot, renderer.Observe)
	}

	// all subscribers are registered; the run loop may start emitting
	grp.Go(func() error {
		defer cancel()
		return ignoreShutdown(runner.Run(ctx))
	})

	if !*headless {
		runWindow(ctx, runner, renderer)
		cancel()
	}

	if err := grp.Wait(); err != nil {
		logging.Log.Errorf("%v", err)
		os.Exit(1)
	}
	logging.Log.Info("bye")
}

// runWindow owns the raylib thread until the window closes or ctx is done.
func runWindow(ctx context.Context, runner *game.Runner, renderer *ui.Renderer) {
	width, height := ui.WindowSize()
	rl.InitWindow(width, height, "Grid Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetExitKey(0) // Esc goes through the runner like Q
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		for _, cmd := range ui.PollInput() {
			if err := runner.Send(ctx, cmd); err != nil {
				return
			}
		}
		renderer.Draw()
	}
}

func ignoreShutdown(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, game.ErrStopped) {
		return nil
	}
	return err
}
