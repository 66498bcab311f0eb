package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/berry-snake/audio"
	"github.com/lixenwraith/berry-snake/config"
	"github.com/lixenwraith/berry-snake/constants"
	"github.com/lixenwraith/berry-snake/core"
	"github.com/lixenwraith/berry-snake/engine"
	"github.com/lixenwraith/berry-snake/highscore"
	"github.com/lixenwraith/berry-snake/input"
	"github.com/lixenwraith/berry-snake/render"
	"github.com/lixenwraith/berry-snake/status"
	"github.com/lixenwraith/berry-snake/systems"
)

// errQuit ends the errgroup on a user quit
var errQuit = errors.New("quit")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stdout)
		return 0
	}
	if err != nil {
		cfmt.Printf("{{error:}}::lightRed|bold %v\n", err)
		return 2
	}

	sessionID := uuid.NewString()
	logger, logFile, err := setupLogging(cfg.LogPath, cfg.Debug)
	if err != nil {
		cfmt.Printf("{{warning:}}::lightYellow|bold logging disabled: %v\n", err)
	}
	logger = logger.With().Str("session", sessionID).Logger()
	logger.Info().
		Str("difficulty", cfg.Difficulty.Key()).
		Str("store", cfg.Store).
		Bool("fruit_retry", cfg.FruitRetry).
		Msg("starting")

	stats := status.NewRegistry()
	stats.Strings.Get(status.KeySession).Store(sessionID)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	recorder := openRecorder(ctx, cfg, logger)

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		logger.Info().Err(err).Msg("continuing without audio")
	}

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		cfmt.Printf("{{error:}}::lightRed|bold terminal init: %v\n", err)
		shutdown(logger, sound, recorder, logFile)
		return 1
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashCleanup(screen.Fini)

	state := engine.NewGameState(
		engine.WithSeed(cfg.Seed),
		engine.WithFruitRetry(cfg.FruitRetry),
	)
	driver := engine.NewLoopDriver(state, cfg.Difficulty,
		engine.WithLogger(logger),
		engine.WithRegistry(stats),
	)

	var debugStats *status.Registry
	if cfg.Debug {
		debugStats = stats
	}
	notifier := systems.NewNotifier()
	renderer := render.NewTerminalRenderer(screen, recorder, debugStats)

	// Score system first so the game-over frame shows the updated best
	driver.RegisterHandler(systems.NewScoreSystem(recorder, logger))
	driver.RegisterHandler(systems.NewAudioSystem(sound))
	driver.RegisterHandler(notifier)
	driver.RegisterHandler(renderer)

	renderer.HandleReset(driver.Snapshot())
	driver.Start()

	g, gctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, constants.InputPollBuffer)

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		translator := input.NewTranslator()
		for {
			select {
			case <-gctx.Done():
				return nil
			case ev := <-events:
				if _, ok := ev.(*tcell.EventResize); ok {
					screen.Sync()
				}
				if handleIntent(translator.Process(ev), driver, notifier, renderer) {
					return errQuit
				}
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		stopDriver(driver, logger)
		// Unblocks PollEvent
		screen.Fini()
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		logger.Error().Err(err).Msg("game loop")
	}

	final := driver.Snapshot()
	shutdown(logger, sound, recorder, logFile)
	printSummary(final, recorder.Table(), stats)
	return 0
}

// openRecorder loads high scores from the configured store, falling back to memory when unreachable
func openRecorder(ctx context.Context, cfg config.Config, logger zerolog.Logger) *highscore.Recorder {
	openCtx, cancel := context.WithTimeout(ctx, constants.StoreTimeout)
	defer cancel()

	store, err := highscore.Open(openCtx, cfg.StoreOptions())
	if err != nil {
		logger.Warn().Err(err).Str("store", cfg.Store).Msg("high-score store unavailable, scores kept in memory")
		cfmt.Printf("{{warning:}}::lightYellow|bold %s store unavailable, scores will not persist: %v\n", cfg.Store, err)
		store = highscore.NewMemoryStore(highscore.Table{})
	}
	return highscore.NewRecorder(openCtx, store, logger)
}

// gameControl is the subset of the loop driver driven by input
type gameControl interface {
	QueueDirection(dir core.Direction)
	Restart()
	SetDifficulty(d core.Difficulty)
}

// restartGate reports whether a finished episode is waiting for restart
type restartGate interface {
	RestartAvailable() bool
}

// redrawer repaints the last frame
type redrawer interface {
	Redraw()
}

// handleIntent applies one intent, returns true on quit
func handleIntent(intent *input.Intent, ctl gameControl, gate restartGate, view redrawer) bool {
	if intent == nil {
		return false
	}
	switch intent.Type {
	case input.IntentQuit:
		return true
	case input.IntentDirection:
		ctl.QueueDirection(intent.Direction)
	case input.IntentRestart:
		// Restart is offered only once the episode has ended
		if gate.RestartAvailable() {
			ctl.Restart()
		}
	case input.IntentDifficulty:
		ctl.SetDifficulty(intent.Difficulty)
	case input.IntentResize:
		view.Redraw()
	}
	return false
}

// stopDriver stops the scheduler, logging if it overruns the shutdown budget
func stopDriver(driver *engine.LoopDriver, logger zerolog.Logger) {
	done := make(chan struct{})
	core.Go(func() {
		driver.Stop()
		close(done)
	})
	select {
	case <-done:
	case <-time.After(constants.StopTimeout):
		logger.Warn().Dur("timeout", constants.StopTimeout).Msg("scheduler did not stop in time")
	}
}

// shutdown releases every resource and logs the combined error
func shutdown(logger zerolog.Logger, sound *audio.SoundManager, recorder *highscore.Recorder, logFile *os.File) {
	var result *multierror.Error
	if err := sound.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("audio: %w", err))
	}
	if err := recorder.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("high-score store: %w", err))
	}
	if err := result.ErrorOrNil(); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("stopped")
	if logFile != nil {
		logFile.Close()
	}
}

func printSummary(final engine.Snapshot, table highscore.Table, stats *status.Registry) {
	cfmt.Printf("{{Berry Snake}}::lightGreen|bold  last score {{%d}}::bold on {{%s}}::bold\n", final.Score, final.Difficulty)
	cfmt.Printf("  best  easy {{%d}}::lightYellow  medium {{%d}}::lightYellow  hard {{%d}}::lightYellow\n",
		table.Easy, table.Medium, table.Hard)
	cfmt.Printf("  {{%s}}::gray\n", stats.Summary())
}
