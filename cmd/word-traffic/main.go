package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/lixenwraith/word-traffic/audio"
	"github.com/lixenwraith/word-traffic/constants"
	"github.com/lixenwraith/word-traffic/core"
	"github.com/lixenwraith/word-traffic/engine"
	"github.com/lixenwraith/word-traffic/modes"
	"github.com/lixenwraith/word-traffic/render"
	"github.com/lixenwraith/word-traffic/render/renderers"
	"github.com/lixenwraith/word-traffic/server"
	"github.com/lixenwraith/word-traffic/session"
	"github.com/lixenwraith/word-traffic/wordbank"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag     = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	listenFlag    = flag.String("listen", "", "Serve the HTTP and websocket API on this address")
	headlessFlag  = flag.Bool("headless", false, "Run the game without a terminal (requires --listen)")
	seedFlag      = flag.Int64("seed", 0, "Random seed for words and lanes, 0 picks one from the clock")
)

const (
	schedulerBuffer = 256
	shutdownTimeout = 3 * time.Second
)

func main() {
	flag.Parse()

	// Optional .env; real environment wins
	_ = godotenv.Load()

	cfg, err := loadConfig(*listenFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "word-traffic: %v\n", err)
		os.Exit(1)
	}

	var logger zerolog.Logger
	if *headlessFlag {
		if cfg.Listen == "" {
			fmt.Fprintln(os.Stderr, "word-traffic: --headless requires --listen or "+EnvListen)
			os.Exit(1)
		}
		logger = consoleLogger(os.Stderr, cfg.LogLevel)
	} else {
		var logFile *os.File
		logger, logFile = setupLogging(*debugFlag, cfg.LogLevel)
		if logFile != nil {
			defer logFile.Close()
		}
	}
	log.Logger = logger

	if err := run(cfg, *headlessFlag, logger); err != nil {
		logger.Error().Err(err).Msg("exiting")
		fmt.Fprintf(os.Stderr, "word-traffic: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg appConfig, headless bool, logger zerolog.Logger) error {
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	words, err := wordbank.Default(rng)
	if err != nil {
		return fmt.Errorf("load word bank: %w", err)
	}
	for _, c := range words.PrefixConflicts() {
		logger.Warn().Str("conflict", c.String()).Msg("word bank prefix conflict")
	}

	sched := engine.NewLoopScheduler(schedulerBuffer, logger)
	gctx, err := engine.NewGameContext(cfg.Game, words, sched, engine.GameContextOptions{
		Rand:   rng,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	sess := session.New(gctx)
	if (headless || *debugFlag) && logger.GetLevel() <= zerolog.DebugLevel {
		sess.Subscribe(session.NewEventLogger(logger))
	}
	logger.Info().Int64("seed", seed).Int("max_cars", cfg.Game.MaxEntities).Msg("game configured")

	sound := audio.NewSoundManager(audio.LoadAudioConfig(), logger)
	if !headless {
		if err := sound.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			defer sound.Cleanup()
		}
		sess.Subscribe(sound)
	}

	var srv *server.Server
	if cfg.Listen != "" {
		hub := server.NewHub(sess, logger)
		sess.Subscribe(hub)
		srv = server.New(sess, hub, gctx.Metrics, server.Options{Addr: cfg.Listen, Logger: logger})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	core.Go(func() {
		if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("game loop stopped")
		}
	})
	defer sched.Stop()

	if srv != nil {
		core.Go(func() {
			if err := srv.Start(); err != nil {
				logger.Error().Err(err).Msg("server failed")
				cancel()
			}
		})
		defer func() {
			sctx, scancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer scancel()
			if err := srv.Stop(sctx); err != nil {
				logger.Warn().Err(err).Msg("server shutdown")
			}
		}()
	}

	if headless {
		sess.Start()
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		return nil
	}
	return runTerminal(ctx, sess, sound, logger)
}

// applyColorMode steers tcell's terminal capability detection
func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	}
}

func runTerminal(ctx context.Context, sess *session.Session, sound *audio.SoundManager, logger zerolog.Logger) error {
	applyColorMode(*colorModeFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Crash in any core.Go goroutine restores the terminal first
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.SetStyle(render.DefaultStyle)
	screen.HideCursor()

	width, height := screen.Size()
	orchestrator := render.NewRenderOrchestrator(screen, width, height)
	renderers.RegisterAll(orchestrator)

	inputHandler := modes.NewInputHandler(sess, sound, orchestrator)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	clock := sess.Context().Time
	logger.Info().Int("width", width).Int("height", height).Msg("terminal ready")

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !inputHandler.HandleEvent(ev) {
				logger.Info().Msg("quit requested")
				return nil
			}

		case <-frameTicker.C:
			w, h := orchestrator.Buffer().Bounds()
			renderCtx := render.NewRenderContext(sess.Snapshot(), w, h, clock.Now(), sound.IsMuted())
			orchestrator.RenderFrame(renderCtx)
		}
	}
}
