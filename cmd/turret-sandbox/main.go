package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sentry/audio"
	"github.com/lixenwraith/sentry/config"
	"github.com/lixenwraith/sentry/engine"
	"github.com/lixenwraith/sentry/parameter"
)

var (
	configFlag   = flag.String("config", "", "Path to a turret TOML file (default: ./turret.toml, then embedded)")
	muteFlag     = flag.Bool("mute", false, "Start with audio cues muted")
	hostilesFlag = flag.Int("hostiles", 4, "Number of hostile dummies kept in the arena")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
)

func main() {
	flag.Parse()

	logFile, logger := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, source, err := config.LoadAuto(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	savePath := *configFlag
	if savePath == "" {
		savePath = config.DefaultConfigPath
	}

	player := audio.NewCuePlayer(logger)
	player.SetMuted(*muteFlag)
	if err := player.Initialize(); err == nil {
		defer player.Close()
	}

	clock := engine.NewTimeProvider()
	s, err := newSandbox(cfg, savePath, *hostilesFlag, clock, player, uint64(time.Now().UnixNano()), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build turret: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	setCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
		screen.Fini()
	}()

	run(screen, s, clock)
}

// run drives input, simulation and rendering from one goroutine at the sandbox tick rate
func run(screen tcell.Screen, s *sandbox, clock engine.Clock) {
	ticker := time.NewTicker(parameter.SandboxTickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	goSafe(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	last := clock.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			now := clock.Now()
			s.step(now.Sub(last), now)
			last = now
			draw(screen, s, now)
		}
	}
}
