package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"gridsnake/game"
	"gridsnake/ui"
	"gridsnake/ui/fx"
	"gridsnake/ui/sound"
	"gridsnake/ui/term"

	"github.com/fatih/color"
)

var (
	colorTitle = color.New(color.FgGreen, color.Bold)
	colorInfo  = color.New(color.FgCyan)
	colorAlert = color.New(color.FgRed)
)

func main() {
	configPath := flag.String("config", "", "Path to an ini file with a [game] section")
	grid := flag.Int("grid", 0, "Grid size in cells (overrides config)")
	speed := flag.Int("speed", 0, "Initial tick interval in milliseconds (overrides config)")
	seed := flag.Uint64("seed", 0, "Food placement seed, 0 seeds from the clock")
	frontend := flag.String("frontend", "window", "Frontend to use: window or terminal")
	withSound := flag.Bool("sound", true, "Play sound cues")
	autoRestart := flag.Duration("autorestart", 0, "Restart automatically this long after game over, 0 disables")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		colorAlert.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	// Flags given on the command line win over the ini file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "grid":
			cfg.GridSize = *grid
		case "speed":
			cfg.InitialInterval = time.Duration(*speed) * time.Millisecond
		case "seed":
			cfg.Seed = *seed
		case "autorestart":
			cfg.AutoRestart = *autoRestart
		}
	})

	session, err := game.NewSession(cfg)
	if err != nil {
		colorAlert.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	var cues fx.Cues = fx.Silent{}
	if *withSound {
		sm := sound.NewManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer sm.Cleanup()
			cues = sm
		}
	}

	colorTitle.Printf("Snake %dx%d", cfg.GridSize, cfg.GridSize)
	colorInfo.Printf(" tick %v, floor %v, %s frontend\n", cfg.InitialInterval, cfg.MinInterval, *frontend)

	switch *frontend {
	case "window":
		opts := ui.DefaultWindowOptions()
		opts.Cues = cues
		ui.RunWindow(session, opts)
	case "terminal":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		opts := term.DefaultOptions()
		opts.Cues = cues
		err := term.Run(ctx, session, opts)
		stop()
		if err != nil {
			colorAlert.Fprintf(os.Stderr, "terminal: %v\n", err)
			os.Exit(1)
		}
	default:
		colorAlert.Fprintf(os.Stderr, "unknown frontend %q\n", *frontend)
		os.Exit(2)
	}

	printScoreboard(session)
}

func loadConfig(path string) (game.Config, error) {
	if path == "" {
		return game.DefaultConfig(), nil
	}
	return game.LoadConfig(path)
}

func printScoreboard(session *game.Session) {
	stats := session.Stats()
	if stats.GetGamesPlayed() == 0 {
		return
	}
	colorTitle.Println("Scoreboard")
	colorInfo.Printf("  games   %d\n", stats.GetGamesPlayed())
	colorInfo.Printf("  high    %d\n", stats.GetHighScore())
	colorInfo.Printf("  average %.1f\n", stats.GetAverageScore())
	colorInfo.Printf("  median  %.1f\n", stats.GetMedianScore())
	colorInfo.Printf("  longest %v\n", stats.GetMaxDuration().Round(time.Second))
}
