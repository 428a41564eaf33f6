package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"liftsim/src/config"
	"liftsim/src/elev"
	"liftsim/src/executor"
	"liftsim/src/input"
	"liftsim/src/timer"
	"liftsim/src/types"
	"liftsim/src/utils"

	"github.com/xyproto/randomstring"
)

func main() {
	configPath := flag.String("config", "liftsim.yaml", "YAML config file")
	envPath := flag.String("env", ".env", "Env file with LIFTSIM_* overrides")
	floors := flag.Int("floors", 0, "Number of floors (overrides config)")
	capacity := flag.Int("capacity", 0, "Cabin capacity (overrides config)")
	seed := flag.Int64("seed", 0, "Random seed (overrides config, 0 keeps it)")
	headless := flag.Bool("headless", false, "Run without keyboard and display")
	ticks := flag.Int("ticks", 1000, "Ticks to simulate in headless mode")
	verbose := flag.Bool("v", false, "Also log to stderr at debug level")
	logDir := flag.String("log", ".", "Directory for the run log")
	flag.Parse()

	runID := randomstring.EnglishFrequencyString(10)
	logPath := filepath.Join(*logDir, "liftsim-"+runID+".log")
	logFile, err := os.Create(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if *verbose {
		elev.InitLogger(io.MultiWriter(logFile, os.Stderr), slog.LevelDebug)
	} else {
		elev.InitLogger(logFile, slog.LevelInfo)
	}

	cfg, err := loadConfig(*configPath, *envPath)
	if err == nil {
		cfg, err = applyFlags(cfg, *floors, *capacity, *seed)
	}
	if err != nil {
		slog.Error("Invalid configuration", "err", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	slog.Info("Starting", "run", runID, "floors", cfg.Floors, "capacity", cfg.Capacity,
		"interval", cfg.TickInterval, "spawnChance", cfg.SpawnChance, "seed", cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := executor.NewSim(cfg, rand.New(rand.NewSource(cfg.Seed)))

	if *headless {
		executor.RunHeadless(ctx, sim, *ticks)
		return
	}

	cmdCh := make(chan types.Command)
	pauseCh := make(chan struct{})
	tickCh := make(chan struct{}, 1)
	clockCh := make(chan timer.TimerAction)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		timer.Clock(ctx, cfg.TickInterval, tickCh, clockCh)
	}()
	go func() {
		defer wg.Done()
		if err := input.Poll(ctx, cmdCh, pauseCh, stop); err != nil {
			slog.Error("Keyboard input failed", "err", err)
			stop()
		}
	}()

	executor.Run(ctx, sim, cmdCh, tickCh, pauseCh, clockCh, func(f types.Frame) {
		utils.ClearScreen(os.Stdout)
		utils.Render(os.Stdout, f)
	})
	// The keyboard must be released before the terminal is used again.
	wg.Wait()
	fmt.Printf("Stopped at time %d, log in %s\n", sim.Now(), logPath)
}

func loadConfig(configPath string, envPath string) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.ApplyEnv(envPath)
}

func applyFlags(cfg config.Config, floors int, capacity int, seed int64) (config.Config, error) {
	if floors != 0 {
		cfg.Floors = floors
	}
	if capacity != 0 {
		cfg.Capacity = capacity
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, cfg.Validate()
}
