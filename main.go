package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/utils"
)

const defaultConfigPath = "config.json"

// cliOptions holds flag values; zero values leave the configuration untouched
type cliOptions struct {
	configPath       string
	rows             int
	cols             int
	interval         time.Duration
	aliveProbability float64
	maxGenerations   int
	seed             int64
	interactive      bool
	random           bool
	empty            bool
	noPool           bool
	stopWhenStagnant bool
}

func parseFlags() cliOptions {
	opts := cliOptions{configPath: defaultConfigPath}

	flaggy.SetName("go-gol")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.String(&opts.configPath, "c", "config", "Path of the JSON configuration file")
	flaggy.Int(&opts.rows, "y", "rows", "Number of grid rows")
	flaggy.Int(&opts.cols, "x", "cols", "Number of grid columns")
	flaggy.Duration(&opts.interval, "i", "interval", "Interval between generations, for example 100ms")
	flaggy.Float64(&opts.aliveProbability, "p", "probability", "Probability of a cell being alive when randomizing")
	flaggy.Int(&opts.maxGenerations, "s", "maxGenerations", "Stop running after this many generations")
	flaggy.Int64(&opts.seed, "", "seed", "Seed of the random source, random when 0")
	flaggy.Bool(&opts.interactive, "n", "interactive", "Start the interactive terminal UI")
	flaggy.Bool(&opts.random, "r", "random", "Start with a random grid")
	flaggy.Bool(&opts.empty, "e", "empty", "Start with an empty grid")
	flaggy.Bool(&opts.noPool, "", "no-pool", "Allocate every generation instead of recycling grids")
	flaggy.Bool(&opts.stopWhenStagnant, "", "stop-when-stagnant", "Stop running when the grid dies out or cycles")

	flaggy.Parse()
	return opts
}

// apply overrides config values with the flags that were set
func (o cliOptions) apply(config *utils.Config) {
	if o.rows != 0 {
		config.Rows = o.rows
	}
	if o.cols != 0 {
		config.Cols = o.cols
	}
	if o.interval != 0 {
		config.Interval = o.interval
	}
	if o.aliveProbability != 0 {
		config.AliveProbability = o.aliveProbability
	}
	if o.maxGenerations != 0 {
		config.MaxGenerations = o.maxGenerations
	}
	if o.seed != 0 {
		config.Seed = o.seed
	}
	if o.interactive {
		config.Interactive = true
	}
	if o.random {
		config.RandomStart = true
	}
	if o.empty {
		config.RandomStart = false
	}
	if o.noPool {
		config.UseMemoryPool = false
	}
	if o.stopWhenStagnant {
		config.StopWhenStagnant = true
	}
}

func loadConfig(opts cliOptions) (utils.Config, error) {
	config, err := utils.LoadConfig(opts.configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return config, err
		}
		fmt.Printf("Using default configuration (%s not found)\n", opts.configPath)
		config = utils.DefaultConfig()
	}

	opts.apply(&config)
	return config, config.Validate()
}

func main() {
	opts := parseFlags()

	config, err := loadConfig(opts)
	if err != nil {
		fmt.Printf("Invalid configuration: %+v\n", err)
		os.Exit(1)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctrl, renderer := initializeGame(config)

	if config.Interactive {
		err = runInteractive(ctx, ctrl, renderer)
	} else {
		displayGameInfo(config, ctrl.Snapshot())
		err = runHeadless(ctx, ctrl, renderer)
	}
	if err != nil {
		fmt.Printf("Error: %+v\n", err)
		os.Exit(1)
	}

	displayFinalStats(ctrl.Snapshot())
}
