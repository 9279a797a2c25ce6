package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol/game"
	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
	"github.com/sheikhrachel/go-gol/view"
)

// initializeGame sets up the engine, the controller and the initial grid
func initializeGame(config utils.Config) (*game.Controller, *model.TerminalRenderer) {
	var opts []model.EngineOption
	if config.UseMemoryPool {
		opts = append(opts, model.WithPool(model.NewGridPool()))
	}
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}

	ctrl := game.NewController(config, model.NewEngine(opts...))
	if config.RandomStart {
		ctrl.Randomize()
	}

	return ctrl, model.NewTerminalRenderer(true)
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, st game.State) {
	fmt.Printf("Features: Memory Pool: %v, Stop when stagnant: %v\n",
		config.UseMemoryPool, config.StopWhenStagnant)
	fmt.Printf("Grid: %dx%d | Interval: %v | Initial living cells: %d\n",
		config.Rows, config.Cols, config.Interval, st.LiveCells)
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// displayGameStatus shows the current game status
func displayGameStatus(st game.State) {
	density := float64(st.LiveCells) / float64(st.Grid.Rows()*st.Grid.Cols()) * 100

	status := "Active"
	switch {
	case st.LiveCells == 0:
		status = "Extinct"
	case st.Stagnant:
		status = "Stagnant"
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		st.Generation, st.LiveCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		st.Stats.GenerationsPerSecond, st.Stats.AveragePopulation, st.Stats.Runtime().Seconds())
	fmt.Println()
}

// displayFinalStats prints a summary when the program exits
func displayFinalStats(st game.State) {
	fmt.Println("\n🛑 Shutting down gracefully...")
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		st.Generation, st.Stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		st.Stats.GenerationsPerSecond, st.Stats.AveragePopulation)
}

// runHeadless redraws the terminal after every generation until ctx is done
// or the simulation stops by itself
func runHeadless(ctx context.Context, ctrl *game.Controller, renderer *model.TerminalRenderer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	finished := make(chan string, 1)
	ctrl.Subscribe(func(st game.State) {
		renderer.Clear()
		displayGameStatus(st)
		renderer.Display(st.Grid)
		if !st.Running && st.StopReason != "" {
			select {
			case finished <- st.StopReason:
			default:
			}
		}
	})

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return ctrl.Run(ctx)
	})
	eg.Go(func() error {
		select {
		case reason := <-finished:
			fmt.Printf("\n🏁 Simulation stopped: %s\n", reason)
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	ctrl.Start()
	return eg.Wait()
}

// runInteractive runs the terminal UI until the user quits or ctx is done
func runInteractive(ctx context.Context, ctrl *game.Controller, renderer *model.TerminalRenderer) error {
	ui, err := view.NewConsoleUI(ctrl, renderer)
	if err != nil {
		return err
	}
	defer ui.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return ctrl.Run(ctx)
	})
	eg.Go(func() error {
		defer cancel()
		return ui.Start()
	})
	eg.Go(func() error {
		<-ctx.Done()
		ui.Quit()
		return nil
	})

	return eg.Wait()
}
