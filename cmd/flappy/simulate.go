package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/sim"
)

var (
	flagFrames    int
	flagDT        float64
	flagFlapEvery int
	flagAutopilot bool
	flagTrace     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless",
	Long: `Run the game without a terminal UI and print the outcome.

The first frame always flaps to start the run. After that the avatar
flaps every --flap-every frames, or steers itself with --autopilot.
The run stops at game over or after --frames frames. With a fixed
--seed the output is identical on every run.

Examples:
  flappy simulate --seed 7
  flappy simulate --seed 7 --autopilot --frames 3600
  flappy simulate --seed 7 --flap-every 20 --trace`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Maximum number of frames")
	simulateCmd.Flags().Float64Var(&flagDT, "dt", 1.0/60, "Seconds per frame")
	simulateCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 0, "Flap every N frames (0 = never)")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Flap toward the next gap")
	simulateCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print one line per frame")
}

// simOptions controls a headless run.
type simOptions struct {
	Frames    int
	DT        float64
	FlapEvery int
	Autopilot bool
	Trace     bool
}

// simSummary is the outcome of a headless run.
type simSummary struct {
	Frames   int
	Score    int
	Distance float64
	Speed    float64
	State    sim.State
	RunID    string
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}
	if !(flagDT > 0) || math.IsInf(flagDT, 1) {
		return fmt.Errorf("--dt must be a positive number, got %v", flagDT)
	}

	gameCfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source)

	game, err := flappy.New(gameCfg)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})

	out := cmd.OutOrStdout()
	sum := simulate(out, game, simOptions{
		Frames:    flagFrames,
		DT:        flagDT,
		FlapEvery: flagFlapEvery,
		Autopilot: flagAutopilot,
		Trace:     flagTrace,
	})

	logger.Info("simulation finished", "run", sum.RunID, "score", sum.Score, "state", sum.State)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-9s  %d\n", "Seed", seed)
	fmt.Fprintf(out, "  %-9s  %s\n", "Run", sum.RunID)
	fmt.Fprintf(out, "  %-9s  %d\n", "Frames", sum.Frames)
	fmt.Fprintf(out, "  %-9s  %d\n", "Score", sum.Score)
	fmt.Fprintf(out, "  %-9s  %.1f\n", "Distance", sum.Distance)
	fmt.Fprintf(out, "  %-9s  %.1f\n", "Speed", sum.Speed)
	fmt.Fprintf(out, "  %-9s  %s\n", "State", sum.State)
	return nil
}

// simulate drives a reset game until game over or opts.Frames frames.
func simulate(w io.Writer, game *flappy.Game, opts simOptions) simSummary {
	if opts.Trace {
		fmt.Fprintf(w, "  %-6s  %-7s  %-8s  %-8s  %-6s  %-5s  %-11s  %s\n",
			"Frame", "Time", "Y", "Vel", "Speed", "Score", "State", "Events")
	}

	var (
		snap   sim.Snapshot
		frames int
		t      float64
	)
	for frames < opts.Frames {
		snap = game.Snapshot()
		in := core.NewInputFrame()
		if wantFlap(frames, snap, opts) {
			in.Set(core.ActionJump)
		}

		res := game.Step(in, opts.DT)
		frames++
		t += opts.DT
		snap = game.Snapshot()

		if opts.Trace {
			fmt.Fprintf(w, "  %-6d  %-7.3f  %-8.2f  %-8.2f  %-6.1f  %-5d  %-11s  %s\n",
				frames, t, snap.Avatar.Y, snap.Velocity, snap.Speed, snap.Score, snap.State, res.Events)
		}
		if res.State.GameOver {
			break
		}
	}

	return simSummary{
		Frames:   frames,
		Score:    snap.Score,
		Distance: snap.Distance,
		Speed:    snap.Speed,
		State:    snap.State,
		RunID:    game.RunID().String(),
	}
}

// wantFlap decides whether to flap on the given frame.
func wantFlap(frame int, snap sim.Snapshot, opts simOptions) bool {
	if frame == 0 {
		return true
	}
	if opts.Autopilot {
		return autopilotFlap(snap)
	}
	return opts.FlapEvery > 0 && frame%opts.FlapEvery == 0
}

// autopilotFlap flaps when the falling avatar drops below the middle of the
// next gap it has to clear.
func autopilotFlap(snap sim.Snapshot) bool {
	if snap.Velocity < 0 {
		return false
	}

	target := float64(snap.FloorY) / 2
	nextX := math.Inf(1)
	for _, o := range snap.Obstacles {
		if o.X+o.Width < snap.Avatar.X || o.X >= nextX {
			continue
		}
		nextX = o.X
		if o.Single || o.Bottom.Empty() {
			target = (o.Top.Bottom() + float64(snap.FloorY)) / 2
		} else {
			target = (o.Top.Bottom() + o.Bottom.Y) / 2
		}
	}

	center := snap.Avatar.Y + snap.Avatar.H/2
	return center > target+snap.Avatar.H/4
}
