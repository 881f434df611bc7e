package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagSound  bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space      - Start / Flap / Restart (after game over)
  Any key    - Pause and resume
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start, gentle speed-up
  normal - Default pace
  hard   - Faster start, steep speed-up and stronger flaps

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --sound --volume 0.5
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.8, "Sound volume from 0 to 1")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alt screen owns the terminal, so logs are dropped unless --log-file is set.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	gameCfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	game, err := flappy.New(gameCfg)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var player audio.Player = audio.NopPlayer{}
	if flagSound {
		sp, err := audio.NewSpeakerPlayer(flagVolume)
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			player = sp
		}
	}
	defer player.Close()

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if err := tui.Run(game, cfg, logger, player); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
