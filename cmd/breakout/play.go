package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/audio"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagMute  bool
	flagInput string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Enter/Space  - PLAY (or click the buttons)
  Left/A       - Move paddle left
  Right/D      - Move paddle right
  R            - Restart after the game ends
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Terminals only report key presses. In toggle mode (default) each press
starts or stops the paddle; in hold mode the paddle moves while the key
auto-repeats.

Examples:
  breakout play
  breakout play --difficulty easy --input hold
  breakout play --seed 42 --mute
  breakout play --config ./my-breakout.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().StringVar(&flagInput, "input", "", "Paddle input mode: toggle or hold (default from config)")
}

func init() {
	addPlayFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) (err error) {
	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}
	if flagInput != "" {
		cfg.Gameplay.InputMode = flagInput
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger("breakout", nil)
	if err != nil {
		return err
	}
	defer closeWith(&err, closeLog)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	var sound breakout.SoundPlayer = breakout.Silent{}
	if !flagMute && cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio, cfg.Sounds)
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "error", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	store, storeErr := storage.Open(flagDBPath)
	if storeErr != nil {
		logger.Warn("could not open runs database", "error", storeErr)
		store = nil
	}
	if store != nil {
		defer closeWith(&err, store.Close)
	}

	logger.Info("starting", "difficulty", preset, "seed", flagSeed, "size", []int{width, height})
	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Playfield.FrameRate,
			Seed:     flagSeed,
		},
		Difficulty: string(preset),
		Store:      store,
		Sound:      sound,
		Logger:     logger,
		Screenshot: dataDir("screenshots"),
	})
	if runErr != nil {
		logger.Error("game exited with error", "error", runErr)
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
