package config

import "fmt"

// ParseDifficulty validates a difficulty name from the command line.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = cfg.Paddle.Width * 3 / 2
		cfg.Effects.Duration = cfg.Effects.Duration * 3 / 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = cfg.Paddle.Width * 7 / 10
		cfg.Ball.Speed++
		cfg.Effects.Duration = cfg.Effects.Duration / 2
	}
}
