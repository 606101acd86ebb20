package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default falling-blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			LockDelayMS: 500,
			GravityMS: []int{
				800, 717, 633, 550, 467, 383, 300, 217, 133, 100,
				83, 83, 83, 67, 67, 67, 50, 50, 50, 33,
			},
		},
		Scoring: ScoringConfig{
			LineClear:       []int{40, 100, 300, 1200},
			SoftDropPerCell: 1,
			HardDropPerCell: 2,
		},
		Gameplay: GameplayConfig{
			LinesPerLevel: 10,
			MaxLevel:      20,
			SprintLines:   40,
			PreviewCount:  3,
			GhostPiece:    true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			StartLevel:   1,
			GravityScale: 1.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blocks", "blocks_sprint":
		return defaultBlocksYAML
	default:
		return nil
	}
}
