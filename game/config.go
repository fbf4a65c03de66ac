package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the gameplay tunables fixed at session start. Rule
// constants that define the simulation's semantics live in const.go.
type Config struct {
	ArenaWidth  float64 `yaml:"arenaWidth"`
	ArenaHeight float64 `yaml:"arenaHeight"`

	PlayerSpeed float64 `yaml:"playerSpeed"`
	PlayerLives int     `yaml:"playerLives"`

	BulletSpeed float64 `yaml:"bulletSpeed"`

	EnemyMinSpeed float64 `yaml:"enemyMinSpeed"`
	EnemyMaxSpeed float64 `yaml:"enemyMaxSpeed"`

	BaseSpawnInterval int `yaml:"baseSpawnInterval"` // ms between spawns at level 1
	LevelUpScore      int `yaml:"levelUpScore"`      // first level-up threshold
	PowerUpDuration   int `yaml:"powerUpDuration"`   // ms of rapid fire per pickup

	Seed uint32 `yaml:"seed"` // 0 = pick a seed at startup

	WindowTitle string `yaml:"windowTitle"`
	WindowScale int    `yaml:"windowScale"`
}

// DefaultConfig returns the stock gameplay configuration.
func DefaultConfig() Config {
	return Config{
		ArenaWidth:        480,
		ArenaHeight:       640,
		PlayerSpeed:       5,
		PlayerLives:       3,
		BulletSpeed:       8,
		EnemyMinSpeed:     1.5,
		EnemyMaxSpeed:     3.0,
		BaseSpawnInterval: 1100,
		LevelUpScore:      100,
		PowerUpDuration:   5000,
		WindowTitle:       "Skyraid",
		WindowScale:       1,
	}
}

// LoadConfig reads a YAML config file over the defaults. A missing
// file is not an error: the defaults are returned as-is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.ArenaWidth < 4*EdgeMargin || c.ArenaHeight < 4*EdgeMargin {
		return fmt.Errorf("arena %vx%v is too small", c.ArenaWidth, c.ArenaHeight)
	}
	if c.PlayerSpeed <= 0 || c.BulletSpeed <= 0 {
		return fmt.Errorf("speeds must be positive")
	}
	if c.PlayerLives < 1 {
		return fmt.Errorf("playerLives must be at least 1, got %d", c.PlayerLives)
	}
	if c.EnemyMinSpeed <= 0 || c.EnemyMaxSpeed < c.EnemyMinSpeed {
		return fmt.Errorf("enemy speed range [%v,%v] is invalid", c.EnemyMinSpeed, c.EnemyMaxSpeed)
	}
	if c.BaseSpawnInterval < MinSpawnInterval {
		return fmt.Errorf("baseSpawnInterval %d is below the floor %d", c.BaseSpawnInterval, MinSpawnInterval)
	}
	if c.LevelUpScore <= 0 || c.PowerUpDuration <= 0 {
		return fmt.Errorf("levelUpScore and powerUpDuration must be positive")
	}
	if c.WindowScale < 1 {
		return fmt.Errorf("windowScale must be at least 1, got %d", c.WindowScale)
	}
	return nil
}
