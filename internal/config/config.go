package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the mod core
type Config struct {
	Redis     RedisConfig
	Abilities AbilitiesConfig
	BanBox    BanBoxConfig
	Lives     LivesConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AbilitiesConfig tunes the ability execution engine
type AbilitiesConfig struct {
	MaxConcurrent      int
	CooldownsEnabled   bool
	CooldownMultiplier float64
	CooldownSweep      time.Duration
	ComboWindow        time.Duration
	ComboSweep         time.Duration
	SoundsEnabled      bool
	ParticlesEnabled   bool
}

// BanBoxConfig tunes the death/ban/revival lifecycle
type BanBoxConfig struct {
	Enabled          bool
	AutoUnbanDays    int
	DisabledWorlds   []string
	EnabledWorlds    []string // when non-empty, only these worlds ban
	DeathPenaltyXP   int      // experience levels taken on ban box entry
	ReviverRewardXP  int
	RevivalLifeCost  int // lives the reviver spends; 0 disables the cost
	RevivalBroadcast bool
	UnbanSweep       time.Duration
}

// LivesConfig tunes the extra-lives currency
type LivesConfig struct {
	Default int
	Max     int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Abilities: AbilitiesConfig{
			MaxConcurrent:      getEnvAsIntOrDefault("ABILITY_MAX_CONCURRENT", 10),
			CooldownsEnabled:   getEnvAsBoolOrDefault("ABILITY_COOLDOWNS_ENABLED", true),
			CooldownMultiplier: getEnvAsFloatOrDefault("ABILITY_COOLDOWN_MULTIPLIER", 1.0),
			CooldownSweep:      getEnvAsDurationOrDefault("ABILITY_COOLDOWN_SWEEP", 60*time.Second),
			ComboWindow:        getEnvAsDurationOrDefault("ABILITY_COMBO_WINDOW", 5*time.Second),
			ComboSweep:         getEnvAsDurationOrDefault("ABILITY_COMBO_SWEEP", time.Second),
			SoundsEnabled:      getEnvAsBoolOrDefault("ABILITY_SOUNDS_ENABLED", true),
			ParticlesEnabled:   getEnvAsBoolOrDefault("ABILITY_PARTICLES_ENABLED", true),
		},
		BanBox: BanBoxConfig{
			Enabled:          getEnvAsBoolOrDefault("BANBOX_ENABLED", true),
			AutoUnbanDays:    getEnvAsIntOrDefault("BANBOX_AUTO_UNBAN_DAYS", 30),
			DisabledWorlds:   getEnvAsListOrDefault("BANBOX_DISABLED_WORLDS", nil),
			EnabledWorlds:    getEnvAsListOrDefault("BANBOX_ENABLED_WORLDS", nil),
			DeathPenaltyXP:   getEnvAsIntOrDefault("BANBOX_DEATH_PENALTY_XP", 0),
			ReviverRewardXP:  getEnvAsIntOrDefault("BANBOX_REVIVER_REWARD_XP", 200),
			RevivalLifeCost:  getEnvAsIntOrDefault("BANBOX_REVIVAL_LIFE_COST", 0),
			RevivalBroadcast: getEnvAsBoolOrDefault("BANBOX_REVIVAL_BROADCAST", true),
			UnbanSweep:       getEnvAsDurationOrDefault("BANBOX_UNBAN_SWEEP", time.Hour),
		},
		Lives: LivesConfig{
			Default: getEnvAsIntOrDefault("LIVES_DEFAULT", 3),
			Max:     getEnvAsIntOrDefault("LIVES_MAX", 10),
		},
	}

	// Validate required fields
	if cfg.Abilities.MaxConcurrent < 1 {
		return nil, fmt.Errorf("ABILITY_MAX_CONCURRENT must be at least 1")
	}
	if cfg.BanBox.AutoUnbanDays < 1 {
		return nil, fmt.Errorf("BANBOX_AUTO_UNBAN_DAYS must be at least 1")
	}
	if cfg.Lives.Max < cfg.Lives.Default {
		return nil, fmt.Errorf("LIVES_MAX must be >= LIVES_DEFAULT")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsListOrDefault(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}
	return defaultValue
}
