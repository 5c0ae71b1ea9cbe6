package level

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config is the sectioned key-value startup configuration. The format is
//
//	=World=
//	gravity: 300
//	start: levels/level1.txt
//
// Lines that don't hold exactly one ':' are skipped silently, as are values
// appearing before any section header.
type Config struct {
	sections map[string]map[string]string
}

// ReadConfig loads and parses the configuration file. A missing file is an
// error; the game cannot run without its configuration.
func ReadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("level: open config: %w", err)
	}
	defer f.Close()

	cfg := &Config{sections: map[string]map[string]string{}}
	var section string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case len(line) >= 2 && strings.HasPrefix(line, "=") && strings.HasSuffix(line, "="):
			section = strings.TrimSpace(line[1 : len(line)-1])
			if _, ok := cfg.sections[section]; !ok {
				cfg.sections[section] = map[string]string{}
			}
		case strings.Count(line, ":") == 1 && section != "":
			key, value, _ := strings.Cut(line, ":")
			cfg.sections[section][strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("level: read config: %w", err)
	}
	return cfg, nil
}

// Get returns the raw value for a section key.
func (c *Config) Get(section, key string) (string, bool) {
	sec, ok := c.sections[section]
	if !ok {
		return "", false
	}
	v, ok := sec[key]
	return v, ok
}

func (c *Config) str(section, key, def string) string {
	if v, ok := c.Get(section, key); ok && v != "" {
		return v
	}
	return def
}

func (c *Config) float(section, key string, def float64) float64 {
	v, ok := c.Get(section, key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Typed accessors for the recognized keys, with the defaults the game ships
// with.

func (c *Config) Gravity() float64 { return c.float("World", "gravity", 300) }

func (c *Config) StartLevel() string { return c.str("World", "start", "levels/level1.txt") }

// NextLevel is where the goal flag advances to.
func (c *Config) NextLevel() string { return c.str("World", "next", "levels/level2.txt") }

// TunnelLevel is where a ducked tunnel entry leads, usually a bonus room.
func (c *Config) TunnelLevel() string { return c.str("World", "tunnel", c.NextLevel()) }

// Character is the player's name, recorded with highscore entries.
func (c *Config) Character() string { return c.str("Player", "character", "luigi") }

func (c *Config) SpawnX() float64 { return c.float("Player", "x", 16) }

func (c *Config) SpawnY() float64 { return c.float("Player", "y", 16) }

func (c *Config) MaxHealth() float64 { return c.float("Player", "health", 20) }

func (c *Config) ScoresPath() string { return c.str("World", "scores", "highscores.txt") }
