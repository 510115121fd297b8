package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GlebRadaev/rebox/internal/domain"
)

//go:embed default.yaml
var defaultConfig []byte

var ErrInvalidConfig = errors.New("invalid levels config")

// Config is a versioned level table ordered by MinPoints ascending.
type Config struct {
	Version int            `yaml:"version"`
	Levels  []domain.Level `yaml:"levels"`
}

// LoadConfig reads a level table from path, or the embedded default when path is empty.
func LoadConfig(path string) (Config, error) {
	data := defaultConfig
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read levels file: %w", err)
		}
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidConfig)
	}
	if c.Levels[0].MinPoints < 0 {
		return fmt.Errorf("%w: negative minPoints for %q", ErrInvalidConfig, c.Levels[0].Name)
	}
	seen := make(map[string]struct{}, len(c.Levels))
	for i, l := range c.Levels {
		if l.Name == "" {
			return fmt.Errorf("%w: level %d has no name", ErrInvalidConfig, i)
		}
		if _, dup := seen[l.Name]; dup {
			return fmt.Errorf("%w: duplicate level %q", ErrInvalidConfig, l.Name)
		}
		seen[l.Name] = struct{}{}
		if l.Multiplier <= 0 {
			return fmt.Errorf("%w: level %q multiplier must be positive", ErrInvalidConfig, l.Name)
		}
		if i > 0 && l.MinPoints <= c.Levels[i-1].MinPoints {
			return fmt.Errorf("%w: level %q minPoints must be greater than %q", ErrInvalidConfig, l.Name, c.Levels[i-1].Name)
		}
	}
	return nil
}
