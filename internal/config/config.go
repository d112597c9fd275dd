package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// The board is fixed: 10x10 with 10 mines.
const (
	GridSize  = 10
	MineCount = 10
	// CellWidth is the number of terminal columns a cell is drawn with.
	CellWidth = 3
)

const envPrefix = "MINEFIELD"

type Config struct {
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
	// Seed makes mine placement reproducible. 0 means seed from the clock.
	Seed  uint64 `mapstructure:"seed"`
	ASCII bool   `mapstructure:"ascii"`
}

func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"log_level": c.LogLevel,
		"log_file":  c.LogFile,
		"seed":      c.Seed,
		"ascii":     c.ASCII,
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", filepath.Join(os.TempDir(), "minefield.log"))
	v.SetDefault("seed", 0)
	v.SetDefault("ascii", false)
}

// Load reads minefield.yaml from the working directory or
// $HOME/.config/minefield, when present, and MINEFIELD_* environment
// variables, which take precedence.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("minefield")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "minefield"))
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config: %w", err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return &c, nil
}
