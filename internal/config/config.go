package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Seed       int64      `yaml:"seed" env:"SEED" env-default:"0"`
	TicTacToe  TicTacToe  `yaml:"tictactoe"`
	Blackjack  Blackjack  `yaml:"blackjack"`
	Tactic21   Tactic21   `yaml:"tactic21"`
	Investment Investment `yaml:"investment"`
}

type TicTacToe struct {
	BoardSize int    `yaml:"board-size" env:"TICTACTOE_BOARD_SIZE" env-default:"3"`
	HumanMark string `yaml:"human-mark" env:"TICTACTOE_HUMAN_MARK" env-default:"X"`
}

type Blackjack struct {
	DealerStandsOn int `yaml:"dealer-stands-on" env:"BLACKJACK_DEALER_STANDS_ON" env-default:"17"`
}

type Tactic21 struct {
	HandSize int `yaml:"hand-size" env:"TACTIC21_HAND_SIZE" env-default:"5"`
}

type Investment struct {
	Years int `yaml:"years" env:"INVESTMENT_YEARS" env-default:"2"`
}

// Load - reads path when it exists, otherwise only the environment and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level %q", ErrInvalidConfig, that.LogLevel)
	}

	if that.TicTacToe.BoardSize < 3 || that.TicTacToe.BoardSize > 9 {
		return fmt.Errorf("%w: tictactoe.board-size %d", ErrInvalidConfig, that.TicTacToe.BoardSize)
	}

	switch that.TicTacToe.HumanMark {
	case "X", "O":
	default:
		return fmt.Errorf("%w: tictactoe.human-mark %q", ErrInvalidConfig, that.TicTacToe.HumanMark)
	}

	if that.Blackjack.DealerStandsOn < 1 || that.Blackjack.DealerStandsOn > 21 {
		return fmt.Errorf("%w: blackjack.dealer-stands-on %d", ErrInvalidConfig, that.Blackjack.DealerStandsOn)
	}

	if that.Tactic21.HandSize < 1 || that.Tactic21.HandSize > 9 {
		return fmt.Errorf("%w: tactic21.hand-size %d", ErrInvalidConfig, that.Tactic21.HandSize)
	}

	if that.Investment.Years < 0 {
		return fmt.Errorf("%w: investment.years %d", ErrInvalidConfig, that.Investment.Years)
	}

	return nil
}
