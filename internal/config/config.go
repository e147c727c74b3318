// Package config loads command line settings from the environment and optional
// .env files.
package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed.
var ErrParsingConfig = errors.New("config: failed to parse environment")

// Config holds the settings shared by every subcommand. Flags override these.
type Config struct {
	LogLevel     string `env:"ONGKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"ONGKIT_LOG_FORMAT" envDefault:"text"`
	Locale       string `env:"ONGKIT_LOCALE" envDefault:"pt-BR"`
	TemplatesDir string `env:"ONGKIT_TEMPLATES_DIR"`
	FormsDir     string `env:"ONGKIT_FORMS_DIR"`
	OutputDir    string `env:"ONGKIT_OUTPUT_DIR" envDefault:"dist"`
}

// Load reads the given dotenv files (".env" when none are given), then parses
// the environment. Missing dotenv files are not an error; values already set
// in the environment win over dotenv values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
