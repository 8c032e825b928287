// Package config loads the settings of the kanji2hanzi command.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/siongui/gokanjihanzi"
)

// Config holds the resource paths, table notation and conversion settings.
type Config struct {
	TablePath       string `yaml:"table_path"       env:"KANJI_TABLE_PATH"`
	KanjiListPath   string `yaml:"kanji_list_path"  env:"KANJI_LIST_PATH"`
	Target          string `yaml:"target"           env:"KANJI_TARGET"           env-default:"traditional"`
	DuplicatePolicy string `yaml:"duplicate_policy" env:"KANJI_DUPLICATE_POLICY" env-default:"last"`
	Format          Format `yaml:"format"`
	LogLevel        string `yaml:"log_level"        env:"LOG_LEVEL"              env-default:"info"`
}

// Format mirrors gokanjihanzi.Format.
type Format struct {
	Delimiter          string `yaml:"delimiter"           env:"KANJI_DELIMITER"           env-default:"\t"`
	CandidateSeparator string `yaml:"candidate_separator" env:"KANJI_CANDIDATE_SEPARATOR" env-default:","`
	NoCandidate        string `yaml:"no_candidate"        env:"KANJI_NO_CANDIDATE"        env-default:"N/A"`
	CommentPrefix      string `yaml:"comment_prefix"      env:"KANJI_COMMENT_PREFIX"      env-default:"#"`
}

// Load reads the config from the YAML file at path, or from the environment
// and defaults when path is empty. Environment variables override YAML.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the required paths are set and the names parse. Load
// does not call it so that command line flags can fill in values first.
func (c *Config) Validate() error {
	if c.TablePath == "" {
		return fmt.Errorf("config: table_path is required")
	}
	if c.KanjiListPath == "" {
		return fmt.Errorf("config: kanji_list_path is required")
	}
	if _, err := gokanjihanzi.ParseTarget(c.Target); err != nil {
		return fmt.Errorf("config: target: %w", err)
	}
	if _, err := gokanjihanzi.ParseDuplicatePolicy(c.DuplicatePolicy); err != nil {
		return fmt.Errorf("config: duplicate_policy: %w", err)
	}
	if c.Format.Delimiter == "" {
		return fmt.Errorf("config: format.delimiter is required")
	}
	return nil
}

// TableFormat converts the configured notation.
func (c *Config) TableFormat() gokanjihanzi.Format {
	return gokanjihanzi.Format{
		Delimiter:          c.Format.Delimiter,
		CandidateSeparator: c.Format.CandidateSeparator,
		NoCandidate:        c.Format.NoCandidate,
		CommentPrefix:      c.Format.CommentPrefix,
	}
}
