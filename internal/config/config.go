// internal/config/config.go
//
// Runtime configuration.
// Sources, lowest precedence first:
//   - built-in defaults
//   - an optional YAML file (unknown keys are rejected)
//   - environment variables (a .env file is loaded by main)
//
// Command-line flags are applied on top by the cli package.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/CarsonDavis/wordle-solver/internal/game"
	"github.com/CarsonDavis/wordle-solver/internal/words"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration.
type Config struct {
	Words    Words  `yaml:"words"`
	Solver   Solver `yaml:"solver"`
	Eval     Eval   `yaml:"eval"`
	Server   Server `yaml:"server"`
	DBPath   string `yaml:"dbPath"`
	LogLevel string `yaml:"logLevel"`
}

// Words selects the dictionary.
type Words struct {
	Source       string `yaml:"source"`
	Length       int    `yaml:"length"`
	OfficialFile string `yaml:"officialFile"`
	KnuthFile    string `yaml:"knuthFile"`
	ExternalFile string `yaml:"externalFile"`
}

// Solver tunes single games.
type Solver struct {
	Scorer   string   `yaml:"scorer"`
	Openings []string `yaml:"openings"`
	MaxTurns int      `yaml:"maxTurns"`
}

// Eval tunes strategy evaluation.
type Eval struct {
	Workers  int    `yaml:"workers"`
	SeedSalt string `yaml:"seedSalt"`
}

// Server configures the HTTP adapter.
type Server struct {
	Port           string        `yaml:"port"`
	JWTSecret      string        `yaml:"jwtSecret"`
	ClientOrigin   string        `yaml:"clientOrigin"`
	SessionTTL     time.Duration `yaml:"sessionTTL"`
	CandidateLimit int           `yaml:"candidateLimit"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Words:  Words{Source: string(words.SourceOfficial), Length: words.DefaultWordLength},
		Solver: Solver{Scorer: game.ScorerSimple},
		Eval:   Eval{Workers: runtime.NumCPU(), SeedSalt: "wordle"},
		Server: Server{
			Port:           "5175",
			ClientOrigin:   "http://localhost:5173",
			SessionTTL:     24 * time.Hour,
			CandidateLimit: 50,
		},
		DBPath:   "./data/runs.db",
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, the YAML file at path (skipped
// when path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Words.Source, "WORDLE_SOURCE")
	setString(&c.Words.OfficialFile, "WORDS_OFFICIAL_FILE")
	setString(&c.Words.KnuthFile, "WORDS_KNUTH_FILE")
	setString(&c.Words.ExternalFile, "WORDS_EXTERNAL_FILE")
	setString(&c.Solver.Scorer, "WORDLE_SCORER")
	setString(&c.Eval.SeedSalt, "WORDLE_SEED_SALT")
	setString(&c.DBPath, "DB_PATH")
	setString(&c.Server.Port, "PORT")
	setString(&c.Server.JWTSecret, "JWT_SECRET")
	setString(&c.Server.ClientOrigin, "CLIENT_ORIGIN")
	setString(&c.LogLevel, "LOG_LEVEL")

	if v := os.Getenv("WORDLE_OPENINGS"); v != "" {
		c.Solver.Openings = SplitList(v)
	}
	for key, dst := range map[string]*int{
		"WORDLE_WORD_LENGTH": &c.Words.Length,
		"WORDLE_WORKERS":     &c.Eval.Workers,
		"WORDLE_MAX_TURNS":   &c.Solver.MaxTurns,
	} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, key, v)
		}
		*dst = n
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// SplitList splits a comma or space separated list, dropping empty entries.
func SplitList(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == ',' || r == ' '
	})
}

// Validate checks every field and normalizes the word source name.
func (c *Config) Validate() error {
	src, err := words.ParseSource(c.Words.Source)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	c.Words.Source = string(src)
	if src == words.SourceExternal && c.Words.ExternalFile == "" {
		return fmt.Errorf("%w: external source needs words.externalFile (WORDS_EXTERNAL_FILE)", ErrInvalid)
	}
	if c.Words.Length < 1 || c.Words.Length > 15 {
		return fmt.Errorf("%w: word length %d out of range 1..15", ErrInvalid, c.Words.Length)
	}
	if _, err := game.ScorerFor(c.Solver.Scorer); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for _, w := range c.Solver.Openings {
		if len(w) != c.Words.Length || !game.IsWord(w) {
			return fmt.Errorf("%w: opening %q is not a %d-letter a-z word", ErrInvalid, w, c.Words.Length)
		}
	}
	if c.Solver.MaxTurns < 0 {
		return fmt.Errorf("%w: maxTurns must be >= 0", ErrInvalid)
	}
	if c.Eval.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1", ErrInvalid)
	}
	if c.Server.CandidateLimit < 1 {
		return fmt.Errorf("%w: candidateLimit must be >= 1", ErrInvalid)
	}
	if c.Server.SessionTTL <= 0 {
		return fmt.Errorf("%w: sessionTTL must be positive", ErrInvalid)
	}
	return nil
}

// WordOptions returns the loader options for the configured source.
func (c Config) WordOptions() words.Options {
	opts := words.Options{Source: words.Source(c.Words.Source), WordLength: c.Words.Length}
	switch opts.Source {
	case words.SourceOfficial:
		opts.File = c.Words.OfficialFile
	case words.SourceKnuth:
		opts.File = c.Words.KnuthFile
	case words.SourceExternal:
		opts.File = c.Words.ExternalFile
	}
	return opts
}
