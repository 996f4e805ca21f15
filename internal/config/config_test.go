package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CarsonDavis/wordle-solver/internal/words"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "official", cfg.Words.Source)
	assert.Equal(t, 5, cfg.Words.Length)
	assert.Equal(t, "simple", cfg.Solver.Scorer)
	assert.GreaterOrEqual(t, cfg.Eval.Workers, 1)
	assert.Equal(t, "5175", cfg.Server.Port)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
words:
  source: knuth
solver:
  scorer: standard
  openings: [crane, slate]
  maxTurns: 8
eval:
  workers: 2
server:
  sessionTTL: 2h
dbPath: /tmp/runs.db
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "knuth", cfg.Words.Source)
	assert.Equal(t, "standard", cfg.Solver.Scorer)
	assert.Equal(t, []string{"crane", "slate"}, cfg.Solver.Openings)
	assert.Equal(t, 8, cfg.Solver.MaxTurns)
	assert.Equal(t, 2, cfg.Eval.Workers)
	assert.Equal(t, 2*time.Hour, cfg.Server.SessionTTL)
	assert.Equal(t, "/tmp/runs.db", cfg.DBPath)
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeFile(t, "words:\n  sorce: knuth\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "words:\n  source: knuth\n")
	t.Setenv("WORDLE_SOURCE", "nltk")
	t.Setenv("WORDS_EXTERNAL_FILE", "/data/corpus.txt")
	t.Setenv("WORDLE_OPENINGS", "Crane, slate")
	t.Setenv("WORDLE_WORKERS", "3")
	t.Setenv("PORT", "9000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "external", cfg.Words.Source)
	assert.Equal(t, []string{"crane", "slate"}, cfg.Solver.Openings)
	assert.Equal(t, 3, cfg.Eval.Workers)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, words.Options{Source: words.SourceExternal, WordLength: 5, File: "/data/corpus.txt"}, cfg.WordOptions())
}

func TestLoad_Invalid(t *testing.T) {
	for name, env := range map[string][2]string{
		"source":   {"WORDLE_SOURCE", "scrabble"},
		"length":   {"WORDLE_WORD_LENGTH", "0"},
		"not int":  {"WORDLE_WORKERS", "many"},
		"workers":  {"WORDLE_WORKERS", "0"},
		"scorer":   {"WORDLE_SCORER", "fuzzy"},
		"opening":  {"WORDLE_OPENINGS", "cranes"},
		"maxturns": {"WORDLE_MAX_TURNS", "-1"},
		"external": {"WORDLE_SOURCE", "external"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])
			_, err := Load("")
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"crane", "slate", "pious"}, SplitList(" Crane,slate  pious,"))
	assert.Empty(t, SplitList(""))
}
