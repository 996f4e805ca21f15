package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	for in, want := range map[string]Source{
		"": SourceOfficial, "Official": SourceOfficial, "knuth": SourceKnuth,
		"external": SourceExternal, "nltk": SourceExternal,
	} {
		got, err := ParseSource(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSource("scrabble")
	assert.ErrorIs(t, err, ErrInvalidWordListSource)
}

func TestLoad_Embedded(t *testing.T) {
	official, err := Load(Options{Source: SourceOfficial})
	require.NoError(t, err)
	assert.Contains(t, official, "crane")
	assert.Contains(t, official, "crate")
	for _, w := range official {
		require.Len(t, w, 5)
	}

	knuth, err := Load(Options{Source: SourceKnuth})
	require.NoError(t, err)
	assert.Greater(t, len(knuth), len(official))
}

func TestLoad_InvalidSource(t *testing.T) {
	_, err := Load(Options{Source: "scrabble"})
	assert.ErrorIs(t, err, ErrInvalidWordListSource)
}

func TestLoad_ExternalNeedsFile(t *testing.T) {
	_, err := Load(Options{Source: SourceExternal})
	assert.Error(t, err)
}

func TestLoad_ExternalCorpus(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	body := strings.Join([]string{
		"Crane", "  slate ", "café", "naïve", "cranes", "o'neil", "", "# note", "Cairn", "crane",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	got, err := Load(Options{Source: SourceExternal, File: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "naive", "cairn", "crane"}, got)

	four, err := Load(Options{Source: SourceExternal, File: path, WordLength: 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe"}, four)

	_, err = Load(Options{Source: SourceExternal, File: filepath.Join(dir, "missing.txt")})
	assert.Error(t, err)
}

func TestLoadDictionary(t *testing.T) {
	d, err := LoadDictionary(Options{Source: SourceOfficial})
	require.NoError(t, err)
	assert.Equal(t, 5, d.WordLength())
	assert.True(t, d.Contains("crane"))

	_, err = LoadDictionary(Options{Source: SourceOfficial, WordLength: 12})
	assert.Error(t, err)
}
