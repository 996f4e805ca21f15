package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func wordsFile(t *testing.T, list ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(list, "\n")+"\n"), 0o644))
	return path
}

type response[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"solve", "score", "play", "evaluate", "runs", "serve"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
	for _, path := range [][]string{{"runs", "list"}, {"runs", "show"}} {
		sub, _, err := cmd.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[1], sub.Name())
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "text", cmd.PersistentFlags().Lookup("format").DefValue)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("source"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("scorer"))
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "--format", "yaml", "score", "crane", "crate")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestInvalidSource(t *testing.T) {
	_, _, err := execute(t, "--source", "scrabble", "solve")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSolve_Text(t *testing.T) {
	file := wordsFile(t, "crane", "trace", "crate", "grate", "plate")
	stdout, _, err := execute(t, "--words", file, "solve", "--turn", "crane:ggg-g")
	require.NoError(t, err)
	assert.Equal(t, "1 candidate(s)\ncrate\n", stdout)

	stdout, _, err = execute(t, "--words", file, "solve", "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t, "5 candidate(s)\ncrane\ntrace\n... and 3 more\n", stdout)
}

func TestSolve_JSONOfficial(t *testing.T) {
	stdout, _, err := execute(t, "--format", "json", "solve", "crane:ggg-g", "--limit", "0")
	require.NoError(t, err)

	var res response[SolveResult]
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, "ok", res.Status)
	assert.Contains(t, res.Data.Candidates, "crate")
	assert.NotContains(t, res.Data.Candidates, "crane")
	assert.Equal(t, res.Data.Count, len(res.Data.Candidates))
	for _, w := range res.Data.Candidates {
		assert.True(t, strings.HasPrefix(w, "cra") && strings.HasSuffix(w, "e"), w)
	}
}

func TestSolve_EmptyCandidateSet(t *testing.T) {
	file := wordsFile(t, "crane", "crate")
	_, stderr, err := execute(t, "--words", file, "solve", "--turn", "crane:-----")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, stderr, "empty_candidate_set")
}

func TestSolve_BadTurn(t *testing.T) {
	for _, turn := range []string{"crane", "crane:ggg", "crane:gggxg", "cranes:gggggg"} {
		_, _, err := execute(t, "solve", "--turn", turn)
		require.Error(t, err, turn)
		assert.Equal(t, ExitCommandError, GetExitCode(err), turn)
	}
}

func TestScore(t *testing.T) {
	stdout, _, err := execute(t, "--scorer", "standard", "score", "speed", "enact")
	require.NoError(t, err)
	assert.Equal(t, "speed:--y--\n", stdout)

	stdout, _, err = execute(t, "score", "speed", "enact")
	require.NoError(t, err)
	assert.Equal(t, "speed:--yy-\n", stdout)

	_, _, err = execute(t, "score", "speeds", "enact")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestPlay_Trace(t *testing.T) {
	file := wordsFile(t, "crane", "crate")
	stdout, _, err := execute(t, "--words", file, "play", "crate", "--strategy", "first", "--trace")
	require.NoError(t, err)
	assert.Equal(t, "1 crane:ggg-g\n2 crate:ggggg\ncrate solved in 2 guess(es)\n", stdout)
}

func TestPlay_SeedKeepsStrategy(t *testing.T) {
	play := func(args ...string) PlayResult {
		stdout, _, err := execute(t, append([]string{"--format", "json", "play", "skate"}, args...)...)
		require.NoError(t, err)
		var res response[PlayResult]
		require.NoError(t, json.Unmarshal([]byte(stdout), &res))
		return res.Data
	}

	plain := play("--strategy", "first")
	seeded := play("--strategy", "first", "--seed", "3")
	assert.Equal(t, plain.Path, seeded.Path)
	assert.Equal(t, plain.Strategy, seeded.Strategy)
	assert.True(t, strings.HasPrefix(seeded.Strategy, "first"), seeded.Strategy)

	assert.Equal(t, play("--seed", "3").Path, play("--strategy", "random", "--seed", "3").Path)
}

func TestPlay_Unsolvable(t *testing.T) {
	file := wordsFile(t, "crane", "crate")
	_, _, err := execute(t, "--words", file, "play", "zzzzz")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestPlay_UnknownStrategy(t *testing.T) {
	_, _, err := execute(t, "play", "crate", "--strategy", "oracle")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestEvaluate_DeterministicAcrossWorkers(t *testing.T) {
	type payload struct {
		Report struct {
			Strategy string `json:"strategy"`
			Results  []struct {
				Word    string `json:"word"`
				Guesses int    `json:"guesses"`
			} `json:"results"`
		} `json:"report"`
		Summary struct {
			Words  int     `json:"words"`
			Failed int     `json:"failed"`
			Mean   float64 `json:"mean"`
		} `json:"summary"`
	}
	run := func(workers string) payload {
		stdout, _, err := execute(t, "--format", "json", "evaluate", "--answers", "40", "-w", workers)
		require.NoError(t, err)
		var res response[payload]
		require.NoError(t, json.Unmarshal([]byte(stdout), &res))
		return res.Data
	}

	seq, par := run("1"), run("4")
	assert.Equal(t, 40, seq.Summary.Words)
	assert.Zero(t, seq.Summary.Failed)
	assert.Equal(t, "random", seq.Report.Strategy)
	assert.Equal(t, seq.Report.Results, par.Report.Results)
	assert.Equal(t, seq.Summary.Mean, par.Summary.Mean)
}

func TestEvaluate_SaveAndShow(t *testing.T) {
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "runs.db"))
	file := wordsFile(t, "crane", "trace", "crate", "grate", "plate")
	t.Setenv("WORDLE_OPENINGS", "crane")

	stdout, _, err := execute(t, "--words", file, "evaluate", "--save", "--progress=false", "--strategy", "minimax")
	require.NoError(t, err)
	assert.Contains(t, stdout, "strategy: minimax+opening(crane)\n")
	assert.Contains(t, stdout, "words: 5\n")
	assert.Contains(t, stdout, "failed: 0\n")

	stdout, _, err = execute(t, "--format", "json", "runs", "list")
	require.NoError(t, err)
	var list response[[]struct {
		ID    string `json:"id"`
		Words int    `json:"words"`
	}]
	require.NoError(t, json.Unmarshal([]byte(stdout), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, 5, list.Data[0].Words)

	stdout, _, err = execute(t, "runs", "show", list.Data[0].ID, "--list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "run: "+list.Data[0].ID+"\n")
	assert.Contains(t, stdout, "  crane 1\n")

	_, _, err = execute(t, "runs", "show", "missing")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExitError(t *testing.T) {
	err := WrapExitError(ExitFailure, "solve", os.ErrNotExist)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, "solve: file does not exist", err.Error())
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "x")))
}

func TestPrinter(t *testing.T) {
	var out, diag bytes.Buffer
	p := &Printer{Format: "text", Out: &out, Diag: &diag}
	require.NoError(t, p.Result(map[string]int{"n": 1}, "plain\n"))
	require.NoError(t, p.Fail("not_found", "no run", nil))
	p.Debugf("hidden")
	assert.Equal(t, "plain\n", out.String())
	assert.Equal(t, "not_found: no run\n", diag.String())

	out.Reset()
	p = &Printer{Format: "json", Out: &out}
	require.NoError(t, p.Fail("unsolved", "gave up", []string{"crane:-----"}))
	assert.JSONEq(t, `{"status":"error","error":{"code":"unsolved","message":"gave up","details":["crane:-----"]}}`, out.String())
}
