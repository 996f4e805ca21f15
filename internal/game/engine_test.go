package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTurn(t *testing.T, notation string) Turn {
	t.Helper()
	turn, err := ParseNotation(notation)
	require.NoError(t, err)
	return turn
}

func newTestEngine(words ...string) *Engine {
	return NewEngine(NewDictionary(5, words))
}

func TestNewEngine_StartsOpen(t *testing.T) {
	e := newTestEngine("crane", "trace", "crate")

	assert.Equal(t, 5, e.WordLength())
	assert.Equal(t, 3, e.Count())
	assert.Equal(t, []string{"crane", "trace", "crate"}, e.Candidates())
	assert.Equal(t, LetterSet(0), e.Required())
	for _, p := range e.Positions() {
		assert.Equal(t, 26, p.Letters().Len())
	}
	assert.Empty(t, e.History())
}

func TestApplyTurn_ExactPinsSlot(t *testing.T) {
	e := newTestEngine("crane")
	require.NoError(t, e.ApplyTurn(mustTurn(t, "xxxxb:----y")))
	require.NoError(t, e.ApplyTurn(mustTurn(t, "qqqqe:----g")))

	got := e.Positions()[4]
	l, ok := got.Pinned()
	require.True(t, ok)
	assert.Equal(t, byte('e'), l)
	assert.Equal(t, "e", got.String())
}

func TestApplyTurn_AbsentEliminatesEverywhere(t *testing.T) {
	e := newTestEngine("crane")
	require.NoError(t, e.ApplyTurn(mustTurn(t, "zzzzz:-----")))
	for i, p := range e.Positions() {
		assert.False(t, p.Allows('z'), "slot %d still allows z", i)
		assert.Equal(t, 25, p.Letters().Len())
	}
}

func TestApplyTurn_PresentEliminatesSlotAndRequires(t *testing.T) {
	e := newTestEngine("crane")
	require.NoError(t, e.ApplyTurn(mustTurn(t, "abcde:y----")))

	assert.True(t, e.Required().Has('a'))
	ps := e.Positions()
	assert.False(t, ps[0].Allows('a'))
	assert.True(t, ps[1].Allows('a'))
}

func TestApplyTurn_Rejects(t *testing.T) {
	e := newTestEngine("crane")

	err := e.ApplyTurn(mustTurn(t, "cran:gggg"))
	assert.ErrorIs(t, err, ErrInvalidTurnLength)

	bad := mustTurn(t, "crane:ggggg")
	bad[2].Mark = Mark("maybe")
	err = e.ApplyTurn(bad)
	assert.ErrorIs(t, err, ErrUnknownClassification)

	upper := mustTurn(t, "crane:ggggg")
	upper[0].Letter = 'C'
	assert.ErrorIs(t, e.ApplyTurn(upper), ErrInvalidLetter)

	// Rejected turns leave no trace.
	assert.Empty(t, e.History())
	assert.Equal(t, 26, e.Positions()[0].Letters().Len())
}

func TestRecompute_CrateScenario(t *testing.T) {
	e := newTestEngine("crane", "trace", "crate", "grate", "plate")
	turn, err := Score("crane", "crate")
	require.NoError(t, err)
	assert.Equal(t, "ggg-g", turn.Pattern())

	words, err := e.Update(turn)
	require.NoError(t, err)
	assert.Equal(t, []string{"crate"}, words)
}

func TestRecompute_RequiredLetters(t *testing.T) {
	e := newTestEngine("crane", "trace", "later", "water", "grime")
	words, err := e.Update(mustTurn(t, "tooth:y----"))
	require.NoError(t, err)
	assert.Equal(t, []string{"later", "water"}, words)
}

func TestRecompute_DuplicateLetterAbsentKeepsClaimedLetter(t *testing.T) {
	// "speed" against "enact": first e is present, the second is absent
	// because the answer holds a single e.
	turn, err := ScoreStandard("speed", "enact")
	require.NoError(t, err)
	require.Equal(t, "--y--", turn.Pattern())

	e := newTestEngine("enact", "ocean", "crane", "eaten")
	words, err := e.Update(turn)
	require.NoError(t, err)
	assert.Equal(t, []string{"enact", "crane"}, words)

	ps := e.Positions()
	assert.True(t, ps[0].Allows('e'))
	assert.True(t, ps[1].Allows('e'))
	assert.False(t, ps[2].Allows('e'))
	assert.False(t, ps[3].Allows('e'))
	assert.True(t, ps[4].Allows('e'))
	assert.True(t, e.Required().Has('e'))
}

func TestRecompute_DuplicateLetterAbsentBesideExact(t *testing.T) {
	turn, err := ScoreStandard("geese", "crate")
	require.NoError(t, err)
	require.Equal(t, "----g", turn.Pattern())

	e := newTestEngine("crate", "trace", "grate")
	words, err := e.Update(turn)
	require.NoError(t, err)
	assert.Equal(t, []string{"crate", "trace"}, words)
}

func TestRecompute_MonotonicAndIdempotent(t *testing.T) {
	e := newTestEngine("crane", "trace", "crate", "grate", "plate", "slate", "least", "steal")
	turns := []string{"slate:--ggg", "crane:-gg-g"}

	prev := e.Count()
	for _, n := range turns {
		words, err := e.Update(mustTurn(t, n))
		if err != nil {
			require.ErrorIs(t, err, ErrEmptyCandidateSet)
		}
		assert.LessOrEqual(t, len(words), prev)
		prev = len(words)
	}

	e2 := newTestEngine("crane", "trace", "crate", "grate", "plate")
	turn := mustTurn(t, "plate:--ggg")
	first, err := e2.Update(turn)
	require.NoError(t, err)
	second, err := e2.Update(turn)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, e2.History(), 2)
}

func TestRecompute_EmptyCandidateSet(t *testing.T) {
	e := newTestEngine("crane", "trace")
	words, err := e.Update(mustTurn(t, "crane:-----"))
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)
	assert.Empty(t, words)
	assert.Equal(t, 0, e.Count())
}

func TestAdmits(t *testing.T) {
	e := newTestEngine("crane")
	require.NoError(t, e.ApplyTurn(mustTurn(t, "stole:---yg")))

	assert.True(t, e.Admits("plane"))
	assert.False(t, e.Admits("crate"))
	assert.False(t, e.Admits("plan"))
}

func TestHistoryIsCopied(t *testing.T) {
	e := newTestEngine("crane")
	turn := mustTurn(t, "crane:ggggg")
	require.NoError(t, e.ApplyTurn(turn))

	h := e.History()
	h[0][0].Letter = 'x'
	turn[1].Letter = 'y'
	assert.Equal(t, "crane:ggggg", e.History()[0].String())
}
