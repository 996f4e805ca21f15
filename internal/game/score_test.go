package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		guess, answer string
		simple        string
		standard      string
	}{
		{"crane", "crate", "ggg-g", "ggg-g"},
		{"crate", "crate", "ggggg", "ggggg"},
		{"trace", "crate", "yggyg", "yggyg"},
		{"plumb", "crate", "-----", "-----"},
		// Repeated letters: simple scoring does not consume answer letters.
		{"speed", "enact", "--yy-", "--y--"},
		{"geese", "crate", "-yy-g", "----g"},
		{"llama", "label", "gyy-y", "gyy--"},
	}
	for _, tt := range tests {
		t.Run(tt.guess+"/"+tt.answer, func(t *testing.T) {
			got, err := Score(tt.guess, tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.simple, got.Pattern())
			assert.Equal(t, tt.guess, got.Word())

			got, err = ScoreStandard(tt.guess, tt.answer)
			require.NoError(t, err)
			assert.Equal(t, tt.standard, got.Pattern())
		})
	}
}

func TestScore_LengthMismatch(t *testing.T) {
	_, err := Score("cranes", "crate")
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = ScoreStandard("cra", "crate")
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestScorerFor(t *testing.T) {
	s, err := ScorerFor("")
	require.NoError(t, err)
	turn, _ := s("speed", "enact")
	assert.Equal(t, "--yy-", turn.Pattern())

	s, err = ScorerFor("Standard")
	require.NoError(t, err)
	turn, _ = s("speed", "enact")
	assert.Equal(t, "--y--", turn.Pattern())

	_, err = ScorerFor("fuzzy")
	assert.Error(t, err)
}

func TestScore_SimpleRepeatedLetterStillAdmitsAnswer(t *testing.T) {
	// Under simple scoring both e's are present; the engine must still keep
	// the answer.
	turn, err := Score("speed", "enact")
	require.NoError(t, err)

	e := newTestEngine("enact", "crane", "eaten")
	words, err := e.Update(turn)
	require.NoError(t, err)
	assert.Contains(t, words, "enact")
}
