package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancezuo/adversary-hangman/internal/randutil"
	"github.com/vancezuo/adversary-hangman/internal/words"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"random", ModeRandom, false},
		{"Scrabble", ModeScrabble, false},
		{" ADVERSARY ", ModeAdversary, false},
		{"cheat", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeMetadata(t *testing.T) {
	assert.Equal(t, []Mode{ModeRandom, ModeScrabble, ModeAdversary}, Modes())
	for _, m := range Modes() {
		assert.True(t, m.Valid())
		assert.NotEmpty(t, m.Description())
	}
	assert.Equal(t, "Adversary", ModeAdversary.String())
	assert.Equal(t, "Selects a word randomly.", ModeRandom.Description())
	assert.False(t, Mode("cheat").Valid())
	assert.Equal(t, "cheat", Mode("cheat").String())
}

func TestNewWordSourceVariants(t *testing.T) {
	d := words.New("cat", "dog", "pig")
	tests := []struct {
		mode Mode
		want any
	}{
		{ModeRandom, &RandomWord{}},
		{ModeScrabble, &ScrabbleWord{}},
		{ModeAdversary, &AdversaryWord{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			src, err := NewWordSource(tt.mode, d, randutil.New(1), 3)
			require.NoError(t, err)
			assert.IsType(t, tt.want, src)
		})
	}
}

func TestNewWordSourceErrors(t *testing.T) {
	d := words.New("cat")

	src, err := NewWordSource(Mode("cheat"), d, randutil.New(1), 3)
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Nil(t, src)

	for _, m := range Modes() {
		src, err := NewWordSource(m, d, randutil.New(1), 7)
		assert.ErrorIs(t, err, words.ErrNoWordsOfLength, string(m))
		assert.Nil(t, src)
	}
}
