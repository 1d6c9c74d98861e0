package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancezuo/adversary-hangman/internal/randutil"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestLoadFiltersTokens(t *testing.T) {
	d, err := Load(strings.NewReader("Cat dog's\n  PIG 42 x-ray\tOwl\n\nzebra!  a"))
	require.NoError(t, err)

	assert.Equal(t, 4, d.TotalWordCount())
	three, err := d.WordsOfLength(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "pig", "owl"}, three)
	assert.True(t, d.HasLength(1))
	assert.False(t, d.HasLength(5), "zebra! is not alphabetic")
}

func TestLoadReadFailure(t *testing.T) {
	_, err := Load(failingReader{})
	assert.ErrorIs(t, err, ErrCorpusUnavailable)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha beta\ngamma"), 0o600))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, d.TotalWordCount())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, ErrCorpusUnavailable)
}

func TestDefaultCorpus(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	assert.Greater(t, d.TotalWordCount(), 1000)
	assert.Equal(t, 1, d.MinLength())
	assert.True(t, d.HasLength(4))
}

func TestHasLength(t *testing.T) {
	d := New("cat", "house")
	tests := []struct {
		length int
		want   bool
	}{
		{-1, false},
		{0, false},
		{1, false},
		{3, true},
		{4, false},
		{5, true},
		{6, false},
		{100, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, d.HasLength(tt.length), "length %d", tt.length)
	}
}

func TestMinMaxLength(t *testing.T) {
	d := New("house", "cat", "elephant")
	assert.Equal(t, 3, d.MinLength())
	assert.Equal(t, 8, d.MaxLength())

	empty := New()
	assert.Equal(t, 0, empty.MinLength())
	assert.Equal(t, 0, empty.MaxLength())
}

func TestRandomWordHasRequestedLength(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	rng := randutil.New(1)

	for l := d.MinLength(); l <= d.MaxLength(); l++ {
		if !d.HasLength(l) {
			continue
		}
		for i := 0; i < 20; i++ {
			w, err := d.RandomWord(rng, l)
			require.NoError(t, err)
			assert.Len(t, w, l)
			assert.True(t, isAlpha(w), w)
		}
	}
}

func TestRandomWordMissingLength(t *testing.T) {
	d := New("cat")
	_, err := d.RandomWord(randutil.New(1), 4)
	assert.ErrorIs(t, err, ErrNoWordsOfLength)
	_, err = d.WordsOfLength(0)
	assert.ErrorIs(t, err, ErrNoWordsOfLength)
}

func TestWordsOfLengthIsACopy(t *testing.T) {
	d := New("cat", "dog")
	ws, err := d.WordsOfLength(3)
	require.NoError(t, err)
	ws[0] = "zzz"

	again, err := d.WordsOfLength(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog"}, again)
}

func TestRandomLengthWeightedByPopulation(t *testing.T) {
	// 1 word of length 2, 9 words of length 3.
	d := New("at", "cat", "dog", "pig", "owl", "cow", "hen", "fox", "elk", "yak")
	rng := randutil.New(99)

	counts := map[int]int{}
	const draws = 5000
	for i := 0; i < draws; i++ {
		l, err := d.RandomLength(rng)
		require.NoError(t, err)
		counts[l]++
	}
	assert.Len(t, counts, 2)
	assert.InDelta(t, 0.1, float64(counts[2])/draws, 0.03)
	assert.InDelta(t, 0.9, float64(counts[3])/draws, 0.03)
}

func TestRandomLengthSkipsEmptyBuckets(t *testing.T) {
	d := New("a", "elephant")
	rng := randutil.New(3)
	for i := 0; i < 200; i++ {
		l, err := d.RandomLength(rng)
		require.NoError(t, err)
		assert.True(t, d.HasLength(l), "length %d", l)
	}
}

func TestRandomLengthEmpty(t *testing.T) {
	_, err := New().RandomLength(randutil.New(1))
	assert.ErrorIs(t, err, ErrNoWordsOfLength)
}

func TestStats(t *testing.T) {
	d := New("a", "cat", "dog", "house")
	assert.Equal(t, []LengthCount{{1, 1}, {3, 2}, {5, 1}}, d.Stats())
	assert.Equal(t, []LengthCount{}, New().Stats())
}
