// internal/game/source.go
//
// Word sources answer "is this letter in the word, and where?" for a
// hangman game. A source does not have to commit to one word up front, but
// once it has answered for a letter that answer never changes.
//
// Implementations:
//   - RandomWord:    one uniformly random word, fixed at construction.
//   - ScrabbleWord:  best Scrabble score out of a small random sample.
//   - AdversaryWord: defers the choice, see adversary.go.

package game

import (
	rand "math/rand/v2"

	"github.com/vancezuo/adversary-hangman/internal/words"
)

// ScrabbleSampleSize is how many random words a ScrabbleWord draws.
const ScrabbleSampleSize = 10

// letterValues are the standard English Scrabble tile values, a..z.
var letterValues = [26]int{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3,
	1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10,
}

// WordSource answers letter queries for a game's secret word.
// Letters are lower-case ASCII; anything else is never present.
type WordSource interface {
	// HasLetter reports whether c appears in the word.
	HasLetter(c byte) bool
	// LetterPositions returns every 0-based index of c, or nil if absent.
	LetterPositions(c byte) []int
	// Answer returns a word consistent with every answer given so far.
	Answer() string
}

// RandomWord is a word drawn uniformly from a dictionary.
type RandomWord struct {
	word string
}

// NewRandomWord draws one word of the given length.
func NewRandomWord(dict *words.Dictionary, rng *rand.Rand, length int) (*RandomWord, error) {
	w, err := dict.RandomWord(rng, length)
	if err != nil {
		return nil, err
	}
	return &RandomWord{word: w}, nil
}

func (r *RandomWord) HasLetter(c byte) bool {
	return r.LetterPositions(c) != nil
}

func (r *RandomWord) LetterPositions(c byte) []int {
	var out []int
	for i := 0; i < len(r.word); i++ {
		if r.word[i] == c {
			out = append(out, i)
		}
	}
	return out
}

func (r *RandomWord) Answer() string { return r.word }

// ScrabbleWord keeps the highest scoring of ScrabbleSampleSize random draws.
// Draws are independent, so small buckets may yield the same word twice.
type ScrabbleWord struct {
	chosen *RandomWord
}

// NewScrabbleWord samples the dictionary and keeps the best word. Ties go to
// the earliest draw.
func NewScrabbleWord(dict *words.Dictionary, rng *rand.Rand, length int) (*ScrabbleWord, error) {
	best, err := NewRandomWord(dict, rng, length)
	if err != nil {
		return nil, err
	}
	bestScore := ScrabbleScore(best.word)
	for i := 1; i < ScrabbleSampleSize; i++ {
		cand, err := NewRandomWord(dict, rng, length)
		if err != nil {
			return nil, err
		}
		if score := ScrabbleScore(cand.word); score > bestScore {
			best, bestScore = cand, score
		}
	}
	return &ScrabbleWord{chosen: best}, nil
}

func (s *ScrabbleWord) HasLetter(c byte) bool { return s.chosen.HasLetter(c) }
func (s *ScrabbleWord) LetterPositions(c byte) []int { return s.chosen.LetterPositions(c) }
func (s *ScrabbleWord) Answer() string { return s.chosen.Answer() }

// ScrabbleScore sums the tile values of word's letters, ignoring case.
// Non-letters score zero.
func ScrabbleScore(word string) int {
	total := 0
	for i := 0; i < len(word); i++ {
		if idx, ok := letterIndex(lower(word[i])); ok {
			total += letterValues[idx]
		}
	}
	return total
}

// letterIndex maps a lower-case ASCII letter to 0..25.
func letterIndex(c byte) (int, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
