package game

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/vancezuo/adversary-hangman/internal/words"
)

// Mode names a word selection strategy.
type Mode string

const (
	ModeRandom    Mode = "random"
	ModeScrabble  Mode = "scrabble"
	ModeAdversary Mode = "adversary"
)

// modeInfo carries presentation metadata for each mode.
var modeInfo = map[Mode]struct{ name, description string }{
	ModeRandom:    {"Random", "Selects a word randomly."},
	ModeScrabble:  {"Scrabble", "From a small random sample, selects the 'best' Scrabble word."},
	ModeAdversary: {"Adversary", "Always selects a 'most difficult' word for you to guess... ;)"},
}

// Modes returns every mode in display order.
func Modes() []Mode {
	return []Mode{ModeRandom, ModeScrabble, ModeAdversary}
}

// ParseMode resolves a mode by key or display name, ignoring case.
func ParseMode(s string) (Mode, error) {
	key := Mode(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := modeInfo[key]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return key, nil
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	_, ok := modeInfo[m]
	return ok
}

// String returns the display name.
func (m Mode) String() string {
	if info, ok := modeInfo[m]; ok {
		return info.name
	}
	return string(m)
}

// Description returns a short sentence describing the mode.
func (m Mode) Description() string {
	return modeInfo[m].description
}

// NewWordSource builds the WordSource that implements mode.
func NewWordSource(mode Mode, dict *words.Dictionary, rng *rand.Rand, length int) (WordSource, error) {
	var (
		src WordSource
		err error
	)
	switch mode {
	case ModeRandom:
		src, err = NewRandomWord(dict, rng, length)
	case ModeScrabble:
		src, err = NewScrabbleWord(dict, rng, length)
	case ModeAdversary:
		src, err = NewAdversaryWord(dict, rng, length)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}
