// internal/game/engine.go
//
// Core game engine for a single hangman session.
// Responsibilities:
//   - Validate construction (word length present in the dictionary, lives ≥ 1).
//   - Build the WordSource for the chosen mode.
//   - Apply letter guesses: reveal on a hit, cost a life on a miss or repeat.
//   - Track state transitions: playing → won/lost; surrender forces lost.
//
// Notes:
//   - A Session is owned by one caller at a time; it does no locking.
//   - Every mutating call either succeeds fully or returns an error having
//     changed nothing.

package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/google/uuid"

	"github.com/vancezuo/adversary-hangman/internal/words"
)

// Session is one play-through of hangman.
type Session struct {
	ID string

	mode     Mode
	length   int
	maxLives int
	lives    int
	used     []byte // letters in the order played, each at most once
	solved   []byte // revealed letter per position, 0 if hidden
	source   WordSource
}

// NewSession starts a game over dict. rng feeds the word source and is
// owned by the session from here on.
func NewSession(dict *words.Dictionary, mode Mode, length, lives int, rng *rand.Rand) (*Session, error) {
	if dict == nil || !dict.HasLength(length) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWordLength, length)
	}
	if lives < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLifeCount, lives)
	}
	src, err := NewWordSource(mode, dict, rng, length)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:       uuid.NewString(),
		mode:     mode,
		length:   length,
		maxLives: lives,
		lives:    lives,
		solved:   make([]byte, length),
		source:   src,
	}, nil
}

// PlayLetter guesses ch. It returns true on a hit.
//
// Validation rules:
//   - ch must be an ASCII letter (either case).
//   - The game must not be over.
//
// A letter already played is always a miss and costs a life.
func (s *Session) PlayLetter(ch rune) (bool, error) {
	c, ok := asLetter(ch)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrNotALetter, ch)
	}
	if s.IsGameOver() {
		return false, ErrGameAlreadyOver
	}
	if s.hasUsed(c) {
		s.lives--
		return false, nil
	}
	s.used = append(s.used, c)

	var positions []int
	if s.source.HasLetter(c) {
		positions = s.source.LetterPositions(c)
	}
	if len(positions) == 0 {
		s.lives--
		return false, nil
	}
	for _, i := range positions {
		s.solved[i] = c
	}
	return true, nil
}

// Surrender ends the game as lost. Nothing is revealed; use Answer.
func (s *Session) Surrender() error {
	if s.IsGameOver() {
		return ErrGameAlreadyOver
	}
	s.lives = 0
	return nil
}

// HasUsed reports whether ch has been played. Non-letters never have.
func (s *Session) HasUsed(ch rune) bool {
	c, ok := asLetter(ch)
	return ok && s.hasUsed(c)
}

func (s *Session) hasUsed(c byte) bool {
	for _, u := range s.used {
		if u == c {
			return true
		}
	}
	return false
}

// IsSolved reports whether every position has been revealed.
func (s *Session) IsSolved() bool {
	for _, c := range s.solved {
		if c == 0 {
			return false
		}
	}
	return true
}

// IsGameOver reports whether no more moves are possible.
func (s *Session) IsGameOver() bool {
	return s.lives <= 0 || s.IsSolved()
}

// State reports the coarse lifecycle stage.
func (s *Session) State() State {
	switch {
	case s.IsSolved():
		return StateWon
	case s.lives <= 0:
		return StateLost
	default:
		return StatePlaying
	}
}

func (s *Session) LivesRemaining() int { return s.lives }
func (s *Session) MaxLives() int { return s.maxLives }
func (s *Session) WordLength() int { return s.length }
func (s *Session) Mode() Mode { return s.mode }

// UsedLetters returns the letters played so far, in order.
func (s *Session) UsedLetters() []byte {
	return append([]byte(nil), s.used...)
}

// SolvedPart returns the revealed letters; hidden positions are 0.
func (s *Session) SolvedPart() []byte {
	return append([]byte(nil), s.solved...)
}

// Masked renders the solved part with placeholder at hidden positions.
func (s *Session) Masked(placeholder byte) string {
	out := make([]byte, len(s.solved))
	for i, c := range s.solved {
		if c == 0 {
			c = placeholder
		}
		out[i] = c
	}
	return string(out)
}

// Answer returns the word behind the session. For an adversary source
// this is only fixed by the answers given so far, so it is best read once
// the game is over.
func (s *Session) Answer() string {
	return s.source.Answer()
}

// Snapshot captures the session for presentation. The answer is included
// only once the game is over.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		GameID:         s.ID,
		Mode:           s.mode,
		WordLength:     s.length,
		SolvedPart:     s.Masked(UnrevealedMark),
		UsedLetters:    string(s.used),
		LivesRemaining: s.lives,
		MaxLives:       s.maxLives,
		GameOver:       s.IsGameOver(),
		Won:            s.IsSolved(),
	}
	if snap.GameOver {
		snap.Answer = s.Answer()
	}
	return snap
}

// asLetter lower-cases an ASCII letter.
func asLetter(ch rune) (byte, bool) {
	switch {
	case ch >= 'a' && ch <= 'z':
		return byte(ch), true
	case ch >= 'A' && ch <= 'Z':
		return byte(ch - 'A' + 'a'), true
	default:
		return 0, false
	}
}
