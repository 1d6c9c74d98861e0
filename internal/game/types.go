// internal/game/types.go
//
// Core type definitions for the hangman engine.
// Defines:
//   - State: coarse lifecycle of a session (playing/won/lost).
//   - Snapshot: read-only view of a session handed to presenters.

package game

// State is the lifecycle stage of a Session.
//   - "playing": letters may still be played.
//   - "won":     every position of the word has been revealed.
//   - "lost":    no lives remain (including after a surrender).
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// UnrevealedMark is the placeholder used for hidden positions when the
// solved part is rendered as a string.
const UnrevealedMark = '_'

// Snapshot captures everything a presenter needs after each turn.
type Snapshot struct {
	GameID         string `json:"gameId"`
	Mode           Mode   `json:"mode"`
	WordLength     int    `json:"length"`
	SolvedPart     string `json:"solvedPart"`     // UnrevealedMark at hidden positions
	UsedLetters    string `json:"usedLetters"`    // in the order played
	LivesRemaining int    `json:"livesRemaining"`
	MaxLives       int    `json:"maxLives"`
	GameOver       bool   `json:"gameOver"`
	Won            bool   `json:"won"`
	Answer         string `json:"answer,omitempty"` // only set once the game is over
}
