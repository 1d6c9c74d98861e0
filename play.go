package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancezuo/adversary-hangman/internal/config"
	"github.com/vancezuo/adversary-hangman/internal/game"
	"github.com/vancezuo/adversary-hangman/internal/randutil"
	"github.com/vancezuo/adversary-hangman/internal/words"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	wordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	hitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	missStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// PlayCmd runs an interactive game on stdin/stdout.
type PlayCmd struct {
	Mode         string `short:"m" help:"Word source: random, scrabble or adversary (overrides DEFAULT_MODE)"`
	Length       int    `short:"n" help:"Word length (overrides DEFAULT_LENGTH)"`
	Lives        int    `short:"l" help:"Lives per game (overrides DEFAULT_LIVES)"`
	RandomLength bool   `short:"r" help:"Pick a new weighted random word length every game"`
	Words        string `short:"w" type:"path" help:"Word list file (overrides WORDS_FILE)"`
	Seed         *int64 `help:"Deterministic RNG seed (overrides SEED)"`
}

// playSettings are the resolved options for a run of games.
type playSettings struct {
	mode         game.Mode
	length       int
	lives        int
	randomLength bool
}

func (c *PlayCmd) Run(cfg *config.Config) error {
	st, err := c.settings(cfg)
	if err != nil {
		return err
	}
	dict, err := loadDictionary(firstNonEmpty(c.Words, cfg.WordsFile))
	if err != nil {
		return err
	}

	seed := randutil.NewSeed()
	switch {
	case c.Seed != nil:
		seed = *c.Seed
	case cfg.Seed != nil:
		seed = *cfg.Seed
	}
	return play(os.Stdin, os.Stdout, dict, randutil.New(seed), st)
}

func (c *PlayCmd) settings(cfg *config.Config) (playSettings, error) {
	st := playSettings{
		mode:         cfg.Mode(),
		length:       cfg.DefaultLength,
		lives:        cfg.DefaultLives,
		randomLength: cfg.RandomLength || c.RandomLength,
	}
	if c.Mode != "" {
		m, err := game.ParseMode(c.Mode)
		if err != nil {
			return st, err
		}
		st.mode = m
	}
	if c.Length != 0 {
		st.length = c.Length
	}
	if c.Lives != 0 {
		st.lives = c.Lives
	}
	if st.lives > cfg.MaxLives {
		return st, fmt.Errorf("%w: %d exceeds MAX_LIVES %d", game.ErrInvalidLifeCount, st.lives, cfg.MaxLives)
	}
	return st, nil
}

// play runs games until the player declines another or input ends.
func play(in io.Reader, out io.Writer, dict *words.Dictionary, rng *rand.Rand, st playSettings) error {
	sc := bufio.NewScanner(in)
	for {
		length := st.length
		if st.randomLength {
			var err error
			if length, err = dict.RandomLength(rng); err != nil {
				return err
			}
		}
		g, err := game.NewSession(dict, st.mode, length, st.lives, randutil.Child(rng))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%s mode: %d letters, %d lives", st.mode, length, st.lives)))
		fmt.Fprintln(out, infoStyle.Render("Type a letter to guess it, or ? to give up."))

		if !playRound(sc, out, g) {
			return sc.Err()
		}

		fmt.Fprint(out, "Play again? [Y/n] ")
		if !sc.Scan() {
			return sc.Err()
		}
		if ans := strings.ToLower(strings.TrimSpace(sc.Text())); ans == "n" || ans == "no" {
			return nil
		}
	}
}

// playRound reads moves until g is over. It returns false if input ran out
// first.
func playRound(sc *bufio.Scanner, out io.Writer, g *game.Session) bool {
	for !g.IsGameOver() {
		render(out, g)
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			return false
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "?" {
			_ = g.Surrender()
			break
		}

		ch, size := utf8.DecodeRuneInString(line)
		if size != len(line) {
			fmt.Fprintln(out, missStyle.Render("One letter at a time."))
			continue
		}
		repeat := g.HasUsed(ch)
		hit, err := g.PlayLetter(ch)
		switch {
		case errors.Is(err, game.ErrNotALetter):
			fmt.Fprintln(out, missStyle.Render(fmt.Sprintf("%q is not a letter.", line)))
		case err != nil:
			fmt.Fprintln(out, missStyle.Render(err.Error()))
		case repeat:
			fmt.Fprintln(out, missStyle.Render(fmt.Sprintf("Already played %s. That costs a life.", line)))
		case hit:
			fmt.Fprintln(out, hitStyle.Render("Yes!"))
		default:
			fmt.Fprintln(out, missStyle.Render("No."))
		}
	}
	finish(out, g)
	return true
}

func render(out io.Writer, g *game.Session) {
	fmt.Fprintf(out, "%s  lives %d/%d  used [%s]\n",
		wordStyle.Render(spaced(g.Masked(game.UnrevealedMark))),
		g.LivesRemaining(), g.MaxLives(), string(g.UsedLetters()))
}

func finish(out io.Writer, g *game.Session) {
	if g.State() == game.StateWon {
		fmt.Fprintln(out, hitStyle.Render("You win! The word was "+g.Answer()+"."))
		return
	}
	fmt.Fprintln(out, missStyle.Render("Out of lives. The word was "+reveal(g)+"."))
}

// reveal upper-cases the letters of the answer the player never uncovered.
func reveal(g *game.Session) string {
	answer := []byte(g.Answer())
	solved := g.SolvedPart()
	for i := range answer {
		if i < len(solved) && solved[i] == 0 {
			answer[i] -= 'a' - 'A'
		}
	}
	return string(answer)
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
