// internal/game/adversary.go
//
// AdversaryWord never commits to a secret word up front. It keeps a pool of
// dictionary words consistent with every answer given so far, and on the
// first query of each letter it answers whichever way leaves the largest
// pool behind.
//
// Only words with all-distinct letters enter the pool, so "present" always
// means exactly one position. When no such word exists for the length the
// instance falls back to a RandomWord for its whole life.
//
// The greedy choice maximises the number of guesses needed, which is not
// the same as maximising lives lost: hits are free in hangman.

package game

import (
	"bytes"
	rand "math/rand/v2"
	"strings"

	"github.com/vancezuo/adversary-hangman/internal/words"
)

// AdversaryWord is the deferred-decision word source.
type AdversaryWord struct {
	length     int
	candidates []string
	queried    [26]bool
	partial    []byte // committed letter per position, 0 if none
	fallback   *RandomWord
}

// NewAdversaryWord seeds the candidate pool from every distinct-letter word
// of the given length. rng is only used if the pool is empty.
func NewAdversaryWord(dict *words.Dictionary, rng *rand.Rand, length int) (*AdversaryWord, error) {
	all, err := dict.WordsOfLength(length)
	if err != nil {
		return nil, err
	}
	a := &AdversaryWord{
		length:  length,
		partial: make([]byte, length),
	}
	for _, w := range all {
		if distinctLetters(w) {
			a.candidates = append(a.candidates, w)
		}
	}
	if len(a.candidates) == 0 {
		fb, err := NewRandomWord(dict, rng, length)
		if err != nil {
			return nil, err
		}
		a.fallback = fb
	}
	return a, nil
}

func (a *AdversaryWord) HasLetter(c byte) bool {
	return a.LetterPositions(c) != nil
}

func (a *AdversaryWord) LetterPositions(c byte) []int {
	if a.fallback != nil {
		return a.fallback.LetterPositions(c)
	}
	idx, ok := letterIndex(c)
	if !ok {
		return nil
	}
	if !a.queried[idx] {
		a.commit(c)
		a.queried[idx] = true
	}
	if i := bytes.IndexByte(a.partial, c); i >= 0 {
		return []int{i}
	}
	return nil
}

// Answer returns the first remaining candidate. Calling it again after
// more queries may return a different word, but never one that contradicts
// an answer already given.
func (a *AdversaryWord) Answer() string {
	if a.fallback != nil {
		return a.fallback.Answer()
	}
	return a.candidates[0]
}

// Candidates returns a copy of the words still consistent with every answer.
// It is empty once the fallback is engaged.
func (a *AdversaryWord) Candidates() []string {
	return append([]string(nil), a.candidates...)
}

// Fallback reports whether the instance delegates to a fixed random word.
func (a *AdversaryWord) Fallback() bool { return a.fallback != nil }

// commit partitions the pool on c and keeps the largest partition.
// Partition 0 holds words without c; partition k holds words with c at
// index k-1. Ties go to the lowest partition, so "absent" wins any tie.
func (a *AdversaryWord) commit(c byte) {
	parts := partition(a.candidates, c, a.length)
	best := 0
	for k := 1; k < len(parts); k++ {
		if len(parts[k]) > len(parts[best]) {
			best = k
		}
	}
	a.candidates = parts[best]
	if best > 0 {
		a.partial[best-1] = c
	}
}

// partition groups distinct-letter words by the position of c (see commit).
func partition(pool []string, c byte, length int) [][]string {
	parts := make([][]string, length+1)
	for _, w := range pool {
		k := strings.IndexByte(w, c) + 1
		parts[k] = append(parts[k], w)
	}
	return parts
}

// distinctLetters reports whether no letter repeats in w.
func distinctLetters(w string) bool {
	var seen [26]bool
	for i := 0; i < len(w); i++ {
		idx, ok := letterIndex(w[i])
		if !ok || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}
