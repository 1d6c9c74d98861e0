// internal/words/dictionary.go
//
// Dictionary of candidate hangman words, bucketed by length.
//
// Responsibilities:
//   - Build a corpus from whitespace-delimited text (file, stream, or the
//     embedded default list under assets/).
//   - Keep only purely alphabetic tokens, lower-cased.
//   - Answer per-length queries and draw random words / lengths from an
//     injected generator.
//
// A Dictionary is immutable once built and may be shared by any number of
// game sessions, including across goroutines.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"strings"

	"github.com/vancezuo/adversary-hangman/assets"
)

var (
	// ErrCorpusUnavailable reports that the word source could not be opened or read.
	ErrCorpusUnavailable = errors.New("words: corpus unavailable")
	// ErrNoWordsOfLength reports a query for a length with no words.
	ErrNoWordsOfLength = errors.New("words: no words of requested length")
)

// maxTokenSize bounds a single whitespace-delimited token while scanning.
const maxTokenSize = 1 << 20

// Dictionary holds words grouped by length. buckets[L-1] holds every word
// of length L.
type Dictionary struct {
	buckets [][]string
	total   int
}

// LengthCount is one row of Dictionary.Stats.
type LengthCount struct {
	Length int `json:"length"`
	Count  int `json:"count"`
}

// Load builds a Dictionary from r. Tokens that are not purely alphabetic
// are dropped silently.
func Load(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		d.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}
	return d, nil
}

// LoadFile builds a Dictionary from the file at path.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}
	defer f.Close()
	return Load(f)
}

// Default builds a Dictionary from the embedded corpus.
func Default() (*Dictionary, error) {
	f, err := assets.Corpus()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusUnavailable, err)
	}
	defer f.Close()
	return Load(f)
}

// New builds a Dictionary from an in-memory word list, applying the same
// filtering as Load.
func New(list ...string) *Dictionary {
	d := &Dictionary{}
	for _, w := range list {
		d.add(w)
	}
	return d
}

// add normalises a token and files it under its length.
func (d *Dictionary) add(token string) {
	w := strings.ToLower(token)
	if w == "" || !isAlpha(w) {
		return
	}
	for len(d.buckets) < len(w) {
		d.buckets = append(d.buckets, nil)
	}
	d.buckets[len(w)-1] = append(d.buckets[len(w)-1], w)
	d.total++
}

// RandomWord returns a uniformly chosen word of the given length.
func (d *Dictionary) RandomWord(rng *rand.Rand, length int) (string, error) {
	bucket, err := d.bucket(length)
	if err != nil {
		return "", err
	}
	return bucket[rng.IntN(len(bucket))], nil
}

// WordsOfLength returns a copy of every word of the given length.
func (d *Dictionary) WordsOfLength(length int) ([]string, error) {
	bucket, err := d.bucket(length)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), bucket...), nil
}

// HasLength reports whether at least one word has the given length.
func (d *Dictionary) HasLength(length int) bool {
	if length < 1 || length > len(d.buckets) {
		return false
	}
	return len(d.buckets[length-1]) > 0
}

// MinLength returns the shortest word length, or 0 for an empty dictionary.
func (d *Dictionary) MinLength() int {
	for l := 1; l <= len(d.buckets); l++ {
		if d.HasLength(l) {
			return l
		}
	}
	return 0
}

// MaxLength returns the longest word length, or 0 for an empty dictionary.
// Buckets only grow to the longest word seen, so the last one is never empty.
func (d *Dictionary) MaxLength() int {
	return len(d.buckets)
}

// TotalWordCount returns the number of words across all lengths.
func (d *Dictionary) TotalWordCount() int {
	return d.total
}

// RandomLength picks a word length weighted by how many words have it.
// A uniform draw in [1, total] walks the buckets in ascending length,
// subtracting each bucket's size until the draw is used up.
func (d *Dictionary) RandomLength(rng *rand.Rand) (int, error) {
	if d.total == 0 {
		return 0, ErrNoWordsOfLength
	}
	weight := 1 + rng.IntN(d.total)
	length := 0
	for weight > 0 {
		weight -= len(d.buckets[length])
		length++
	}
	return length, nil
}

// Stats lists the word count of every populated length in ascending order.
func (d *Dictionary) Stats() []LengthCount {
	out := []LengthCount{}
	for i, b := range d.buckets {
		if len(b) > 0 {
			out = append(out, LengthCount{Length: i + 1, Count: len(b)})
		}
	}
	return out
}

func (d *Dictionary) bucket(length int) ([]string, error) {
	if !d.HasLength(length) {
		return nil, fmt.Errorf("%w: %d", ErrNoWordsOfLength, length)
	}
	return d.buckets[length-1], nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
