// Package assets embeds the default hangman word corpus.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// Corpus opens the embedded default word list. The caller closes it.
func Corpus() (fs.File, error) {
	return FS.Open("words.txt")
}
