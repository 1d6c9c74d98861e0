package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/vancezuo/adversary-hangman/internal/config"
	"github.com/vancezuo/adversary-hangman/internal/words"
)

// WordsCmd prints how many words a dictionary holds per length.
type WordsCmd struct {
	File string `arg:"" optional:"" type:"existingfile" help:"Word list file (default: WORDS_FILE or the embedded corpus)"`
}

func (c *WordsCmd) Run(cfg *config.Config) error {
	dict, err := loadDictionary(firstNonEmpty(c.File, cfg.WordsFile))
	if err != nil {
		return err
	}
	return printStats(os.Stdout, dict)
}

func printStats(out io.Writer, dict *words.Dictionary) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, headerStyle.Render("Length")+"\t"+headerStyle.Render("Words")+"\t")
	for _, lc := range dict.Stats() {
		fmt.Fprintf(tw, "%d\t%d\t\n", lc.Length, lc.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d words, lengths %d to %d\n",
		dict.TotalWordCount(), dict.MinLength(), dict.MaxLength())
	return err
}
