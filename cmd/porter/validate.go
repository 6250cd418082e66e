package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kuandriy/porter/internal/batch"
	"github.com/kuandriy/porter/internal/corpus"
	"github.com/kuandriy/porter/internal/persist"
	"github.com/kuandriy/porter/internal/porter"
)

// ---------------------------------------------------------------------------
// validate: check stems against an expected list
// ---------------------------------------------------------------------------

func (a *app) validateCmd() *cobra.Command {
	var (
		wordsFile    string
		expectedFile string
		reportFile   string
		show         int
		strict       bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Stem a word list and compare it line by line with expected stems",
		Long: `Stems every word in --words and compares the result with the same line
of --expected. Prints elapsed time, the number and percentage of correct
stems, per-word latency, and the first --show mismatches.

With --report the full report, including every mismatch, is written as
JSON, or YAML if the file name ends in .yaml or .yml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := corpus.ReadFile(wordsFile)
			if err != nil {
				return err
			}
			expected, err := corpus.ReadFile(expectedFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "words == %d expected == %d\n", len(words), len(expected))

			r, err := corpus.Validate(words, expected, porter.Stem)
			if err != nil {
				return err
			}
			fmt.Fprint(out, r.Summary())
			for i, m := range r.Mismatches {
				if i == show {
					fmt.Fprintf(out, "  ... %d more\n", len(r.Mismatches)-show)
					break
				}
				fmt.Fprintf(out, "  line %d: %s -> %s (want %s)\n", m.Line, m.Word, m.Got, m.Want)
			}

			a.log.Info("validated corpus",
				zap.Int("total", r.Total),
				zap.Int("correct", r.Correct),
				zap.Duration("elapsed", r.Elapsed))

			if reportFile != "" {
				if err := persist.SaveAtomic(reportFile, r); err != nil {
					return fmt.Errorf("save report: %w", err)
				}
				a.log.Debug("report saved", zap.String("path", reportFile))
			}

			if strict && !r.Passed() {
				return fmt.Errorf("%d of %d words stemmed incorrectly", r.Total-r.Correct, r.Total)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&wordsFile, "words", "data/words.txt", "newline-delimited input words")
	f.StringVar(&expectedFile, "expected", "data/expected.txt", "newline-delimited expected stems")
	f.StringVar(&reportFile, "report", "", "write the full report to this file")
	f.IntVar(&show, "show", 10, "number of mismatches to print")
	f.BoolVar(&strict, "strict", false, "fail unless every word matches")
	return cmd
}

// ---------------------------------------------------------------------------
// compare: diff against the blevesearch Porter stemmer
// ---------------------------------------------------------------------------

func (a *app) compareCmd() *cobra.Command {
	var (
		wordsFile string
		show      int
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "List words this stemmer and bleve's Porter stemmer reduce differently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := corpus.ReadFile(wordsFile)
			if err != nil {
				return err
			}

			ours, err := a.newBatch()
			if err != nil {
				return err
			}
			defer ours.Close()
			theirs, err := a.newBatch(batch.WithFunc(corpus.Reference))
			if err != nil {
				return err
			}
			defer theirs.Close()

			diffs, err := corpus.Compare(cmd.Context(), words, ours, theirs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d of %d words differ\n", len(diffs), len(words))
			for i, d := range diffs {
				if i == show {
					fmt.Fprintf(out, "  ... %d more\n", len(diffs)-show)
					break
				}
				fmt.Fprintf(out, "  line %d: %s -> %s (reference %s)\n", d.Line, d.Word, d.Ours, d.Theirs)
			}
			a.log.Info("compared stemmers", zap.Int("words", len(words)), zap.Int("differ", len(diffs)))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&wordsFile, "words", "data/words.txt", "newline-delimited input words")
	f.IntVar(&show, "show", 20, "number of differences to print")
	return cmd
}
