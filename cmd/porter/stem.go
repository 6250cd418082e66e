package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kuandriy/porter/internal/text"
)

func (a *app) stemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stem [word...]",
		Short: "Stem words given as arguments, or one word per line on stdin",
		Example: `  porter stem connections running
  porter stem < words.txt > stems.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.newBatch()
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				stems, err := s.Map(cmd.Context(), args)
				if err != nil {
					return err
				}
				for _, stem := range stems {
					fmt.Fprintln(out, stem)
				}
				return nil
			}

			n, err := s.Stream(cmd.Context(), cmd.InOrStdin(), out)
			if err != nil {
				return fmt.Errorf("stem stdin: %w", err)
			}
			a.log.Info("stemmed words", zap.Int("lines", n), zap.Int("workers", s.Workers()))
			return nil
		},
	}
}

func (a *app) tokenizeCmd() *cobra.Command {
	var freq bool

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Split free text on stdin into stemmed index terms, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}

			tokens := text.Tokenize(string(data))
			a.log.Debug("tokenized", zap.Int("bytes", len(data)), zap.Int("tokens", len(tokens)))

			out := cmd.OutOrStdout()
			if freq {
				for _, t := range text.RankTerms(text.TermFrequency(tokens)) {
					fmt.Fprintf(out, "%s\t%.4f\n", t.Token, t.Freq)
				}
				return nil
			}
			for _, t := range tokens {
				fmt.Fprintln(out, t)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&freq, "freq", false, "print each distinct term with its normalized frequency")
	return cmd
}
