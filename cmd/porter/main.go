package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kuandriy/porter/internal/batch"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	cfgFile string
	verbose bool
	workers int

	cfg config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "porter",
		Short: "Porter stemmer for English words",
		Long: `porter reduces English words to their stems with the Porter
suffix-stripping algorithm, e.g. "connections", "connected" and
"connecting" all become "connect".

Input words must be lowercase ASCII; anything else passes through unchanged.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default porter.yaml next to the binary)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&a.workers, "workers", 0, "parallel workers, overrides the config file")

	root.AddCommand(
		a.stemCmd(),
		a.tokenizeCmd(),
		a.validateCmd(),
		a.compareCmd(),
	)
	return root
}

// setup loads config and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	path, explicit := a.cfgFile, a.cfgFile != ""
	if !explicit {
		path = defaultConfigPath()
	}

	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}
	if a.workers > 0 {
		cfg.Workers = a.workers
	}
	a.cfg = cfg

	log, err := newLogger(cfg, a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.log = log
	a.log.Debug("config loaded",
		zap.String("path", path),
		zap.Int("workers", cfg.Workers),
		zap.Int("chunk_size", cfg.ChunkSize),
		zap.Int64("cache_size", cfg.CacheSize))
	return nil
}

// newBatch builds a batch stemmer from the loaded config. Extra options are
// applied last.
func (a *app) newBatch(extra ...batch.Option) (*batch.Stemmer, error) {
	return batch.New(append(a.cfg.batchOptions(a.log), extra...)...)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "porter panic: %v\n", r)
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "porter: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}
