// Package batch stems word lists in parallel. Output order always matches
// input order.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kuandriy/porter/internal/porter"
)

// DefaultChunkSize is the number of lines Stream reads before stemming them.
const DefaultChunkSize = 4096

// checkEvery is how many words a worker stems between context checks.
const checkEvery = 1024

// Stemmer maps words to stems with a fixed pool of workers.
type Stemmer struct {
	stem      func(string) string
	workers   int
	chunkSize int
	cacheSize int64
	cache     *ristretto.Cache[string, string]
	log       *zap.Logger
}

// Option configures a Stemmer.
type Option func(*Stemmer)

// WithWorkers sets the number of goroutines used per batch.
func WithWorkers(n int) Option {
	return func(s *Stemmer) { s.workers = n }
}

// WithChunkSize sets how many lines Stream buffers per batch.
func WithChunkSize(n int) Option {
	return func(s *Stemmer) { s.chunkSize = n }
}

// WithCache enables a memo cache holding up to entries stems. Useful for
// running text, where a few words make up most tokens.
func WithCache(entries int64) Option {
	return func(s *Stemmer) { s.cacheSize = entries }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Stemmer) {
		if l != nil {
			s.log = l
		}
	}
}

// WithFunc replaces the stemming function. The default is porter.Stem.
func WithFunc(f func(string) string) Option {
	return func(s *Stemmer) { s.stem = f }
}

// New returns a Stemmer. Close it when a cache is configured.
func New(opts ...Option) (*Stemmer, error) {
	s := &Stemmer{
		stem:      porter.Stem,
		workers:   runtime.NumCPU(),
		chunkSize: DefaultChunkSize,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.workers < 1 {
		s.workers = 1
	}
	if s.chunkSize < 1 {
		s.chunkSize = DefaultChunkSize
	}

	if s.cacheSize > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config[string, string]{
			NumCounters: s.cacheSize * 10,
			MaxCost:     s.cacheSize,
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("create stem cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// Close releases the cache, if any.
func (s *Stemmer) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}

// Workers returns the configured parallelism.
func (s *Stemmer) Workers() int {
	return s.workers
}

func (s *Stemmer) one(word string) string {
	if s.cache == nil {
		return s.stem(word)
	}
	if stem, ok := s.cache.Get(word); ok {
		return stem
	}
	stem := s.stem(word)
	s.cache.Set(word, stem, 1)
	return stem
}

// Map stems every word. The result has the same length and order as words.
// Words are split into contiguous shards, one per worker; Map returns the
// context's error if it is cancelled before all shards finish.
func (s *Stemmer) Map(ctx context.Context, words []string) ([]string, error) {
	out := make([]string, len(words))
	if len(words) == 0 {
		return out, nil
	}

	start := time.Now()
	n := min(s.workers, len(words))
	shard := (len(words) + n - 1) / n

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(words); lo += shard {
		lo, hi := lo, min(lo+shard, len(words))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%checkEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				out[i] = s.one(words[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug("stemmed batch",
		zap.Int("words", len(words)),
		zap.Int("workers", n),
		zap.Duration("elapsed", time.Since(start)))
	return out, nil
}

// Stream reads newline-delimited words from r and writes their stems to w,
// one per line and in the same order. Blank lines stay blank. It returns the
// number of lines written.
func (s *Stemmer) Stream(ctx context.Context, r io.Reader, w io.Writer) (int, error) {
	sc := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	chunk := make([]string, 0, s.chunkSize)
	total := 0

	flush := func() error {
		stems, err := s.Map(ctx, chunk)
		if err != nil {
			return err
		}
		for _, stem := range stems {
			if _, err := bw.WriteString(stem); err != nil {
				return fmt.Errorf("write stems: %w", err)
			}
			if err := bw.WriteByte('\n'); err != nil {
				return fmt.Errorf("write stems: %w", err)
			}
		}
		total += len(chunk)
		chunk = chunk[:0]
		return nil
	}

	for sc.Scan() {
		chunk = append(chunk, sc.Text())
		if len(chunk) == s.chunkSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return total, fmt.Errorf("read words: %w", err)
	}
	if err := flush(); err != nil {
		return total, err
	}
	if err := bw.Flush(); err != nil {
		return total, fmt.Errorf("write stems: %w", err)
	}

	s.log.Debug("stream done", zap.Int("lines", total))
	return total, nil
}
