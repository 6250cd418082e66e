// Package corpus checks a stemmer against word lists: reading them,
// validating against expected stems, and diffing two stemmers.
package corpus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/dustin/go-humanize"
)

// ErrLengthMismatch is returned when a word list and its expected stems
// have different lengths.
var ErrLengthMismatch = errors.New("word and expected lists differ in length")

// maxLatency bounds the histogram; slower calls are recorded as maxLatency.
const maxLatency = int64(time.Second)

// ReadLines returns the lines of r without their line endings.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadFile returns the lines of the file at path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// Mismatch is a word whose stem differs from the expected one.
type Mismatch struct {
	Line int    `json:"line" yaml:"line"`
	Word string `json:"word" yaml:"word"`
	Want string `json:"want" yaml:"want"`
	Got  string `json:"got" yaml:"got"`
}

// Latency summarizes the time spent stemming a single word.
type Latency struct {
	P50  time.Duration `json:"p50" yaml:"p50"`
	P99  time.Duration `json:"p99" yaml:"p99"`
	Max  time.Duration `json:"max" yaml:"max"`
	Mean time.Duration `json:"mean" yaml:"mean"`
}

// Report is the outcome of Validate.
type Report struct {
	Total      int           `json:"total" yaml:"total"`
	Correct    int           `json:"correct" yaml:"correct"`
	Elapsed    time.Duration `json:"elapsed" yaml:"elapsed"`
	Latency    Latency       `json:"latency" yaml:"latency"`
	Mismatches []Mismatch    `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

// Accuracy returns the percentage of words stemmed as expected. An empty
// corpus counts as fully correct.
func (r *Report) Accuracy() float64 {
	if r.Total == 0 {
		return 100
	}
	return float64(r.Correct) / float64(r.Total) * 100
}

// Passed reports whether every word matched.
func (r *Report) Passed() bool {
	return r.Correct == r.Total
}

// Summary renders the report as a few human-readable lines.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ELAPSED TIME %.2fs CORRECT: %s/%s\n",
		r.Elapsed.Seconds(), humanize.Comma(int64(r.Correct)), humanize.Comma(int64(r.Total)))
	fmt.Fprintf(&b, "PERCENTAGE CORRECT: %.2f\n", r.Accuracy())
	fmt.Fprintf(&b, "LATENCY p50 %v p99 %v max %v\n", r.Latency.P50, r.Latency.P99, r.Latency.Max)
	return b.String()
}

// Validate stems each word in turn and compares it with the expected stem
// on the same line. Words are stemmed sequentially so per-word latency is
// not skewed by scheduling.
func Validate(words, expected []string, stem func(string) string) (*Report, error) {
	if len(words) != len(expected) {
		return nil, fmt.Errorf("%w: %d words, %d expected", ErrLengthMismatch, len(words), len(expected))
	}

	hist := hdrhistogram.New(1, maxLatency, 3)
	r := &Report{Total: len(words)}
	start := time.Now()
	for i, word := range words {
		t0 := time.Now()
		got := stem(word)
		hist.RecordValue(min(time.Since(t0).Nanoseconds(), maxLatency))

		if got == expected[i] {
			r.Correct++
			continue
		}
		r.Mismatches = append(r.Mismatches, Mismatch{
			Line: i + 1,
			Word: word,
			Want: expected[i],
			Got:  got,
		})
	}
	r.Elapsed = time.Since(start)

	if hist.TotalCount() > 0 {
		r.Latency = Latency{
			P50:  time.Duration(hist.ValueAtQuantile(50)),
			P99:  time.Duration(hist.ValueAtQuantile(99)),
			Max:  time.Duration(hist.Max()),
			Mean: time.Duration(hist.Mean()),
		}
	}
	return r, nil
}

// Mapper stems a batch of words, keeping their order.
type Mapper interface {
	Map(ctx context.Context, words []string) ([]string, error)
}

// Disagreement is a word two stemmers reduce differently.
type Disagreement struct {
	Line   int    `json:"line" yaml:"line"`
	Word   string `json:"word" yaml:"word"`
	Ours   string `json:"ours" yaml:"ours"`
	Theirs string `json:"theirs" yaml:"theirs"`
}

// Compare stems words with both mappers and returns every word on which
// they disagree, in input order.
func Compare(ctx context.Context, words []string, ours, theirs Mapper) ([]Disagreement, error) {
	a, err := ours.Map(ctx, words)
	if err != nil {
		return nil, fmt.Errorf("stem: %w", err)
	}
	b, err := theirs.Map(ctx, words)
	if err != nil {
		return nil, fmt.Errorf("reference stem: %w", err)
	}

	var out []Disagreement
	for i, word := range words {
		if a[i] != b[i] {
			out = append(out, Disagreement{Line: i + 1, Word: word, Ours: a[i], Theirs: b[i]})
		}
	}
	return out, nil
}
