package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuandriy/porter/internal/batch"
	"github.com/kuandriy/porter/internal/porter"
)

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("running\r\ncats\n\nsky"))
	require.NoError(t, err)
	assert.Equal(t, []string{"running", "cats", "", "sky"}, lines)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("feed\nagreed\n"), 0644))

	lines, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"feed", "agreed"}, lines)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

// The corpus shipped with the stemmer must validate at 100%.
func TestValidatePorterCorpus(t *testing.T) {
	words, err := ReadFile(filepath.Join("..", "porter", "testdata", "words.txt"))
	require.NoError(t, err)
	expected, err := ReadFile(filepath.Join("..", "porter", "testdata", "expected.txt"))
	require.NoError(t, err)

	r, err := Validate(words, expected, porter.Stem)
	require.NoError(t, err)
	assert.Equal(t, len(words), r.Total)
	assert.True(t, r.Passed(), "mismatches: %+v", r.Mismatches)
	assert.Equal(t, 100.0, r.Accuracy())
	assert.LessOrEqual(t, r.Latency.P50, r.Latency.Max)
}

func TestValidateMismatches(t *testing.T) {
	words := []string{"running", "caresses", "agreed", "sky"}
	expected := []string{"run", "caress", "agree", "sky"}

	r, err := Validate(words, expected, porter.Stem)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Total)
	assert.Equal(t, 3, r.Correct)
	assert.False(t, r.Passed())
	assert.Equal(t, 75.0, r.Accuracy())
	assert.Equal(t, []Mismatch{{Line: 3, Word: "agreed", Want: "agree", Got: "agre"}}, r.Mismatches)
}

func TestValidateLengthMismatch(t *testing.T) {
	_, err := Validate([]string{"a", "b"}, []string{"a"}, porter.Stem)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestValidateEmpty(t *testing.T) {
	r, err := Validate(nil, nil, porter.Stem)
	require.NoError(t, err)
	assert.True(t, r.Passed())
	assert.Equal(t, 100.0, r.Accuracy())
	assert.Zero(t, r.Latency)
}

func TestSummary(t *testing.T) {
	r := &Report{Total: 23531, Correct: 23520}
	s := r.Summary()
	assert.Contains(t, s, "CORRECT: 23,520/23,531")
	assert.Contains(t, s, "PERCENTAGE CORRECT: 99.95")
}

func TestCompare(t *testing.T) {
	ours, err := batch.New(batch.WithWorkers(2))
	require.NoError(t, err)
	// A stemmer that never strips -ing.
	theirs, err := batch.New(batch.WithFunc(func(w string) string {
		if strings.HasSuffix(w, "ing") {
			return w
		}
		return porter.Stem(w)
	}))
	require.NoError(t, err)

	words := []string{"cats", "running", "connection", "motoring"}
	diffs, err := Compare(context.Background(), words, ours, theirs)
	require.NoError(t, err)
	assert.Equal(t, []Disagreement{
		{Line: 2, Word: "running", Ours: "run", Theirs: "running"},
		{Line: 4, Word: "motoring", Ours: "motor", Theirs: "motoring"},
	}, diffs)
}

func TestCompareCancelled(t *testing.T) {
	s, err := batch.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Compare(ctx, []string{"running"}, s, s)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReferenceAgreesOnCommonWords(t *testing.T) {
	for _, w := range []string{"connections", "running", "cats"} {
		assert.Equal(t, porter.Stem(w), Reference(w), w)
	}
}
