package text

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "stop words only",
			input: "the and or but in on at",
			want:  nil,
		},
		{
			name:  "basic tokens",
			input: "add JWT authentication to the API",
			want:  []string{"add", "jwt", "authent", "api"},
		},
		{
			name:  "punctuation stripped, hyphens kept",
			input: "fix: the session-expiry bug!",
			want:  []string{"fix", "session-expiry", "bug"},
		},
		{
			name:  "mixed case",
			input: "Create UserProfile Component",
			want:  []string{"creat", "userprofil", "compon"},
		},
		{
			name:  "numbers preserved",
			input: "add base64 encoding to v2 api",
			want:  []string{"add", "base64", "encod", "v2", "api"},
		},
		{
			name:  "single chars filtered",
			input: "a b c real token",
			want:  []string{"real", "token"},
		},
		{
			name:  "variants conflate",
			input: "Connections, connected; CONNECTING.",
			want:  []string{"connect", "connect", "connect"},
		},
		{
			name:  "plurals and adverbs",
			input: "running tests quickly",
			want:  []string{"run", "test", "quickli"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTokenizeChecksStopWordsBeforeStemming(t *testing.T) {
	// "was" would stem to "wa" and slip past the stop list.
	if got := Tokenize("was"); got != nil {
		t.Errorf("Tokenize(%q) = %v, want nil", "was", got)
	}
}

func TestTermFrequency(t *testing.T) {
	tf := TermFrequency(Tokenize("connect connections connected jwt token"))

	if tf["connect"] != 0.6 {
		t.Errorf("tf[connect] = %f, want 0.6", tf["connect"])
	}
	if tf["jwt"] != 0.2 {
		t.Errorf("tf[jwt] = %f, want 0.2", tf["jwt"])
	}
	if tf["token"] != 0.2 {
		t.Errorf("tf[token] = %f, want 0.2", tf["token"])
	}
}

func TestTermFrequencyEmpty(t *testing.T) {
	tf := TermFrequency(nil)
	if len(tf) != 0 {
		t.Errorf("TermFrequency(nil) should be empty, got %v", tf)
	}
}

func TestRankTerms(t *testing.T) {
	got := RankTerms(map[string]float64{"b": 0.25, "a": 0.25, "c": 0.5})
	want := []Term{{"c", 0.5}, {"a", 0.25}, {"b", 0.25}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RankTerms mismatch (-want +got):\n%s", diff)
	}
}
