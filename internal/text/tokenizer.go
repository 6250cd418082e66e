// Package text turns free text into stemmed index terms.
package text

import (
	"sort"
	"strings"
	"unicode"

	"github.com/kuandriy/porter/internal/porter"
)

var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "is": true, "it": true, "as": true,
	"be": true, "was": true, "are": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "can": true, "shall": true, "must": true, "this": true,
	"that": true, "these": true, "those": true, "i": true, "me": true, "my": true,
	"we": true, "our": true, "you": true, "your": true, "he": true, "she": true,
	"his": true, "her": true, "they": true, "them": true, "their": true,
	"what": true, "which": true, "who": true, "when": true, "where": true,
	"how": true, "why": true, "not": true, "no": true, "so": true, "if": true,
	"then": true, "than": true, "too": true, "very": true, "just": true,
	"about": true, "also": true, "into": true, "each": true, "all": true,
	"any": true, "some": true, "more": true, "most": true, "other": true,
	"up": true, "out": true, "its": true, "only": true, "own": true, "same": true,
	"there": true, "here": true, "am": true, "were": true, "while": true,
	"during": true, "before": true, "after": true, "above": true, "below": true,
	"between": true, "through": true, "again": true, "further": true, "once": true,
	"both": true, "such": true, "don": true, "didn": true, "doesn": true,
	"won": true, "isn": true, "aren": true, "wasn": true, "weren": true,
	"let": true, "need": true, "want": true, "like": true, "make": true,
	"think": true, "know": true, "see": true, "get": true, "got": true,
	"go": true, "going": true, "one": true, "two": true, "first": true,
	"new": true, "well": true, "now": true, "way": true, "even": true,
	"back": true, "much": true, "because": true, "thing": true, "things": true,
	"still": true, "us": true, "really": true, "right": true, "re": true,
	"ve": true, "ll": true, "said": true, "say": true, "use": true, "used": true,
}

// Tokenize converts raw text into stemmed, filtered tokens.
// It lowercases, splits on anything that is not a letter, digit, hyphen or
// underscore, drops stop words, stems each token and removes single-character
// results. Tokens with digits or punctuation are kept but not stemmed.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)

	// Hyphenated and snake_case compounds stay whole so the stemmer never
	// sees a fragment like "session" cut out of "session-expiry".
	raw := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_'
	})

	var tokens []string
	for _, t := range raw {
		if stopWords[t] {
			continue
		}
		t = porter.Stem(t)
		if len(t) > 1 {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// TermFrequency computes normalized term frequencies for a token list.
func TermFrequency(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	n := float64(len(tokens))
	if n == 0 {
		n = 1
	}
	for k := range tf {
		tf[k] /= n
	}
	return tf
}

// Term is a token with its normalized frequency.
type Term struct {
	Token string
	Freq  float64
}

// RankTerms orders the terms of tf by descending frequency, ties broken
// alphabetically so output is deterministic.
func RankTerms(tf map[string]float64) []Term {
	terms := make([]Term, 0, len(tf))
	for tok, f := range tf {
		terms = append(terms, Term{Token: tok, Freq: f})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Freq != terms[j].Freq {
			return terms[i].Freq > terms[j].Freq
		}
		return terms[i].Token < terms[j].Token
	})
	return terms
}
