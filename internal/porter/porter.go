// Package porter implements the Porter suffix-stripping stemmer for English.
//
// The rule set follows Martin Porter's reference implementation, including
// its two departures from the 1980 paper: step 2 rewrites -bli to -ble
// (rather than -abli to -able) and -logi to -log.
package porter

// Stem reduces word to its stem.
//
// Stem expects a lowercase ASCII word. Words containing any byte outside
// 'a'..'z', and words of two letters or fewer, are returned unchanged.
// Stem keeps no state between calls and is safe for concurrent use.
func Stem(word string) string {
	if len(word) <= 2 || !Valid(word) {
		return word
	}

	w := newWord(word)
	w.step1a()
	w.step1b()
	w.step1c()
	w.step2()
	w.step3()
	w.step4()
	w.step5()
	return w.String()
}

// Valid reports whether word consists only of lowercase ASCII letters, the
// alphabet the stemming rules are defined over.
func Valid(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}
