package porter

// word is the buffer a single Stem call owns. k is the index of the last
// letter of the logical word; bytes past k are left over from earlier
// rewrites and are never read.
type word struct {
	b []byte
	k int
}

func newWord(s string) *word {
	return &word{b: []byte(s), k: len(s) - 1}
}

func (w *word) String() string {
	return string(w.b[:w.k+1])
}

// last returns the final letter of the logical word.
func (w *word) last() byte {
	return w.b[w.k]
}

// penultimate returns the letter before the final one, or 0 for a one-letter
// word.
func (w *word) penultimate() byte {
	if w.k < 1 {
		return 0
	}
	return w.b[w.k-1]
}

// at returns b[i], or 0 when i falls before the start of the word.
func (w *word) at(i int) byte {
	if i < 0 {
		return 0
	}
	return w.b[i]
}

// isConsonant reports whether b[i] is a consonant. 'y' is a consonant at the
// start of the word or after a vowel, and a vowel after a consonant.
func (w *word) isConsonant(i int) bool {
	switch w.b[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		return i == 0 || !w.isConsonant(i-1)
	}
	return true
}

// measure counts the VC sequences in b[0..j]. Writing [C] for an optional
// leading consonant run, a stem has the form [C](VC){m}[V].
func (w *word) measure(j int) int {
	i := 0
	for i <= j && w.isConsonant(i) {
		i++
	}
	m := 0
	for i <= j {
		for i <= j && !w.isConsonant(i) {
			i++
		}
		if i > j {
			break
		}
		for i <= j && w.isConsonant(i) {
			i++
		}
		m++
	}
	return m
}

// hasVowel reports whether b[0..j] contains a vowel.
func (w *word) hasVowel(j int) bool {
	for i := 0; i <= j; i++ {
		if !w.isConsonant(i) {
			return true
		}
	}
	return false
}

// doubleConsonant reports whether b[i-1..i] is the same consonant twice.
func (w *word) doubleConsonant(i int) bool {
	if i < 1 || w.b[i] != w.b[i-1] {
		return false
	}
	return w.isConsonant(i)
}

// cvc reports whether b[i-2..i] is consonant-vowel-consonant and b[i] is not
// w, x or y. It marks short stems like hop, fil, rat that take back an 'e'.
func (w *word) cvc(i int) bool {
	if i < 2 || !w.isConsonant(i) || w.isConsonant(i-1) || !w.isConsonant(i-2) {
		return false
	}
	switch w.b[i] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}

// endsWith reports whether the logical word ends with suffix. On a match it
// returns j, the index of the last letter before the suffix (-1 when the
// suffix is the whole word).
func (w *word) endsWith(suffix string) (j int, ok bool) {
	n := len(suffix)
	if n > w.k+1 {
		return 0, false
	}
	if string(w.b[w.k-n+1:w.k+1]) != suffix {
		return 0, false
	}
	return w.k - n, true
}

// replace writes s after boundary j and makes it the new end of the word.
// Callers only ever write over the suffix they just matched, or over letters
// an earlier step cut off, so s always fits inside the original buffer.
func (w *word) replace(j int, s string) {
	copy(w.b[j+1:], s)
	w.k = j + len(s)
}
