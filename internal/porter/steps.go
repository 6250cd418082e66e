package porter

// step1a removes plural endings.
//
//	caresses -> caress
//	ponies   -> poni
//	caress   -> caress
//	cats     -> cat
func (w *word) step1a() {
	if w.last() != 's' {
		return
	}
	if _, ok := w.endsWith("sses"); ok {
		w.k -= 2
	} else if _, ok := w.endsWith("ies"); ok {
		w.k -= 2
	} else if w.b[w.k-1] != 's' {
		w.k--
	}
}

// step1b removes -eed, -ed and -ing, then tidies the stem left behind.
//
//	agreed    -> agree
//	plastered -> plaster
//	motoring  -> motor
//	conflated -> conflate
//	hopping   -> hop
//	filing    -> file
func (w *word) step1b() {
	if j, ok := w.endsWith("eed"); ok {
		if w.measure(j) > 0 {
			w.k--
		}
		return
	}

	j, ok := w.endsWith("ed")
	if !ok {
		j, ok = w.endsWith("ing")
	}
	if !ok || !w.hasVowel(j) {
		return
	}
	w.k = j

	for _, r := range step1bRestore {
		if j, ok := w.endsWith(r.suffix); ok {
			w.replace(j, r.repl)
			return
		}
	}

	switch {
	case w.doubleConsonant(w.k):
		switch w.last() {
		case 'l', 's', 'z':
		default:
			w.k--
		}
	case w.measure(w.k) == 1 && w.cvc(w.k):
		w.replace(w.k, "e")
	}
}

// step1c turns a final y into i when the stem has a vowel.
func (w *word) step1c() {
	if j, ok := w.endsWith("y"); ok && w.hasVowel(j) {
		w.b[w.k] = 'i'
	}
}

func (w *word) step2() {
	w.rewrite(step2Rules, w.penultimate)
}

func (w *word) step3() {
	w.rewrite(step3Rules, w.last)
}

// rewrite applies every rule of every group whose key matches, as long as
// the stem before the suffix has a positive measure. key is evaluated again
// for each group because a rewrite changes the word's ending.
func (w *word) rewrite(table []ruleGroup, key func() byte) {
	for _, g := range table {
		if key() != g.key {
			continue
		}
		for _, r := range g.rules {
			if j, ok := w.endsWith(r.suffix); ok && w.measure(j) > 0 {
				w.replace(j, r.repl)
			}
		}
	}
}

// step4 strips the first matching derivational suffix when the remaining
// stem has measure above one. At most one rule fires.
func (w *word) step4() {
	for _, g := range step4Rules {
		if w.penultimate() != g.key {
			continue
		}
		for _, r := range g.rules {
			j, ok := w.endsWith(r.suffix)
			if !ok || (r.when != nil && !r.when(w.at(j))) {
				continue
			}
			if w.measure(j) > 1 {
				w.k = j
			}
			return
		}
	}
}

// step5 drops a final e on long enough stems and reduces a final ll to l.
// Both tests measure the word as it was on entry.
func (w *word) step5() {
	j := w.k
	if w.last() == 'e' {
		if m := w.measure(j); m > 1 || m == 1 && !w.cvc(w.k-1) {
			w.k--
		}
	}
	if w.last() == 'l' && w.doubleConsonant(w.k) && w.measure(j) > 1 {
		w.k--
	}
}
