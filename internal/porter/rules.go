package porter

// rule rewrites suffix to repl. when, if set, must also accept the letter
// just before the suffix.
type rule struct {
	suffix string
	repl   string
	when   func(c byte) bool
}

// ruleGroup holds the rules tried when the word's key letter equals key.
// Steps 2 and 4 key on the penultimate letter, step 3 on the last one.
type ruleGroup struct {
	key   byte
	rules []rule
}

// Groups and the rules inside them are tried in declaration order.

// step1bRestore repairs stems left by removing -ed or -ing.
var step1bRestore = []rule{
	{suffix: "at", repl: "ate"},
	{suffix: "bl", repl: "ble"},
	{suffix: "iz", repl: "ize"},
}

var step2Rules = []ruleGroup{
	{'a', []rule{
		{suffix: "ational", repl: "ate"},
		{suffix: "itional", repl: "tion"},
	}},
	{'c', []rule{
		{suffix: "enci", repl: "ence"},
		{suffix: "anci", repl: "ance"},
	}},
	{'e', []rule{
		{suffix: "izer", repl: "ize"},
	}},
	{'l', []rule{
		{suffix: "bli", repl: "ble"},
		{suffix: "alli", repl: "al"},
		{suffix: "entli", repl: "ent"},
		{suffix: "eli", repl: "e"},
		{suffix: "ousli", repl: "ous"},
	}},
	{'o', []rule{
		{suffix: "ization", repl: "ize"},
		{suffix: "ation", repl: "ate"},
		{suffix: "ator", repl: "ate"},
	}},
	{'s', []rule{
		{suffix: "alism", repl: "al"},
		{suffix: "iveness", repl: "ive"},
		{suffix: "fulness", repl: "ful"},
		{suffix: "ousness", repl: "ous"},
	}},
	{'t', []rule{
		{suffix: "aliti", repl: "al"},
		{suffix: "iviti", repl: "ive"},
		{suffix: "biliti", repl: "ble"},
	}},
	{'g', []rule{
		{suffix: "logi", repl: "log"},
	}},
}

var step3Rules = []ruleGroup{
	{'e', []rule{
		{suffix: "icate", repl: "ic"},
		{suffix: "ative", repl: ""},
		{suffix: "alize", repl: "al"},
	}},
	{'i', []rule{
		{suffix: "iciti", repl: "ic"},
	}},
	{'l', []rule{
		{suffix: "ical", repl: "ic"},
		{suffix: "ful", repl: ""},
	}},
	{'s', []rule{
		{suffix: "ness", repl: ""},
	}},
}

// afterSOrT accepts -ion only in -sion and -tion.
func afterSOrT(c byte) bool {
	return c == 's' || c == 't'
}

// step4Rules only strip, so repl is unused.
var step4Rules = []ruleGroup{
	{'a', []rule{{suffix: "al"}}},
	{'c', []rule{{suffix: "ance"}, {suffix: "ence"}}},
	{'e', []rule{{suffix: "er"}}},
	{'i', []rule{{suffix: "ic"}}},
	{'l', []rule{{suffix: "able"}, {suffix: "ible"}}},
	{'n', []rule{{suffix: "ant"}, {suffix: "ement"}, {suffix: "ment"}, {suffix: "ent"}}},
	{'o', []rule{{suffix: "ion", when: afterSOrT}, {suffix: "ou"}}},
	{'s', []rule{{suffix: "ism"}}},
	{'t', []rule{{suffix: "ate"}, {suffix: "iti"}}},
	{'u', []rule{{suffix: "ous"}}},
	{'v', []rule{{suffix: "ive"}}},
	{'z', []rule{{suffix: "ize"}}},
}
