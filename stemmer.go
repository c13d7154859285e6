package latimes

// ═══════════════════════════════════════════════════════════════════════════════
// CLASSICAL PORTER STEMMER (Porter, 1980)
// ═══════════════════════════════════════════════════════════════════════════════
// spec §4.2 names the classical 5-step suffix-stripping algorithm specifically,
// not Porter2/Snowball (github.com/kljensen/snowball implements Porter2,
// which diverges on several suffix rules and region definitions — see
// DESIGN.md). No classical-Porter Go library appears
// anywhere in the retrieved example pool, so this is a direct port of the
// reference algorithm, kept in the original five-step shape so it stays
// checkable against Porter's published step tables.
//
// Terminology below follows the paper: a word is seen as
//
//	[C](VC){m}[V]
//
// where C is a (possibly empty) run of consonants, V a run of vowels, and m
// ("the measure") counts the VC repetitions. Rules are conditioned on m and
// on the literal suffix present.
// ═══════════════════════════════════════════════════════════════════════════════

// Stem reduces one lowercase token to its Porter stem. Tokens containing any
// byte outside [a-z] are returned unchanged (spec §4.2: "characters outside
// [A-Za-z] within a token are passed through untouched") since the algorithm
// is only defined over runs of letters.
func Stem(token string) string {
	if token == "" {
		return token
	}
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c < 'a' || c > 'z' {
			return token
		}
	}
	if len(token) <= 2 {
		// Steps below assume at least a 3-letter stem to operate on
		// meaningfully; Porter's own implementation leaves such words
		// untouched in practice since m() is 0 for them everywhere.
		return token
	}

	p := &porterWord{b: []byte(token), k0: 0}
	p.k = len(p.b) - 1

	p.step1ab()
	p.step1c()
	p.step2()
	p.step3()
	p.step4()
	p.step5()

	return string(p.b[p.k0 : p.k+1])
}

// porterWord holds the mutable working buffer and the two indices (k0, k)
// that bound the "live" portion of the word as steps shrink it from the end.
// j marks the boundary found by the most recent call to ends().
type porterWord struct {
	b     []byte
	k0, k int
	j     int
}

// cons reports whether b[i] is a consonant. 'y' is a consonant unless it
// follows a consonant (so in "by" the y is a vowel, in "say" a consonant).
func (p *porterWord) cons(i int) bool {
	switch p.b[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == p.k0 {
			return true
		}
		return !p.cons(i - 1)
	}
	return true
}

// m computes the measure: the number of VC sequences between k0 and j.
func (p *porterWord) m() int {
	n := 0
	i := p.k0
	for {
		if i > p.j {
			return n
		}
		if !p.cons(i) {
			break
		}
		i++
	}
	i++
	for {
		for {
			if i > p.j {
				return n
			}
			if p.cons(i) {
				break
			}
			i++
		}
		i++
		n++
		for {
			if i > p.j {
				return n
			}
			if !p.cons(i) {
				break
			}
			i++
		}
		i++
	}
}

// vowelInStem reports whether b[k0..j] contains a vowel.
func (p *porterWord) vowelInStem() bool {
	for i := p.k0; i <= p.j; i++ {
		if !p.cons(i) {
			return true
		}
	}
	return false
}

// doubleC reports whether b[j-1],b[j] are a double consonant (e.g. "tt").
func (p *porterWord) doubleC(j int) bool {
	if j < p.k0+1 {
		return false
	}
	if p.b[j] != p.b[j-1] {
		return false
	}
	return p.cons(j)
}

// cvc reports whether b[i-2..i] has the consonant-vowel-consonant shape,
// with the final consonant not w, x, or y (used to decide whether to restore
// a trailing "e", e.g. "hop" qualifies, "sky" does not).
func (p *porterWord) cvc(i int) bool {
	if i < p.k0+2 || !p.cons(i) || p.cons(i-1) || !p.cons(i-2) {
		return false
	}
	switch p.b[i] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}

// ends reports whether the live word ends with s; on a match it sets j to
// the index just before the matched suffix.
func (p *porterWord) ends(s string) bool {
	l := len(s)
	o := p.k - l + 1
	if o < p.k0 {
		return false
	}
	if string(p.b[o:p.k+1]) != s {
		return false
	}
	p.j = p.k - l
	return true
}

// setTo replaces whatever follows j with s and adjusts k.
func (p *porterWord) setTo(s string) {
	o := p.j + 1
	p.b = append(p.b[:o], s...)
	p.k = o + len(s) - 1
}

// r replaces the matched suffix with s, but only if m() > 0 (the stem
// preceding the suffix has at least one VC sequence).
func (p *porterWord) r(s string) {
	if p.m() > 0 {
		p.setTo(s)
	}
}

// step1ab strips plurals and participles: sses/ies/ss/s, then eed/ed/ing,
// with the usual at/bl/iz restoration and double-consonant/CVC cleanup.
func (p *porterWord) step1ab() {
	if p.b[p.k] == 's' {
		switch {
		case p.ends("sses"):
			p.k -= 2
		case p.ends("ies"):
			p.setTo("i")
		case p.k > p.k0 && p.b[p.k-1] != 's':
			p.k--
		}
	}
	if p.ends("eed") {
		if p.m() > 0 {
			p.k--
		}
	} else if (p.ends("ed") || p.ends("ing")) && p.vowelInStem() {
		p.k = p.j
		switch {
		case p.ends("at"):
			p.setTo("ate")
		case p.ends("bl"):
			p.setTo("ble")
		case p.ends("iz"):
			p.setTo("ize")
		case p.doubleC(p.k):
			p.k--
			if c := p.b[p.k]; c == 'l' || c == 's' || c == 'z' {
				p.k++
			}
		case p.m() == 1 && p.cvc(p.k):
			p.setTo("e")
		}
	}
}

// step1c turns a trailing y into i when the stem before it contains a vowel
// ("happy" -> "happi", but "sky" is unchanged).
func (p *porterWord) step1c() {
	if p.ends("y") && p.vowelInStem() {
		p.b[p.k] = 'i'
	}
}

// step2 maps double-suffix forms to single suffixes (ational->ate, and so
// on), conditioned on m() > 0 via r().
func (p *porterWord) step2() {
	if p.k <= p.k0 {
		return
	}
	switch p.b[p.k-1] {
	case 'a':
		if p.ends("ational") {
			p.r("ate")
		} else if p.ends("tional") {
			p.r("tion")
		}
	case 'c':
		if p.ends("enci") {
			p.r("ence")
		} else if p.ends("anci") {
			p.r("ance")
		}
	case 'e':
		if p.ends("izer") {
			p.r("ize")
		}
	case 'l':
		switch {
		case p.ends("bli"):
			p.r("ble")
		case p.ends("alli"):
			p.r("al")
		case p.ends("entli"):
			p.r("ent")
		case p.ends("eli"):
			p.r("e")
		case p.ends("ousli"):
			p.r("ous")
		}
	case 'o':
		switch {
		case p.ends("ization"):
			p.r("ize")
		case p.ends("ation"):
			p.r("ate")
		case p.ends("ator"):
			p.r("ate")
		}
	case 's':
		switch {
		case p.ends("alism"):
			p.r("al")
		case p.ends("iveness"):
			p.r("ive")
		case p.ends("fulness"):
			p.r("ful")
		case p.ends("ousness"):
			p.r("ous")
		}
	case 't':
		switch {
		case p.ends("aliti"):
			p.r("al")
		case p.ends("iviti"):
			p.r("ive")
		case p.ends("biliti"):
			p.r("ble")
		}
	case 'g':
		if p.ends("logi") {
			p.r("log")
		}
	}
}

// step3 handles a further layer of suffixes (icate, ative, alize, ...).
func (p *porterWord) step3() {
	if p.k < p.k0 {
		return
	}
	switch p.b[p.k] {
	case 'e':
		switch {
		case p.ends("icate"):
			p.r("ic")
		case p.ends("ative"):
			p.r("")
		case p.ends("alize"):
			p.r("al")
		}
	case 'i':
		if p.ends("iciti") {
			p.r("ic")
		}
	case 'l':
		switch {
		case p.ends("ical"):
			p.r("ic")
		case p.ends("ful"):
			p.r("")
		}
	case 's':
		if p.ends("ness") {
			p.r("")
		}
	}
}

// step4 removes the final layer of suffixes (al, ance, ence, er, ic, ...)
// when m() > 1, with the special case that "ion" only counts after s or t.
func (p *porterWord) step4() {
	if p.k <= p.k0 {
		return
	}
	switch p.b[p.k-1] {
	case 'a':
		if !p.ends("al") {
			return
		}
	case 'c':
		if !p.ends("ance") && !p.ends("ence") {
			return
		}
	case 'e':
		if !p.ends("er") {
			return
		}
	case 'i':
		if !p.ends("ic") {
			return
		}
	case 'l':
		if !p.ends("able") && !p.ends("ible") {
			return
		}
	case 'n':
		if !p.ends("ant") && !p.ends("ement") && !p.ends("ment") && !p.ends("ent") {
			return
		}
	case 'o':
		if p.ends("ion") {
			if p.j < p.k0 || (p.b[p.j] != 's' && p.b[p.j] != 't') {
				return
			}
		} else if !p.ends("ou") {
			return
		}
	case 's':
		if !p.ends("ism") {
			return
		}
	case 't':
		if !p.ends("ate") && !p.ends("iti") {
			return
		}
	case 'u':
		if !p.ends("ous") {
			return
		}
	case 'v':
		if !p.ends("ive") {
			return
		}
	case 'z':
		if !p.ends("ize") {
			return
		}
	default:
		return
	}
	if p.m() > 1 {
		p.k = p.j
	}
}

// step5 drops a final "e" when m() > 1, or when m() == 1 and the stem
// doesn't end CVC, then undoubles a final "ll" when m() > 1.
func (p *porterWord) step5() {
	p.j = p.k
	if p.b[p.k] == 'e' {
		a := p.m()
		if a > 1 || (a == 1 && !p.cvc(p.k-1)) {
			p.k--
		}
	}
	if p.k > p.k0 && p.b[p.k] == 'l' && p.doubleC(p.k) && p.m() > 1 {
		p.k--
	}
}
