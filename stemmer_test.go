package latimes

import "testing"

func TestStemKnownForms(t *testing.T) {
	cases := map[string]string{
		"caresses":   "caress",
		"ponies":     "poni",
		"ties":       "ti",
		"caress":     "caress",
		"cats":       "cat",
		"feed":       "feed",
		"agreed":     "agre",
		"plastered":  "plaster",
		"bled":       "bled",
		"motoring":   "motor",
		"sing":       "sing",
		"conflated":  "conflat",
		"troubled":   "troubl",
		"sized":      "size",
		"hopping":    "hop",
		"tanned":     "tan",
		"falling":    "fall",
		"hissing":    "hiss",
		"fizzed":     "fizz",
		"failing":    "fail",
		"filing":     "file",
		"happy":      "happi",
		"sky":        "sky",
		"relational": "relat",
		"conditional": "condit",
		"rational":   "ration",
		"valenci":    "valenc",
		"hesitanci":  "hesit",
		"digitizer":  "digit",
		"conformabli": "conform",
		"radicalli":  "radic",
		"differentli": "differ",
		"vileli":     "vile",
		"analogousli": "analog",
		"vietnamization": "vietnam",
		"predication": "predic",
		"operator":   "oper",
		"feudalism":  "feudal",
		"decisiveness": "decis",
		"hopefulness": "hope",
		"callousness": "callous",
		"formaliti":  "formal",
		"sensitiviti": "sensit",
		"sensibiliti": "sensibl",
		"triplicate": "triplic",
		"formative":  "form",
		"formalize":  "formal",
		"electriciti": "electr",
		"electrical": "electr",
		"hopeful":    "hope",
		"goodness":   "good",
		"revival":    "reviv",
		"allowance":  "allow",
		"inference":  "infer",
		"airliner":   "airlin",
		"gyroscopic": "gyroscop",
		"adjustable": "adjust",
		"defensible": "defens",
		"irritant":   "irrit",
		"replacement": "replac",
		"adjustment": "adjust",
		"dependent":  "depend",
		"adoption":   "adopt",
		"homologou":  "homolog",
		"communism":  "commun",
		"activate":   "activ",
		"angulariti": "angular",
		"homologous": "homolog",
		"effective":  "effect",
		"bowdlerize": "bowdler",
	}
	for input, want := range cases {
		if got := Stem(input); got != want {
			t.Errorf("Stem(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestStemNonLetterPassesThrough(t *testing.T) {
	for _, tok := range []string{"b2b", "co2", "1040ez", "3m", "at_t"} {
		if got := Stem(tok); got != tok {
			t.Errorf("Stem(%q) = %q, want unchanged", tok, got)
		}
	}
}

func TestStemShortTokenUnchanged(t *testing.T) {
	for _, tok := range []string{"a", "i", "ox", "go"} {
		if got := Stem(tok); got != tok {
			t.Errorf("Stem(%q) = %q, want unchanged", tok, got)
		}
	}
}

func TestStemIdempotentOnAlreadyStemmed(t *testing.T) {
	stems := []string{"run", "jump", "search", "index"}
	for _, s := range stems {
		if got := Stem(s); got != s {
			t.Errorf("Stem(%q) = %q, want unchanged (already a stem)", s, got)
		}
	}
}
