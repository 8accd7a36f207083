// Package i18n holds the locale catalog for every prompt the intake engine
// can emit, plus locale matching and yes/no token sets. Prompt resolution is
// a pure lookup and carries no control-flow significance.
package i18n

import "strings"

// Locale identifies one supported conversation language.
type Locale string

const (
	LocaleEnglish Locale = "English"
	LocaleHindi   Locale = "Hindi"
	LocaleMarathi Locale = "Marathi"
	LocaleTamil   Locale = "Tamil"
	LocaleTelugu  Locale = "Telugu"
	LocaleKannada Locale = "Kannada"
)

// supported lists locales in menu order. The 1-based position is the numeric
// shortcut users can type during language selection.
var supported = []Locale{
	LocaleEnglish,
	LocaleHindi,
	LocaleMarathi,
	LocaleTamil,
	LocaleTelugu,
	LocaleKannada,
}

var nativeNames = map[Locale]string{
	LocaleEnglish: "English",
	LocaleHindi:   "हिंदी",
	LocaleMarathi: "मराठी",
	LocaleTamil:   "தமிழ்",
	LocaleTelugu:  "తెలుగు",
	LocaleKannada: "ಕನ್ನಡ",
}

// Default is the base locale used until the user picks one.
func Default() Locale { return LocaleEnglish }

// Supported returns the locales in menu order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// NativeName returns the locale's name in its own script.
func NativeName(l Locale) string {
	if name, ok := nativeNames[l]; ok {
		return name
	}
	return string(l)
}

// Valid reports whether l is a supported locale.
func Valid(l Locale) bool {
	_, ok := nativeNames[l]
	return ok
}

// Match maps a user utterance to a locale. Accepted forms: the 1-based menu
// index, the English locale name, or the native-script name, all
// case-insensitively and ignoring surrounding whitespace.
func Match(input string) (Locale, bool) {
	token := strings.ToLower(strings.TrimSpace(input))
	if token == "" {
		return "", false
	}
	for i, loc := range supported {
		switch token {
		case menuIndex(i + 1),
			strings.ToLower(string(loc)),
			strings.ToLower(nativeNames[loc]):
			return loc, true
		}
	}
	return "", false
}

func menuIndex(n int) string {
	return string(rune('0' + n))
}

// Affirmative and negative token sets per locale. English short forms are
// accepted everywhere; native-script and transliterated forms per locale.
var affirmativeTokens = map[Locale][]string{
	LocaleEnglish: {"yes", "y", "ok", "yeah", "sure"},
	LocaleHindi:   {"हाँ", "हा", "haan", "han", "ji"},
	LocaleMarathi: {"हो", "होय", "ho", "hoy"},
	LocaleTamil:   {"ஆம்", "ஆமாம்", "aam", "amam"},
	LocaleTelugu:  {"అవును", "avunu"},
	LocaleKannada: {"ಹೌದು", "houdu"},
}

var negativeTokens = map[Locale][]string{
	LocaleEnglish: {"no", "n", "nope"},
	LocaleHindi:   {"नहीं", "nahi", "nahin"},
	LocaleMarathi: {"नाही", "nahi"},
	LocaleTamil:   {"இல்லை", "illai"},
	LocaleTelugu:  {"కాదు", "kaadu", "ledu"},
	LocaleKannada: {"ಇಲ್ಲ", "illa"},
}

// IsAffirmative reports whether the utterance is a yes for the locale.
// English forms match regardless of the selected locale.
func IsAffirmative(loc Locale, input string) bool {
	return matchToken(loc, input, affirmativeTokens)
}

// IsNegative reports whether the utterance is a no for the locale.
func IsNegative(loc Locale, input string) bool {
	return matchToken(loc, input, negativeTokens)
}

// IsBack reports whether the utterance is the back-navigation keyword.
func IsBack(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "back")
}

func matchToken(loc Locale, input string, table map[Locale][]string) bool {
	token := strings.ToLower(strings.TrimSpace(input))
	if token == "" {
		return false
	}
	for _, t := range table[LocaleEnglish] {
		if token == t {
			return true
		}
	}
	if loc == LocaleEnglish || !Valid(loc) {
		return false
	}
	for _, t := range table[loc] {
		if token == strings.ToLower(t) {
			return true
		}
	}
	return false
}
