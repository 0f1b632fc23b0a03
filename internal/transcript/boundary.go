package transcript

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Decision is the outcome of the sentence-boundary heuristic for one cue.
type Decision int

const (
	// Continue appends the cue to the sentence being accumulated.
	Continue Decision = iota
	// StartNew closes the accumulated sentence and starts a fresh one.
	StartNew
)

// continuationWords are capitalized words that routinely open a clause in
// the middle of a spoken sentence. A cue starting with one of these is
// treated as a continuation even when the casing heuristic says otherwise.
var continuationWords = []string{"And", "But", "Or", "So", "Then", "However", "Therefore"}

// openPunctuation are sentence-internal terminators: a sentence ending in
// one of these stays open for further cues.
const openPunctuation = ".!?:;"

// Decide reports whether next starts a new sentence or continues current.
// current must be non-empty.
//
// The heuristic: an uppercase first letter after a sentence that carries no
// terminal punctuation suggests a new sentence, unless the cue opens with a
// continuation word. Scripts without an upper/lowercase distinction never
// trigger StartNew; such cues always merge into the current sentence. That
// is a known limitation of the casing heuristic, not a tuned behavior.
func Decide(current, next string) Decision {
	first, _ := utf8.DecodeRuneInString(next)
	if !unicode.IsUpper(first) {
		return Continue
	}

	trimmed := strings.TrimRight(current, " \t\n")
	if trimmed != "" && strings.ContainsRune(openPunctuation, lastRune(trimmed)) {
		return Continue
	}

	for _, word := range continuationWords {
		if strings.HasPrefix(next, word+" ") {
			return Continue
		}
	}

	return StartNew
}

// closesSentence reports whether a sentence ending as s does is complete.
// Colons and semicolons keep the sentence open; only full stops, exclamation
// and question marks close it.
func closesSentence(s string) bool {
	trimmed := strings.TrimRight(s, " \t\n")
	if trimmed == "" {
		return false
	}
	return strings.ContainsRune(".!?", lastRune(trimmed))
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
