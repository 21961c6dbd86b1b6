package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// punctuationRepair maps typographic variants onto their ASCII
// equivalents so the same title entered from different sources compares
// and stores identically.
var punctuationRepair = strings.NewReplacer(
	"…", "...", // ellipsis
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
)

// suffixPatterns strip reissue noise from the tail of a title. Order
// matters and the list runs before punctuation stripping so the bracket
// delimiters are still present to anchor on. The list is compiled once and
// shared; regexps are safe for concurrent use.
var suffixPatterns = []*regexp.Regexp{
	// "(Deluxe Edition)", "[25th Anniversary Version]", "(Remastered)"
	regexp.MustCompile(`\s*[(\[][^)\]]*\b(?:deluxe|special|expanded|remaster(?:ed)?|anniversary|limited|collector'?s)\b[^)\]]*[)\]]\s*$`),
	// "Disc 1", "(CD2)"
	regexp.MustCompile(`\s*[(\[]?\b(?:disc|cd)\s*\d+\b[)\]]?\s*$`),
	// bracketed reissue years: "(2011)", "[1999 Remaster]"
	regexp.MustCompile(`\s*[(\[](?:19|20)\d{2}(?:\s+(?:remaster|reissue|edition|version))?[)\]]\s*$`),
	// "(EP)", "[Single]"
	regexp.MustCompile(`\s*[(\[](?:ep|lp|single)[)\]]\s*$`),
}

var leadingArticles = map[string]struct{}{
	"the": {}, "a": {}, "an": {},
	"el": {}, "la": {}, "le": {}, "les": {},
	"der": {}, "die": {}, "das": {},
}

// foldAccents decomposes and drops combining marks so accented letters
// compare against their base Latin forms.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Options controls the comparison profile.
type Options struct {
	RemoveArticles bool
	StripEditions  bool
	FoldDiacritics bool
}

// DefaultOptions is the profile similarity scoring uses.
func DefaultOptions() Options {
	return Options{RemoveArticles: true, StripEditions: true, FoldDiacritics: true}
}

// SanitizeForStorage is the display-safe form: trimmed, typographic
// punctuation unified, internal whitespace collapsed. Case and diacritics
// are preserved.
func SanitizeForStorage(s string) string {
	return collapseWhitespace(punctuationRepair.Replace(strings.TrimSpace(s)))
}

// ForLookup lowercases the storage form. This is the exact-match dedup key.
func ForLookup(s string) string {
	return strings.ToLower(SanitizeForStorage(s))
}

// ForComparison reduces a string to the aggressive form fuzzy scoring
// operates on. Unmatched patterns pass through unchanged and the function
// never fails on arbitrary input.
func ForComparison(s string, opts Options) string {
	out := strings.ToLower(SanitizeForStorage(s))

	if opts.StripEditions {
		out = stripSuffixes(out)
	}

	out = strings.ReplaceAll(out, "&", " and ")
	out = strings.ReplaceAll(out, "+", " and ")
	out = strings.ReplaceAll(out, "/", "")

	if opts.FoldDiacritics {
		if folded, _, err := transform.String(foldAccents, out); err == nil {
			out = folded
		}
	}

	var b strings.Builder
	b.Grow(len(out))
	for _, r := range out {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	out = collapseWhitespace(b.String())

	if opts.RemoveArticles {
		out = dropLeadingArticle(out)
	}
	return out
}

// Tokenize returns the comparison-form words as a set.
func Tokenize(s string, opts Options) map[string]struct{} {
	words := strings.Fields(ForComparison(s, opts))
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

func stripSuffixes(s string) string {
	// Stacked suffixes ("Album (Deluxe Edition) (2011 Remaster)") need
	// repeated passes; each pass applies the patterns in fixed order.
	for {
		before := s
		for _, pattern := range suffixPatterns {
			s = pattern.ReplaceAllString(s, "")
		}
		s = strings.TrimSpace(s)
		if s == before || s == "" {
			return s
		}
	}
}

func dropLeadingArticle(s string) string {
	words := strings.Fields(s)
	if len(words) < 2 {
		return s
	}
	if _, ok := leadingArticles[words[0]]; !ok {
		return s
	}
	// The result must be a fixed point of ForComparison. When the next word
	// is itself an article ("La La Land"), dropping would leave a string
	// that erodes by one word on every renormalization, so keep the phrase
	// intact instead.
	if _, ok := leadingArticles[words[1]]; ok {
		return s
	}
	return strings.Join(words[1:], " ")
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
