package normalizer

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum    = regexp.MustCompile(`[^a-z0-9\s]`)
	reSpaces      = regexp.MustCompile(`\s+`)
	reHouseNumber = regexp.MustCompile(`^\d+\s+`)
)

// StripDiacritics decomposes accented characters and drops the combining
// marks, so "é" becomes "e". Covers the full Latin accented range used by
// French addresses.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	out, _, _ := transform.String(t, s)
	return out
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// Normalize canonicalizes free-text for comparison: lowercase, diacritics
// stripped, anything outside [a-z0-9 whitespace] folded to a space, runs of
// whitespace collapsed, ends trimmed. Empty input stays empty and the
// function is idempotent, so both the batch and lookup paths can apply it
// independently and agree.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = StripDiacritics(s)
	s = reNonAlnum.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ExtractStreetName normalizes an address and strips a single leading run of
// digits followed by whitespace, treated as the house number. "12 Rue des
// Lilas" and "rue des lilas" extract to the same key.
func ExtractStreetName(address string) string {
	return reHouseNumber.ReplaceAllString(Normalize(address), "")
}
