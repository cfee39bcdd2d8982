// Package slug maps display names to URL-safe slugs and back.
//
// The mapping is lossy: DisplayName(Slugify(x)) is not x in general, so a
// slug is only ever a lookup key. Display text comes from catalog records and
// DisplayName is reserved for labels that no record backs.
package slug

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Slugify lower-cases name and turns every whitespace run into one hyphen.
// Leading and trailing runs are kept as hyphens.
func Slugify(name string) string {
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))

	inSpace := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// DisplayName turns a URL segment or slug into a capitalized label:
// "heat-dissipation" becomes "Heat Dissipation".
func DisplayName(segment string) string {
	if segment == "" {
		return ""
	}

	decoded, err := url.PathUnescape(segment)
	if err != nil {
		decoded = segment
	}

	decoded = strings.NewReplacer("-", " ", "_", " ").Replace(decoded)

	words := strings.Fields(decoded)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// Matches reports whether candidate slugifies to slug, ignoring the slug's case.
func Matches(candidate, slug string) bool {
	return Slugify(candidate) == strings.ToLower(slug)
}

// Key is the case-normalized comparison key of free text.
func Key(s string) string {
	return strings.ToLower(s)
}

// Decode URL-decodes a path segment, returning it unchanged when malformed.
func Decode(segment string) string {
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return decoded
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}
