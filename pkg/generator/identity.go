package generator

import (
	"fmt"
	"strings"
	"unicode"
)

// maxSlugLength caps file slugs so generated file names stay filesystem-safe.
const maxSlugLength = 50

// Identity is the derived naming pair for one generated component:
// a pascal-case display name for the source declaration and a lowercase
// hyphenated slug for the file name.
type Identity struct {
	DisplayName string // matches [A-Za-z0-9]+
	FileSlug    string // matches [a-z0-9-]{1,50}
}

// Namer derives component identities for one generation run. It carries the
// counter for anonymous fallback names, so identities are deterministic per
// run and a fresh Namer always produces the same sequence.
type Namer struct {
	anonymous int
}

// Identify derives the display name and file slug for a raw node name.
// A name that sanitizes to empty on either side falls back to a counter-based
// anonymous identity (Component1 / component-1, Component2 / component-2, ...);
// both sides of a single call share the same counter value.
func (n *Namer) Identify(rawName string) Identity {
	display := toPascalCase(rawName)
	slug := toFileSlug(rawName)

	if display == "" || slug == "" {
		n.anonymous++
		if display == "" {
			display = fmt.Sprintf("Component%d", n.anonymous)
		}
		if slug == "" {
			slug = fmt.Sprintf("component-%d", n.anonymous)
		}
	}

	return Identity{DisplayName: display, FileSlug: slug}
}

// toPascalCase splits a raw name on runs of whitespace, hyphens, and
// underscores, capitalizes the first letter of each token while lowercasing
// the remainder, concatenates, and strips everything outside [A-Za-z0-9].
// May return the empty string; the caller owns the fallback.
func toPascalCase(s string) string {
	var joined strings.Builder
	for _, word := range strings.FieldsFunc(s, isNameSeparator) {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		joined.WriteString(string(runes))
	}

	var result strings.Builder
	for _, r := range joined.String() {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// toFileSlug lowercases a raw name, collapses whitespace runs into single
// hyphens, strips everything outside [a-z0-9-], and truncates to 50 characters.
// May return the empty string; the caller owns the fallback.
func toFileSlug(s string) string {
	s = strings.Join(strings.Fields(strings.ToLower(s)), "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	slug := result.String()
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}

	return slug
}

func isNameSeparator(r rune) bool {
	return r == '-' || r == '_' || unicode.IsSpace(r)
}
