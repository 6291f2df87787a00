// Package collation provides locale-aware string ordering for names and department keys.
package collation

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale orders Cyrillic names the way the dashboard users expect.
const DefaultLocale = "ru"

// Compare reports the order of a and b: negative, zero or positive.
type Compare func(a, b string) int

// Locale is a parsed collation locale. It is safe to share; the comparers it
// hands out are not.
type Locale struct {
	tag language.Tag
}

// New parses a BCP 47 locale such as "ru" or "en-US".
func New(locale string) (Locale, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Locale{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return Locale{tag: tag}, nil
}

// MustNew is New for package-level defaults and tests.
func MustNew(locale string) Locale {
	l, err := New(locale)
	if err != nil {
		panic(err)
	}
	return l
}

// Comparer returns a fresh comparison function. collate.Collator keeps
// internal buffers, so each sort gets its own.
func (l Locale) Comparer() Compare {
	c := collate.New(l.tag)
	return c.CompareString
}

func (l Locale) String() string {
	return l.tag.String()
}
