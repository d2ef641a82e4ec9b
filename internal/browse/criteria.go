package browse

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/alexisbeaulieu97/bookdeck/internal/catalog"
)

// Any is the sentinel filter value that matches every book.
const Any = "any"

// Criteria is one search submission. A zero Criteria (empty title, empty
// selectors) matches the whole catalog; Normalize maps empty selectors to Any.
type Criteria struct {
	Title  string
	Genre  string
	Author string
}

// Normalize trims the title and maps empty selector values to Any. It returns
// the normalized copy; the receiver is unchanged.
func (c Criteria) Normalize() Criteria {
	c.Title = strings.TrimSpace(c.Title)
	if c.Genre == "" {
		c.Genre = Any
	}
	if c.Author == "" {
		c.Author = Any
	}
	return c
}

// fold case-folds a string for caseless comparison. Unicode folding rather
// than ASCII lowering so titles like "İstanbul" match as expected. A fresh
// Caser per call: Casers are stateful and not safe to share.
func fold(s string) string {
	return cases.Fold().String(s)
}

// matcher is a Criteria compiled for repeated evaluation over the catalog.
type matcher struct {
	title  string // already folded; empty means match all
	genre  string
	author string
}

func newMatcher(c Criteria) matcher {
	c = c.Normalize()
	return matcher{
		title:  fold(c.Title),
		genre:  c.Genre,
		author: c.Author,
	}
}

// matches reports whether a book satisfies all three predicates.
func (m matcher) matches(b catalog.Book) bool {
	if m.genre != Any && !b.HasGenre(m.genre) {
		return false
	}
	if m.author != Any && b.Author != m.author {
		return false
	}
	if m.title != "" && !strings.Contains(fold(b.Title), m.title) {
		return false
	}
	return true
}
