package browse

import (
	"github.com/alexisbeaulieu97/bookdeck/internal/catalog"
)

// Page is the result of a filter or pagination step: the books to reveal next
// plus the metadata the control surface needs to render counts and disable
// the show-more action.
type Page struct {
	Books     []catalog.Book
	Remaining int
	Exhausted bool
	Empty     bool
}

// Browser owns the browsing session state: the immutable ordered dataset, the
// current match set and the page cursor. All mutation goes through
// ApplyFilter and AdvancePage; there are no ambient globals.
//
// The match set is always a subsequence of the dataset in original order, and
// the number of revealed books equals min(cursor*pageSize, len(matches)).
type Browser struct {
	books    []catalog.Book
	pageSize int

	matches []catalog.Book
	cursor  int
}

// NewBrowser creates a session over the given catalog with an open filter
// applied, so the first page is ready to render.
func NewBrowser(c *catalog.Catalog) *Browser {
	b := &Browser{
		books:    c.Books(),
		pageSize: c.PageSize(),
	}
	b.ApplyFilter(Criteria{})
	return b
}

// ApplyFilter recomputes the match set for the given criteria, resets the
// page cursor and returns the first page. Any criteria combination is valid;
// zero matches is a normal outcome, never an error.
func (b *Browser) ApplyFilter(c Criteria) Page {
	m := newMatcher(c)

	b.matches = b.matches[:0]
	for _, book := range b.books {
		if m.matches(book) {
			b.matches = append(b.matches, book)
		}
	}
	b.cursor = 1

	return Page{
		Books:     b.window(0, b.pageSize),
		Remaining: b.remainingAfter(b.pageSize),
		Exhausted: len(b.matches) <= b.pageSize,
		Empty:     len(b.matches) == 0,
	}
}

// AdvancePage returns the next page of the current match set and increments
// the cursor. Calling it when already exhausted returns an empty page rather
// than failing; the caller is expected to disable the action first.
func (b *Browser) AdvancePage() Page {
	start := b.cursor * b.pageSize
	b.cursor++
	end := b.cursor * b.pageSize

	return Page{
		Books:     b.window(start, end),
		Remaining: b.remainingAfter(end),
		Exhausted: len(b.matches) <= end,
		Empty:     len(b.matches) == 0,
	}
}

// LookupByID scans the full dataset for a book id. Absence is a normal
// outcome reported through the boolean.
func (b *Browser) LookupByID(id string) (catalog.Book, bool) {
	for _, book := range b.books {
		if book.ID == id {
			return book, true
		}
	}
	return catalog.Book{}, false
}

// MatchCount returns the size of the current match set.
func (b *Browser) MatchCount() int {
	return len(b.matches)
}

// Revealed returns how many books the pages handed out so far cover, capped
// at the match set size.
func (b *Browser) Revealed() int {
	revealed := b.cursor * b.pageSize
	if revealed > len(b.matches) {
		revealed = len(b.matches)
	}
	return revealed
}

// PageSize returns the configured page size.
func (b *Browser) PageSize() int {
	return b.pageSize
}

func (b *Browser) window(start, end int) []catalog.Book {
	if start > len(b.matches) {
		start = len(b.matches)
	}
	if end > len(b.matches) {
		end = len(b.matches)
	}
	page := make([]catalog.Book, end-start)
	copy(page, b.matches[start:end])
	return page
}

func (b *Browser) remainingAfter(end int) int {
	remaining := len(b.matches) - end
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
