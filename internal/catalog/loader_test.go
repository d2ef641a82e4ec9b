package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookdeckerrors "github.com/alexisbeaulieu97/bookdeck/pkg/errors"
)

const validCatalogYAML = `
version: 1.0.0
page_size: 2
authors:
  - id: austen
    name: Jane Austen
  - id: wells
    name: H. G. Wells
genres:
  - id: romance
    name: Romance
  - id: scifi
    name: Science Fiction
books:
  - id: emma
    title: Emma
    author: austen
    published: 1815-12-23
    genres: [romance]
  - id: time-machine
    title: The Time Machine
    author: wells
    published: 1895-05-07
    genres: [scifi]
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidCatalog(t *testing.T) {
	c, err := Load(writeCatalog(t, validCatalogYAML))
	require.NoError(t, err)

	assert.Equal(t, 2, c.PageSize())
	assert.Equal(t, 2, c.Len())

	books := c.Books()
	require.Len(t, books, 2)
	assert.Equal(t, "emma", books[0].ID)
	assert.Equal(t, "time-machine", books[1].ID)
	assert.Equal(t, 1815, books[0].Year())
	assert.True(t, books[0].HasGenre("romance"))
	assert.False(t, books[0].HasGenre("scifi"))

	name, ok := c.AuthorName("wells")
	require.True(t, ok)
	assert.Equal(t, "H. G. Wells", name)

	_, ok = c.AuthorName("tolstoy")
	assert.False(t, ok)
}

func TestLoadPreservesDeclarationOrder(t *testing.T) {
	c, err := Load(writeCatalog(t, validCatalogYAML))
	require.NoError(t, err)

	authors := c.Authors()
	require.Len(t, authors, 2)
	assert.Equal(t, "austen", authors[0].ID)
	assert.Equal(t, "wells", authors[1].ID)

	genres := c.Genres()
	require.Len(t, genres, 2)
	assert.Equal(t, "romance", genres[0].ID)
	assert.Equal(t, "scifi", genres[1].ID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *bookdeckerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeCatalog(t, "version: [unclosed"))

	var parseErr *bookdeckerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestLoadRejectsUnknownAuthor(t *testing.T) {
	content := `
version: 1.0.0
page_size: 2
authors:
  - id: austen
    name: Jane Austen
genres:
  - id: romance
    name: Romance
books:
  - id: emma
    title: Emma
    author: nobody
    published: 1815-12-23
    genres: [romance]
`
	_, err := Load(writeCatalog(t, content))

	var valErr *bookdeckerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "book:emma", valErr.Record)
	assert.Equal(t, "author", valErr.Field)
}

func TestLoadRejectsUnknownGenre(t *testing.T) {
	content := `
version: 1.0.0
page_size: 2
authors:
  - id: austen
    name: Jane Austen
genres:
  - id: romance
    name: Romance
books:
  - id: emma
    title: Emma
    author: austen
    published: 1815-12-23
    genres: [horror]
`
	_, err := Load(writeCatalog(t, content))

	var valErr *bookdeckerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "genres", valErr.Field)
}

func TestLoadRejectsDuplicateBookID(t *testing.T) {
	content := `
version: 1.0.0
page_size: 2
authors:
  - id: austen
    name: Jane Austen
genres:
  - id: romance
    name: Romance
books:
  - id: emma
    title: Emma
    author: austen
    published: 1815-12-23
    genres: [romance]
  - id: emma
    title: Emma Again
    author: austen
    published: 1816-01-01
    genres: [romance]
`
	_, err := Load(writeCatalog(t, content))

	var valErr *bookdeckerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "book:emma", valErr.Record)
	assert.Equal(t, "id", valErr.Field)
}

func TestLoadRejectsZeroPageSize(t *testing.T) {
	content := `
version: 1.0.0
page_size: 0
authors:
  - id: austen
    name: Jane Austen
genres:
  - id: romance
    name: Romance
books:
  - id: emma
    title: Emma
    author: austen
    published: 1815-12-23
    genres: [romance]
`
	_, err := Load(writeCatalog(t, content))

	var valErr *bookdeckerrors.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestLoadStripsMarkupFromDescriptions(t *testing.T) {
	content := `
version: 1.0.0
page_size: 2
authors:
  - id: austen
    name: Jane Austen
genres:
  - id: romance
    name: Romance
books:
  - id: emma
    title: Emma
    author: austen
    description: 'A <b>well-meaning</b> matchmaker <script>alert(1)</script> at work'
    published: 1815-12-23
    genres: [romance]
`
	c, err := Load(writeCatalog(t, content))
	require.NoError(t, err)

	desc := c.Books()[0].Description
	assert.Equal(t, "A well-meaning matchmaker  at work", desc)
	assert.NotContains(t, desc, "<")
}

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Greater(t, c.Len(), 0)
	assert.GreaterOrEqual(t, c.PageSize(), 1)

	// Every foreign key in the embedded dataset must resolve.
	for _, b := range c.Books() {
		_, ok := c.AuthorName(b.Author)
		assert.True(t, ok, "book %s has unresolvable author %s", b.ID, b.Author)
		for _, g := range b.Genres {
			_, ok := c.GenreName(g)
			assert.True(t, ok, "book %s has unresolvable genre %s", b.ID, g)
		}
	}
}

func TestBooksReturnsCopy(t *testing.T) {
	c, err := Load(writeCatalog(t, validCatalogYAML))
	require.NoError(t, err)

	books := c.Books()
	books[0].Title = "mutated"

	assert.Equal(t, "Emma", c.Books()[0].Title)
}
