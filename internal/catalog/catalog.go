package catalog

// Catalog is the immutable dataset the browser runs against: an ordered book
// sequence, author and genre display names, and the page size used for
// pagination. Built once by Load or Default and read-only afterwards.
type Catalog struct {
	pageSize int
	books    []Book
	authors  []Author
	genres   []Genre

	authorNames map[string]string
	genreNames  map[string]string
}

// New builds a Catalog from in-memory records, running the same schema and
// referential validation as Load.
func New(pageSize int, books []Book, authors []Author, genres []Genre) (*Catalog, error) {
	doc := document{
		Version:  "1.0.0",
		PageSize: pageSize,
		Authors:  authors,
		Genres:   genres,
		Books:    books,
	}
	return fromDocument(&doc)
}

// PageSize returns the number of previews revealed per page.
func (c *Catalog) PageSize() int {
	return c.pageSize
}

// Books returns the full ordered book sequence as a copy.
func (c *Catalog) Books() []Book {
	books := make([]Book, len(c.books))
	copy(books, c.books)
	return books
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Authors returns author entries in catalog declaration order.
func (c *Catalog) Authors() []Author {
	authors := make([]Author, len(c.authors))
	copy(authors, c.authors)
	return authors
}

// Genres returns genre entries in catalog declaration order.
func (c *Catalog) Genres() []Genre {
	genres := make([]Genre, len(c.genres))
	copy(genres, c.genres)
	return genres
}

// AuthorName resolves an author id to its display name.
func (c *Catalog) AuthorName(id string) (string, bool) {
	name, ok := c.authorNames[id]
	return name, ok
}

// GenreName resolves a genre id to its display name.
func (c *Catalog) GenreName(id string) (string, bool) {
	name, ok := c.genreNames[id]
	return name, ok
}
