package browser

// ViewMode determines which screen to render.
type ViewMode int

const (
	// ViewList is the paginated preview list.
	ViewList ViewMode = iota
	// ViewDetail is the modal detail overlay for one book.
	ViewDetail
	// ViewSearch is the search overlay (title input + genre/author selectors).
	ViewSearch
	// ViewSettings is the settings overlay (theme selection).
	ViewSettings
	// ViewHelp is the key binding overlay.
	ViewHelp
)

// searchField identifies the focused control inside the search overlay.
type searchField int

const (
	fieldTitle searchField = iota
	fieldGenre
	fieldAuthor
)

const searchFieldCount = 3
