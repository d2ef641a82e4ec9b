package catalog

import (
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	bookdeckerrors "github.com/alexisbeaulieu97/bookdeck/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// document is the on-disk catalog schema.
type document struct {
	Version  string   `yaml:"version" validate:"required,semver"`
	PageSize int      `yaml:"page_size" validate:"required,min=1,max=500"`
	Authors  []Author `yaml:"authors" validate:"required,min=1,dive"`
	Genres   []Genre  `yaml:"genres" validate:"required,min=1,dive"`
	Books    []Book   `yaml:"books" validate:"required,min=1,dive"`
}

// Load reads a catalog file from disk, validates it, and returns the resulting
// Catalog.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bookdeckerrors.NewParseError(path, 0, err)
	}
	return parse(data, path)
}

func parse(data []byte, path string) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, bookdeckerrors.NewParseError(path, extractLine(err), err)
	}

	return fromDocument(&doc)
}

func fromDocument(doc *document) (*Catalog, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	sanitizeDescriptions(doc.Books)

	c := &Catalog{
		pageSize:    doc.PageSize,
		books:       doc.Books,
		authors:     doc.Authors,
		genres:      doc.Genres,
		authorNames: make(map[string]string, len(doc.Authors)),
		genreNames:  make(map[string]string, len(doc.Genres)),
	}
	for _, a := range doc.Authors {
		c.authorNames[a.ID] = a.Name
	}
	for _, g := range doc.Genres {
		c.genreNames[g.ID] = g.Name
	}

	return c, nil
}

// validateDocument runs struct-level validation followed by referential checks
// so downstream code can rely on field presence and resolvable foreign keys.
func validateDocument(doc *document) error {
	if err := validatorInstance().Struct(doc); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return bookdeckerrors.NewValidationError("", fe.Namespace(), fmt.Sprintf("failed %q constraint", fe.Tag()), err)
		}
		return bookdeckerrors.NewValidationError("", "", err.Error(), err)
	}

	authorIDs := make(map[string]struct{}, len(doc.Authors))
	for _, a := range doc.Authors {
		if _, dup := authorIDs[a.ID]; dup {
			return bookdeckerrors.NewValidationError("author:"+a.ID, "id", "duplicate author id", nil)
		}
		authorIDs[a.ID] = struct{}{}
	}

	genreIDs := make(map[string]struct{}, len(doc.Genres))
	for _, g := range doc.Genres {
		if _, dup := genreIDs[g.ID]; dup {
			return bookdeckerrors.NewValidationError("genre:"+g.ID, "id", "duplicate genre id", nil)
		}
		genreIDs[g.ID] = struct{}{}
	}

	bookIDs := make(map[string]struct{}, len(doc.Books))
	for _, b := range doc.Books {
		record := "book:" + b.ID
		if _, dup := bookIDs[b.ID]; dup {
			return bookdeckerrors.NewValidationError(record, "id", "duplicate book id", nil)
		}
		bookIDs[b.ID] = struct{}{}

		if _, ok := authorIDs[b.Author]; !ok {
			return bookdeckerrors.NewValidationError(record, "author", fmt.Sprintf("unknown author id %q", b.Author), nil)
		}
		for _, g := range b.Genres {
			if _, ok := genreIDs[g]; !ok {
				return bookdeckerrors.NewValidationError(record, "genres", fmt.Sprintf("unknown genre id %q", g), nil)
			}
		}
	}

	return nil
}

// sanitizeDescriptions strips any markup from book descriptions so renderers
// can treat them as plain text. Source catalogs are trusted today, but the
// policy holds for any future data source.
func sanitizeDescriptions(books []Book) {
	policy := bluemonday.StrictPolicy()
	for i := range books {
		cleaned := policy.Sanitize(strings.TrimSpace(books[i].Description))
		books[i].Description = html.UnescapeString(cleaned)
	}
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	entryIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
)

// validatorInstance configures and returns the shared validator instance used
// across the catalog package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("entry_id", func(fl validator.FieldLevel) bool {
			return entryIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
