package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookdeck/internal/browse"
	"github.com/alexisbeaulieu97/bookdeck/internal/catalog"
)

type searchFlags struct {
	title  string
	genre  string
	author string
	all    bool
}

func newSearchCmd(flags *rootFlags) *cobra.Command {
	sf := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter the catalog and print matches",
		Long:  `Run one filter against the catalog and print the matching books to stdout, first page by default.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := buildLogger(flags)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}

			cat, err := loadCatalog(flags)
			if err != nil {
				log.Error(err, "catalog load failed")
				return fmt.Errorf("failed to load catalog: %w", err)
			}

			return runSearch(cmd, cat, sf)
		},
	}

	cmd.Flags().StringVar(&sf.title, "title", "", "Match books whose title contains this text (case-insensitive)")
	cmd.Flags().StringVar(&sf.genre, "genre", "", "Match books carrying this genre id")
	cmd.Flags().StringVar(&sf.author, "author", "", "Match books by this author id")
	cmd.Flags().BoolVar(&sf.all, "all", false, "Print the whole match set instead of the first page")

	return cmd
}

func runSearch(cmd *cobra.Command, cat *catalog.Catalog, sf *searchFlags) error {
	engine := browse.NewBrowser(cat)
	page := engine.ApplyFilter(browse.Criteria{
		Title:  sf.title,
		Genre:  sf.genre,
		Author: sf.author,
	})

	out := cmd.OutOrStdout()

	if page.Empty {
		fmt.Fprintln(out, "no matches")
		return nil
	}

	books := page.Books
	if sf.all {
		for !page.Exhausted {
			page = engine.AdvancePage()
			books = append(books, page.Books...)
		}
	}

	for _, b := range books {
		author, ok := cat.AuthorName(b.Author)
		if !ok {
			author = b.Author
		}

		genres := make([]string, 0, len(b.Genres))
		for _, id := range b.Genres {
			if name, found := cat.GenreName(id); found {
				genres = append(genres, name)
			} else {
				genres = append(genres, id)
			}
		}

		fmt.Fprintf(out, "%s\t%s\t%s (%d)\t%s\n", b.ID, b.Title, author, b.Year(), strings.Join(genres, ", "))
	}

	if !sf.all && !page.Exhausted {
		fmt.Fprintf(out, "... %d more (use --all)\n", page.Remaining)
	}
	fmt.Fprintf(out, "%d of %d shown\n", len(books), engine.MatchCount())

	return nil
}
