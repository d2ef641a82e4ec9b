package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/bookdeck/internal/catalog"
	"github.com/alexisbeaulieu97/bookdeck/internal/logger"
)

type rootFlags struct {
	catalogPath string
	theme       string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bookdeck",
		Short:         "Bookdeck browses a book catalog in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation launches the interactive browser.
			if len(args) == 0 {
				return runBrowse(flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.catalogPath, "catalog", "c", "", "Path to a catalog YAML file (default: embedded catalog)")
	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", "Theme override: day or night (default: detect from terminal)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newBrowseCmd(flags))
	cmd.AddCommand(newSearchCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// buildLogger creates the command logger: debug level under --verbose and a
// human-readable console writer when stderr is a terminal.
func buildLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: term.IsTerminal(int(os.Stderr.Fd())),
	})
}

// loadCatalog resolves the dataset: an explicit file when given, otherwise
// the catalog embedded in the binary.
func loadCatalog(flags *rootFlags) (*catalog.Catalog, error) {
	if flags.catalogPath != "" {
		return catalog.Load(flags.catalogPath)
	}
	return catalog.Default()
}
