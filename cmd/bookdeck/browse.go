package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookdeck/internal/components"
	"github.com/alexisbeaulieu97/bookdeck/internal/tui/browser"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive browser",
		Long:  `Launch the interactive terminal browser to page through, filter and inspect the catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(flags)
		},
	}
}

func runBrowse(flags *rootFlags) error {
	log, err := buildLogger(flags)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cat, err := loadCatalog(flags)
	if err != nil {
		log.Error(err, "catalog load failed")
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	mode, err := resolveTheme(flags)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"books":     cat.Len(),
		"page_size": cat.PageSize(),
		"theme":     mode.String(),
	}).Info("catalog loaded")

	m := browser.NewModel(cat, mode, log)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "browser execution failed")
		return fmt.Errorf("failed to run browser: %w", err)
	}

	log.Info("browser closed")
	return nil
}

// resolveTheme applies the explicit --theme override, falling back to the
// terminal's background signal.
func resolveTheme(flags *rootFlags) (components.Mode, error) {
	if flags.theme == "" {
		return components.DetectMode(), nil
	}
	return components.ParseMode(flags.theme)
}
