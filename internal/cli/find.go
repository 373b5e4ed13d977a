package cli

import (
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/flopp/go-findfont"
	"github.com/spf13/cobra"

	"github.com/fontwell/fontwell/pkg/errors"
)

// findCommand creates the find command for locating installed system fonts.
func (c *CLI) findCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "find <name>",
		Short: "Locate installed system fonts by name",
		Long: `Search the system font directories for files whose name contains the
given string. A single match prints its path; multiple matches open an
interactive picker unless --all is given.`,
		Example: `  fontwell find dejavu
  fontwell find arial --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFind(args[0], all)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every match instead of picking one")

	return cmd
}

// runFind executes the find command.
func (c *CLI) runFind(name string, all bool) error {
	matches := matchFonts(name)
	if len(matches) == 0 {
		printError("No installed font matches %q", name)
		return errors.New(errors.ErrCodeFontNotFound, "no installed font matches %q", name)
	}

	if len(matches) == 1 {
		printSuccess("Found %s", matches[0])
		printNextStep("Use it", "fontwell resolve --path "+matches[0])
		return nil
	}

	if all {
		printInfo("%d fonts match %q", len(matches), name)
		for _, m := range matches {
			printFile(m)
		}
		return nil
	}

	model := NewFontListModel(matches)
	result, err := tea.NewProgram(model).Run()
	if err != nil {
		// No usable terminal, fall back to a plain listing.
		c.Logger.Debug("Interactive picker unavailable", "err", err)
		for _, m := range matches {
			printFile(m)
		}
		return nil
	}

	final, ok := result.(FontListModel)
	if !ok || final.Selected == "" {
		printInfo("No font selected")
		return nil
	}

	printSuccess("Selected %s", final.Selected)
	printNextStep("Use it", "fontwell resolve --path "+final.Selected)
	return nil
}

// matchFonts returns all installed font files whose base name contains
// name, compared case-insensitively, in sorted order.
func matchFonts(name string) []string {
	needle := strings.ToLower(name)
	var matches []string
	for _, path := range findfont.List() {
		if strings.Contains(strings.ToLower(filepath.Base(path)), needle) {
			matches = append(matches, path)
		}
	}
	sort.Strings(matches)
	return matches
}
