package cli

import (
	"github.com/spf13/cobra"

	"github.com/fontwell/fontwell/pkg/errors"
	"github.com/fontwell/fontwell/pkg/fontset"
)

// initCommand creates the init command which materializes the bundled
// default fonts so the fallback stage of the resolver can never fail.
func (c *CLI) initCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the bundled default fonts to the fonts directory",
		Long: `Write the bundled default font files (the Go typeface) into the fonts
directory. Existing files are left untouched, so running init twice is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInit()
		},
	}
	return cmd
}

// runInit executes the init command.
func (c *CLI) runInit() error {
	dir := c.fontsDir()
	if err := fontset.Materialize(dir); err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	set, err := fontset.DefaultSet(dir)
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}

	printSuccess("Default fonts ready in %s", dir)
	printFile(set.Light)
	printFile(set.Regular)
	printFile(set.Bold)
	printNewline()
	printNextStep("Resolve a set", "fontwell resolve --family \"Open Sans\"")
	return nil
}
