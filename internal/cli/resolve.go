package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fontwell/fontwell/pkg/errors"
	"github.com/fontwell/fontwell/pkg/fontset"
)

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var (
		family  string
		path    string
		jsonOut bool
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a light/regular/bold font set",
		Long: `Resolve a three-weight font set using the priority chain.

A Google Fonts family (--family) is tried first, then a local file or
directory (--path), then the bundled defaults. Each stage that fails
falls through to the next; the bundled defaults never fail once
'fontwell init' has run.`,
		Example: `  fontwell resolve --family "Open Sans"
  fontwell resolve --path ~/fonts/roboto
  fontwell resolve --family Lato --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd.Context(), family, path, jsonOut, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&family, "family", "f", "", "Google Fonts family name")
	cmd.Flags().StringVarP(&path, "path", "p", "", "local font file or directory")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the resolved set as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the stylesheet cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch stylesheets even when cached")

	return cmd
}

// runResolve executes the resolve command.
func (c *CLI) runResolve(ctx context.Context, family, path string, jsonOut, noCache, refresh bool) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	ctx = withLogger(ctx, c.Logger)

	if family == "" {
		family = c.Config.DefaultFamily
	}

	resolver, err := c.newResolver(ctx, noCache, refresh)
	if err != nil {
		return err
	}

	var spinner *Spinner
	if family != "" && !jsonOut {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Resolving %q", family))
		spinner.Start()
	}

	tracker := newProgress(c.Logger)
	set, err := resolver.Resolve(ctx, family, path)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		printError("%s", errors.UserMessage(err))
		return err
	}
	tracker.done("Resolved font set")

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(set)
	}

	printSuccess("Font set resolved")
	printKeyValue(string(fontset.RoleLight), set.Light)
	printKeyValue(string(fontset.RoleRegular), set.Regular)
	printKeyValue(string(fontset.RoleBold), set.Bold)
	return nil
}
