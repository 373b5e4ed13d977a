package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fontwell/fontwell/pkg/errors"
	"github.com/fontwell/fontwell/pkg/fontset"
)

// fetchCommand creates the fetch command for prefetching Google Fonts
// assets into the local cache.
func (c *CLI) fetchCommand() *cobra.Command {
	var (
		weights string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <family>",
		Short: "Download a Google Fonts family into the asset cache",
		Long: `Download the light, regular, and bold cuts of a Google Fonts family
into the local asset cache so later resolves work offline.`,
		Example: `  fontwell fetch "Open Sans"
  fontwell fetch Lato --weights 300,400,700
  fontwell fetch Roboto --refresh`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseWeights(weights)
			if err != nil {
				return err
			}
			return c.runFetch(cmd.Context(), args[0], parsed, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&weights, "weights", "w", "", "comma-separated numeric weights (default 300,400,700)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the stylesheet cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch stylesheets even when cached")

	return cmd
}

// runFetch executes the fetch command.
func (c *CLI) runFetch(ctx context.Context, family string, weights []int, noCache, refresh bool) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	ctx = withLogger(ctx, c.Logger)

	fetcher, err := c.newFetcher(ctx, noCache, refresh)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %q", family))
	spinner.Start()

	started := time.Now()
	tracker := newProgress(c.Logger)
	set, err := fetcher.Fetch(ctx, family, weights)
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return err
	}
	spinner.Stop()
	tracker.done(fmt.Sprintf("Fetched %q", family))

	printSuccess("Fetched %q", family)
	for _, role := range []fontset.Role{fontset.RoleLight, fontset.RoleRegular, fontset.RoleBold} {
		path := set.Path(role)
		printAsset(string(role), path, downloadedBefore(path, started))
	}
	return nil
}

// downloadedBefore reports whether the file at path predates t, meaning
// the fetch reused an already cached asset instead of downloading it.
func downloadedBefore(path string, t time.Time) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.ModTime().Before(t)
}

// parseWeights parses a comma-separated weight list. An empty string
// yields the default 300,400,700 request.
func parseWeights(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return fontset.DefaultWeights(), nil
	}
	parts := strings.Split(s, ",")
	weights := make([]int, 0, len(parts))
	for _, part := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidWeight, "invalid weight: %s", part)
		}
		weights = append(weights, w)
	}
	return weights, nil
}
