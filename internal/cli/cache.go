package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the font asset and stylesheet caches",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var (
		assetsOnly bool
		stylesOnly bool
	)

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete cached font assets and stylesheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			total := 0
			if !stylesOnly {
				n := clearDir(c.assetCacheDir())
				printSuccess("Cleared %d font assets", n)
				printDetail("Directory: %s", c.assetCacheDir())
				total += n
			}
			if !assetsOnly {
				n := clearDir(stylesheetCacheDir())
				printSuccess("Cleared %d cached stylesheets", n)
				printDetail("Directory: %s", stylesheetCacheDir())
				total += n
			}
			if total == 0 {
				printInfo("Caches were already empty")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&assetsOnly, "assets", false, "only clear downloaded font assets")
	cmd.Flags().BoolVar(&stylesOnly, "stylesheets", false, "only clear cached stylesheets")

	return cmd
}

// clearDir removes all files below dir and returns the number removed.
// Empty subdirectories are cleaned up afterwards; dir itself stays.
func clearDir(dir string) int {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0
	}

	count := 0
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || path == dir {
			return nil // Skip errors, continue walking
		}
		if !info.IsDir() {
			if err := os.Remove(path); err == nil {
				count++
			}
		}
		return nil
	})

	// Clean up empty subdirectories
	_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || path == dir {
			return nil
		}
		if info.IsDir() {
			os.Remove(path)
		}
		return nil
	})

	return count
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(c.assetCacheDir())
			fmt.Println(stylesheetCacheDir())
			return nil
		},
	}
}
