package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tscheck/tscheck/internal/adapters/config"
	"github.com/tscheck/tscheck/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Type-check the given files against their nearest tsconfig",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			opts, err := c.resolveOptions(cmd)
			if err != nil {
				return err
			}
			if opts.Verbose {
				if v, ok := c.logger.(interface{ SetVerbose() }); ok {
					v.SetVerbose()
				}
			}

			return c.app.Check(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringP("project", "p", "", "Check against this tsconfig instead of walking upward per file")
	cmd.Flags().Int("max-depth", domain.DefaultMaxDepth, "Maximum import hops to follow during dependency discovery")
	cmd.Flags().Int("max-files", domain.DefaultMaxFiles, "Soft cap on the expanded file set per project")
	cmd.Flags().Bool("no-recursive", false, "Skip import-graph traversal, check only the requested files")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the synthesized config cache")
	cmd.Flags().Bool("skip-lib-check", false, "Forward skipLibCheck to the compiler")
	cmd.Flags().StringSliceP("include", "i", nil, "Extra files to add to every checked project")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")

	return cmd
}

// resolveOptions merges the three option sources. Flags that were set
// explicitly win over the tscheck.yaml file, which wins over defaults.
func (c *CLI) resolveOptions(cmd *cobra.Command) (domain.CheckOptions, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return domain.CheckOptions{}, err
	}

	opts, err := config.LoadOptions(cwd, domain.DefaultCheckOptions())
	if err != nil {
		return domain.CheckOptions{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("project") {
		opts.ConfigPath, _ = flags.GetString("project")
	}
	if flags.Changed("max-depth") {
		opts.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("max-files") {
		opts.MaxFiles, _ = flags.GetInt("max-files")
	}
	if noRecursive, _ := flags.GetBool("no-recursive"); noRecursive {
		opts.Recursive = false
	}
	if noCache, _ := flags.GetBool("no-cache"); noCache {
		opts.Cache = false
	}
	if flags.Changed("skip-lib-check") {
		opts.SkipLibCheck, _ = flags.GetBool("skip-lib-check")
	}
	if flags.Changed("include") {
		opts.ExtraIncludes, _ = flags.GetStringSlice("include")
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		opts.Verbose = true
	}

	return opts, nil
}
