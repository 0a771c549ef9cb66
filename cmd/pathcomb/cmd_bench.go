package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	pc "github.com/coregx/pathcomb"
	"github.com/coregx/pathcomb/bench"
	"github.com/coregx/pathcomb/route"
)

// userPostsCases are the three routines for /users/<name>/posts/<id>, plus
// the composed parser called through the Parser interface.
func userPostsCases() []bench.Case[pc.Tuple[string, int]] {
	users, posts := pc.Literal("users"), pc.Literal("posts")
	return []bench.Case[pc.Tuple[string, int]]{
		{Name: "classic", Parse: route.ParseUserPosts},
		{Name: "hardcoded", Parse: route.ParseHardcoded},
		{Name: "hardcoded2", Parse: func(path string) (pc.Tuple[string, int], string, bool) {
			return route.ParseWithPrimitives(users, posts, path)
		}},
		{Name: "interface", Parse: route.UserPosts().Parse},
	}
}

func newBenchCmd() *cobra.Command {
	var configPath string
	cfg := bench.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure the composed parser against hand-written ones",
		Long: heredoc.Doc(`
			Run the /users/<name>/posts/<id> grammar through each case and
			report ns/op, allocations and throughput.

			Cases:
			  classic     composed from combinators
			  hardcoded   written inline
			  hardcoded2  calls each primitive in turn
			  interface   composed, called through the Parser interface

			Flags override values read from --config.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := cfg
			if configPath != "" {
				loaded, err := bench.LoadConfig(configPath)
				if err != nil {
					return err
				}
				run = mergeFlags(cmd, loaded, cfg)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			results, err := bench.Run(ctx, run, userPostsCases())
			if len(results) > 0 {
				if werr := bench.WriteTable(cmd.OutOrStdout(), results); werr != nil {
					return werr
				}
			}
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&cfg.Input, "input", cfg.Input, "path to parse")
	cmd.Flags().StringSliceVar(&cfg.Cases, "case", nil, "case to run (repeatable; default all)")
	cmd.Flags().IntVar(&cfg.Count, "count", cfg.Count, "rounds per case")
	cmd.Flags().DurationVar(&cfg.BenchTime, "bench-time", cfg.BenchTime, "target duration of one round")

	return cmd
}

// mergeFlags overlays explicitly set flags onto a config loaded from a file.
func mergeFlags(cmd *cobra.Command, loaded, flags bench.Config) bench.Config {
	if cmd.Flags().Changed("input") {
		loaded.Input = flags.Input
	}
	if cmd.Flags().Changed("case") {
		loaded.Cases = flags.Cases
	}
	if cmd.Flags().Changed("count") {
		loaded.Count = flags.Count
	}
	if cmd.Flags().Changed("bench-time") {
		loaded.BenchTime = flags.BenchTime
	}
	return loaded
}
