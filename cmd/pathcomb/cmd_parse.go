package main

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	pc "github.com/coregx/pathcomb"
	"github.com/coregx/pathcomb/route"
)

// grammars maps --grammar values to parse functions.
var grammars = map[string]func(string) (pc.Tuple[string, int], string, bool){
	"user-posts": route.ParseUserPosts,
	"resource":   route.ParseResource,
}

func newParseCmd() *cobra.Command {
	var grammar string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "parse <path>...",
		Short: "Parse paths with a sample grammar",
		Long: heredoc.Doc(`
			Parse each path and print the extracted values.

			Grammars:
			  user-posts  /users/<name>/posts/<id>
			  resource    /<kind>/<id>, kind one of users, orgs, teams, ...

			Exits with status 1 if any path does not match.
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			failed, err := runParse(cmd.OutOrStdout(), grammar, args)
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d path(s) did not match", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammar, "grammar", "g", "user-posts", "grammar to parse with (user-posts, resource)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

// runParse writes one line per path and returns the number of failures.
func runParse(w io.Writer, grammar string, paths []string) (int, error) {
	parse, ok := grammars[grammar]
	if !ok {
		return 0, fmt.Errorf("unknown grammar: %s", grammar)
	}

	matched := color.New(color.FgGreen)
	unmatched := color.New(color.FgRed, color.Bold)

	failed := 0
	for _, path := range paths {
		v, rest, ok := parse(path)
		if !ok {
			failed++
			unmatched.Fprintf(w, "%s\tno match\n", path)
			continue
		}
		matched.Fprintf(w, "%s\t%s=%q id=%d rest=%q\n", path, firstLabel(grammar), v.First, v.Second, rest)
	}
	return failed, nil
}

func firstLabel(grammar string) string {
	if grammar == "resource" {
		return "kind"
	}
	return "name"
}
