package cli

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roguegrid/pkg/carve"
	"github.com/matzehuels/roguegrid/pkg/pipeline"
	"github.com/matzehuels/roguegrid/pkg/render"
)

// Shell completion itself comes from cobra's built-in completion command;
// these functions complete the values of the enumerated flags.

type completionFunc = func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective)

func completeValues(values ...string) completionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeFormats completes the last entry of a comma-separated format list.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}
	var out []string
	for f := range pipeline.ValidFormats {
		out = append(out, prefix+f)
	}
	slices.Sort(out)
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}

func registerGenCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("corridors", completeValues(carve.ModeGlyph, carve.ModeUniform))
}

func registerGenerateCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("style", completeValues(render.StyleWide, render.StyleCompact))
}
