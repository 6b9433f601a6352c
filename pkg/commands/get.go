package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayring/pkg/commands/options"
	"tableflip.dev/dayring/pkg/glyph"
	"tableflip.dev/dayring/pkg/runner/get"
	"tableflip.dev/dayring/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	ko := &options.KindOptions{}
	io := &options.IDOptions{}
	oo := &options.OnOptions{}

	long := strings.Builder{}
	long.WriteString("Get all or a filtered set of entries.\n\n")
	long.WriteString("Kinds and aliases:\n")

	validArgs := make([]string, 0, 4)

	for _, g := range glyph.DefaultGlyphs() {
		if g.Symbol == "" {
			continue
		}
		long.WriteString(fmt.Sprintf("%s: %s\n", g.Symbol, strings.Join(g.Aliases, ", ")))
		if g.Noun != "" {
			validArgs = append(validArgs, g.Noun)
		}
	}

	cmd := &cobra.Command{
		Use:   "get [kind]",
		Short: "get entries for a day or a month",
		Long:  long.String(),
		Example: `
dayring get
dayring get notes --month="August 2026"
dayring get moods --on="2026-8-20"
dayring get --list
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				ko.Kind = glyph.Any
				return nil
			}
			var err error
			ko.Kind, err = glyph.KindForAlias(args[0])
			return err
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:          io.ShowID,
				Kind:            ko.Kind,
				Persistence:     p,
				Month:           ko.Month,
				On:              on,
				ListCollections: ko.List,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddMonthArgs(cmd, ko)
	flagName := "month"
	_ = cmd.RegisterFlagCompletionFunc(flagName, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return monthCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	options.AddOnArgs(cmd, oo)
	options.AddListMonthsArg(cmd, ko)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
