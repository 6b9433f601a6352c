package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayring/pkg/commands/options"
	"tableflip.dev/dayring/pkg/glyph"
	"tableflip.dev/dayring/pkg/runner/add"
	"tableflip.dev/dayring/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
dayring add note this is a note
dayring add event --on="2026-8-28" dentist
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addKind(cmd, glyph.Event)
	addKind(cmd, glyph.Note)
	addKind(cmd, glyph.Habit)

	topLevel.AddCommand(cmd)
}

func addKind(topLevel *cobra.Command, kind glyph.Kind) {
	g := kind.Glyph()
	oo := &options.OnOptions{}
	var message string

	cmd := &cobra.Command{
		Use:     strings.TrimSuffix(g.Noun, "s"),
		Aliases: g.Aliases,
		Short:   "Add " + g.Meaning,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a message")
			}
			message = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Kind:        kind,
				Persistence: p,
				Message:     message,
			}
			if on != nil {
				s.On = *on
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
