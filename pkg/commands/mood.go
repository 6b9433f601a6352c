package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayring/pkg/commands/options"
	"tableflip.dev/dayring/pkg/runner/mood"
	"tableflip.dev/dayring/pkg/store"
)

func addMood(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	var score int
	var message string

	cmd := &cobra.Command{
		Use:     "mood [1-5] [message]",
		Aliases: []string{"checkin", "check-in"},
		Short:   "Record a mood check-in, scored 1 to 5",
		Example: `
dayring mood 4 slow morning, good afternoon
dayring mood 2 --on="8/20"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a score from 1 to 5")
			}
			var err error
			score, err = strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			message = strings.Join(args[1:], " ")

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
			s := mood.Mood{
				Score:       score,
				Message:     message,
				Persistence: p,
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
