package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayring/pkg/glyph"
)

// KindOptions
type KindOptions struct {
	Kind  glyph.Kind
	Month string
	List  bool
}

func AddMonthArgs(cmd *cobra.Command, o *KindOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "today",
		`Specify the month, example: --month="August 2026".`)
}

func AddListMonthsArg(cmd *cobra.Command, o *KindOptions) {
	cmd.Flags().BoolVar(&o.List, "list", false,
		"List the months that have entries.")
}
