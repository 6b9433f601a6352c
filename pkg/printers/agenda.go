package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/dayring/pkg/entry"
	"tableflip.dev/dayring/pkg/timeutil"
)

// Agenda prints a month of entries as a table, one row per entry, with the
// date column blanked on repeats so days read as groups.
func Agenda(monthName string, entries []*entry.Entry) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(monthName)

	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println(" no entries")
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Separator = "  "
	tbl.AddRow("DATE", "", "ENTRY")

	var lastDay time.Time
	for _, e := range entries {
		date, kind, msg := e.Row()
		if timeutil.SameDay(lastDay, e.Date.Time) {
			date = ""
		} else {
			lastDay = e.Date.Time
		}
		tbl.AddRow(date, kind, msg)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
