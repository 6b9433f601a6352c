// Package get provides the runner that lists stored entries.
package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/dayring/pkg/entry"
	"tableflip.dev/dayring/pkg/glyph"
	"tableflip.dev/dayring/pkg/printers"
	"tableflip.dev/dayring/pkg/store"
	"tableflip.dev/dayring/pkg/timeutil"
)

// Get prints entries: one day, one month agenda, or everything.
type Get struct {
	ShowID          bool
	Kind            glyph.Kind
	Month           string
	On              *time.Time
	ListCollections bool
	Persistence     store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	if n.ListCollections {
		for _, c := range n.Persistence.Collections(ctx, "") {
			fmt.Println(c)
		}
		return nil
	}

	fmt.Println("")

	if n.On != nil {
		pp := printers.PrettyPrint{ShowID: n.ShowID}
		pp.Title(n.On.Format(timeutil.LayoutUS))
		all := n.Persistence.List(ctx, timeutil.MonthKey(*n.On))
		day := make([]*entry.Entry, 0, len(all))
		for _, e := range all {
			if e.OnDay(*n.On) && n.wanted(e) {
				day = append(day, e)
			}
		}
		pp.Collection(day...)
		return nil
	}

	if n.Month == "today" || n.Month == "" {
		n.Month = timeutil.MonthKey(time.Now())
	}

	printers.Agenda(n.Month, n.filtered(n.Persistence.List(ctx, n.Month)))
	return nil
}

func (n *Get) wanted(e *entry.Entry) bool {
	return n.Kind == glyph.Any || n.Kind == e.Kind
}

func (n *Get) filtered(all []*entry.Entry) []*entry.Entry {
	c := make([]*entry.Entry, 0, len(all))
	for _, e := range all {
		if n.wanted(e) {
			c = append(c, e)
		}
	}
	return c
}
