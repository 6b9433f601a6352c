// Package add provides the runner that records a new dated entry.
package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/dayring/pkg/entry"
	"tableflip.dev/dayring/pkg/glyph"
	"tableflip.dev/dayring/pkg/printers"
	"tableflip.dev/dayring/pkg/store"
	"tableflip.dev/dayring/pkg/timeutil"
)

// Add stores one entry and reprints the day it landed on.
type Add struct {
	Kind        glyph.Kind
	On          time.Time
	Message     string
	Score       int
	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if n.On.IsZero() {
		n.On = time.Now()
	}

	var e *entry.Entry
	var err error
	if n.Kind == glyph.Mood {
		e, err = entry.NewMood(n.On, n.Score, n.Message)
		if err != nil {
			return err
		}
	} else {
		e = entry.New(n.Kind, n.On, n.Message)
	}

	if err := n.Persistence.Store(e); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(n.On.Format(timeutil.LayoutUS))

	day := make([]*entry.Entry, 0, 4)
	for _, x := range n.Persistence.List(ctx, e.Collection) {
		if x.OnDay(n.On) {
			day = append(day, x)
		}
	}
	pp.Collection(day...)
	return nil
}
