// Package mood provides the check-in runner.
package mood

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dayring/pkg/entry"
	"tableflip.dev/dayring/pkg/glyph"
	"tableflip.dev/dayring/pkg/printers"
	"tableflip.dev/dayring/pkg/store"
)

// Mood records a 1-5 check-in and reprints the month's mood history.
type Mood struct {
	Score       int
	Message     string
	On          time.Time
	Persistence store.Persistence
}

func (n *Mood) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not check in, no persistence")
	}
	if n.On.IsZero() {
		n.On = time.Now()
	}

	e, err := entry.NewMood(n.On, n.Score, n.Message)
	if err != nil {
		return err
	}
	if err := n.Persistence.Store(e); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(e.Collection)

	moods := make([]*entry.Entry, 0, 31)
	var sum int
	for _, x := range n.Persistence.List(ctx, e.Collection) {
		if x.Kind == glyph.Mood {
			moods = append(moods, x)
			sum += x.Score
		}
	}
	pp.Collection(moods...)

	if len(moods) > 1 {
		f := color.New(color.Faint)
		_, _ = f.Printf("average %.1f/5 over %d check-ins\n\n",
			float64(sum)/float64(len(moods)), len(moods))
	}
	return nil
}
