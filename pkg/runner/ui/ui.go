// Package ui provides the runner that opens the wheel interface.
package ui

import (
	"context"
	"errors"

	"tableflip.dev/dayring/pkg/store"
	"tableflip.dev/dayring/pkg/tui/app"
)

// UI opens the full-screen date wheel over the loaded store.
type UI struct {
	Persistence store.Persistence
}

func (d *UI) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("can not open ui, no persistence")
	}
	return app.Run(d.Persistence)
}
