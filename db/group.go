package db

import (
	"context"
	"errors"
	"fmt"
)

// Group tracks the connections opened at startup so they can be closed in
// reverse order, including when a later connection fails.
type Group struct {
	opened []DB
}

func (g *Group) Connect(ctx context.Context, d DB) error {
	if err := d.Connect(ctx); err != nil {
		return fmt.Errorf("connect %s: %w", d.Type(), err)
	}
	g.opened = append(g.opened, d)
	return nil
}

// Disconnect closes every opened connection, newest first, and reports all
// failures together.
func (g *Group) Disconnect(ctx context.Context) error {
	var errs []error
	for i := len(g.opened) - 1; i >= 0; i-- {
		d := g.opened[i]
		if err := d.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("disconnect %s: %w", d.Type(), err))
		}
	}
	g.opened = nil
	return errors.Join(errs...)
}
