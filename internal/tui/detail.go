package tui

import (
	"context"

	"github.com/jfmyers9/storefront/internal/pager"
	"github.com/jfmyers9/storefront/internal/rows"
)

// detailList is a paginated list of one result kind, seen as rows.
type detailList interface {
	Kind() rows.Kind
	Rows(likes rows.Likes) ([]rows.Row, pager.State, error)
	State() pager.State
	LoadMore(ctx context.Context) error
	Subscribe(fn func()) (cancel func())
}

// detail adapts a typed pager.Controller to detailList.
type detail[T any] struct {
	kind  rows.Kind
	list  *pager.Controller[T]
	build func([]T, rows.Likes) []rows.Row
}

func newDetail[T any](kind rows.Kind, list *pager.Controller[T], build func([]T, rows.Likes) []rows.Row) *detail[T] {
	return &detail[T]{kind: kind, list: list, build: build}
}

func (d *detail[T]) Kind() rows.Kind {
	return d.kind
}

func (d *detail[T]) Rows(likes rows.Likes) ([]rows.Row, pager.State, error) {
	snap := d.list.Snapshot()
	return d.build(snap.Items, likes), snap.State, snap.Err
}

func (d *detail[T]) State() pager.State {
	return d.list.State()
}

func (d *detail[T]) LoadMore(ctx context.Context) error {
	_, err := d.list.LoadMore(ctx)
	return err
}

func (d *detail[T]) Subscribe(fn func()) (cancel func()) {
	return d.list.Subscribe(func(pager.Snapshot[T]) { fn() })
}
