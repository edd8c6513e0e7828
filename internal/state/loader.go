package state

import (
	"context"

	"github.com/payam49er/avatarhub/internal/catalog"
)

// CatalogLoader performs catalog fetches asynchronously and posts the
// results back as actions. There is no cancellation: a superseded fetch
// simply resolves into a stale-sequence action that the reducer discards.
type CatalogLoader interface {
	LoadAvatars(seq int, req catalog.ListAvatarsRequest)
	LoadGroups(seq int, publicOnly bool)
	LoadDetail(seq int, avatarID string)
}

// NewAsyncCatalogLoader constructs the default goroutine-based loader on
// top of a catalog source. dispatch must be safe to call from any
// goroutine (the app loop's action channel is).
func NewAsyncCatalogLoader(src catalog.Source, dispatch func(Action)) CatalogLoader {
	return &asyncCatalogLoader{src: src, dispatch: dispatch}
}

type asyncCatalogLoader struct {
	src      catalog.Source
	dispatch func(Action)
}

func (l *asyncCatalogLoader) LoadAvatars(seq int, req catalog.ListAvatarsRequest) {
	go func() {
		page, err := l.src.ListAvatars(context.Background(), req)
		l.dispatch(AvatarsLoadedAction{Seq: seq, Page: page, Err: err})
	}()
}

func (l *asyncCatalogLoader) LoadGroups(seq int, publicOnly bool) {
	go func() {
		list, err := l.src.ListGroups(context.Background(), publicOnly)
		l.dispatch(GroupsLoadedAction{Seq: seq, List: list, Err: err})
	}()
}

func (l *asyncCatalogLoader) LoadDetail(seq int, avatarID string) {
	go func() {
		detail, err := l.src.AvatarDetail(context.Background(), avatarID)
		l.dispatch(DetailLoadedAction{Seq: seq, AvatarID: avatarID, Detail: detail, Err: err})
	}()
}
