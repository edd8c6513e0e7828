// Package catalog talks to the remote avatar catalog. The exported surface
// is the Source contract plus two implementations: RemoteSource, which can
// fail, and FallbackSource, which cannot. ResilientSource glues them
// together so callers above this package never see a transport error.
package catalog

import (
	"context"
	"errors"

	"github.com/payam49er/avatarhub/internal/model"
)

// DefaultPageSize is the per-session page size used when the caller does
// not configure one.
const DefaultPageSize = 20

// ErrLogicalFailure marks a response whose envelope carried a non-null
// error field despite a successful transport round trip.
var ErrLogicalFailure = errors.New("catalog: remote reported an error")

// ListAvatarsRequest describes one avatar listing fetch. GroupID is
// optional; when set the server scopes the listing to that group.
type ListAvatarsRequest struct {
	Page     int
	PageSize int
	GroupID  string
}

// AvatarPage is one page of avatar records plus its pagination window.
type AvatarPage struct {
	Avatars []model.AvatarRecord
	Info    model.PageInfo
}

// GroupList is the full group listing; groups are not paginated.
type GroupList struct {
	Groups []model.GroupRecord
	Total  int
}

// Source is the catalog contract. All three operations are independently
// fallible; the orchestrator only ever holds a Source that absorbs
// failures (see ResilientSource).
type Source interface {
	ListAvatars(ctx context.Context, req ListAvatarsRequest) (AvatarPage, error)
	ListGroups(ctx context.Context, publicOnly bool) (GroupList, error)
	AvatarDetail(ctx context.Context, avatarID string) (model.AvatarDetail, error)
}
