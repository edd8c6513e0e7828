package state

import "github.com/payam49er/avatarhub/internal/model"

// Snapshot is the read-only view of the gallery handed to presentation.
// It is a value copy; the renderer never sees the mutable state.
type Snapshot struct {
	VisibleAvatars []model.AvatarRecord
	Groups         []model.GroupRecord
	Page           model.PageInfo
	Filters        FilterState
	ViewMode       ViewMode

	SelectedAvatar int
	SelectedGroup  int
	GridScroll     int
	GroupScroll    int

	NameFilterActive bool
	NameQuery        string

	Detail DetailState

	LoadingAvatars bool
	LoadingGroups  bool
	Error          string

	ScreenWidth  int
	ScreenHeight int
}

// Snapshot derives the presentation view of the current state.
func (s *GalleryState) Snapshot() Snapshot {
	return Snapshot{
		VisibleAvatars:   s.VisibleAvatars(),
		Groups:           s.Groups,
		Page:             s.Page,
		Filters:          s.Filters,
		ViewMode:         s.ViewMode,
		SelectedAvatar:   s.SelectedAvatar,
		SelectedGroup:    s.SelectedGroup,
		GridScroll:       s.GridScroll,
		GroupScroll:      s.GroupScroll,
		NameFilterActive: s.NameFilterActive,
		NameQuery:        s.NameQuery,
		Detail:           s.Detail,
		LoadingAvatars:   s.LoadingAvatars,
		LoadingGroups:    s.LoadingGroups,
		Error:            s.LastError,
		ScreenWidth:      s.ScreenWidth,
		ScreenHeight:     s.ScreenHeight,
	}
}

// GroupTitleFor resolves a group id against the snapshot's group list.
func (snap Snapshot) GroupTitleFor(id string) string {
	for _, g := range snap.Groups {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}
