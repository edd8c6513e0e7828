package state

import "github.com/payam49er/avatarhub/internal/model"

// ViewMode selects which collection the main panel is browsing.
type ViewMode string

const (
	ViewAvatars ViewMode = "avatars"
	ViewGroups  ViewMode = "groups"
)

// GenderFilter is the user-facing gender selector; unlike model.Gender it
// carries an "all" value.
type GenderFilter string

const (
	GenderAll        GenderFilter = "all"
	GenderOnlyMale   GenderFilter = "male"
	GenderOnlyFemale GenderFilter = "female"
)

// Matches reports whether an avatar's gender passes the filter.
func (g GenderFilter) Matches(av model.Gender) bool {
	return g == GenderAll || g == "" || string(g) == string(av)
}

// FilterState is the user-driven narrowing of the catalog. GroupID is
// server-scoped (changing it refetches); Gender and PremiumOnly only
// narrow the page that is already loaded.
type FilterState struct {
	Gender      GenderFilter
	PremiumOnly bool
	GroupID     string
}

// DetailState tracks the drill-down view. The fetched detail lives here
// only while the view is open and is discarded on close.
type DetailState struct {
	Open     bool
	AvatarID string
	Loading  bool
	Detail   *model.AvatarDetail
}

// ===== STATE DEFINITION =====

// GalleryState is the single source of truth. All mutation happens in the
// reducer on the app loop goroutine; everything else reads snapshots.
type GalleryState struct {
	// Collections
	Avatars []model.AvatarRecord // current page, replaced wholesale per fetch
	Groups  []model.GroupRecord  // loaded once, append-only for the session
	Page    model.PageInfo

	// Filters & view
	Filters  FilterState
	ViewMode ViewMode
	PageSize int

	// Selection & viewport
	SelectedAvatar int // index into VisibleAvatars
	SelectedGroup  int // index into Groups
	GridScroll     int // first visible grid row
	GroupScroll    int // first visible group row

	// Client-side name narrowing
	NameFilterActive bool
	NameQuery        string

	// Detail drill-down
	Detail DetailState

	// Loading & error surface
	LoadingAvatars bool
	LoadingGroups  bool
	LastError      string

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Request fencing: a result is applied only when its sequence number
	// matches the latest issued for that resource.
	avatarSeq int
	groupSeq  int
	detailSeq int

	dispatch func(Action)
}

// NewGalleryState builds the pre-initialization state; the first
// InitAction issues the startup fetches.
func NewGalleryState(pageSize int) *GalleryState {
	if pageSize < 1 {
		pageSize = 20
	}
	return &GalleryState{
		Page:     model.PageInfo{Page: 1, PageSize: pageSize, TotalPages: 1},
		Filters:  FilterState{Gender: GenderAll},
		ViewMode: ViewAvatars,
		PageSize: pageSize,
	}
}

// SetDispatch exposes the action dispatch hook so async loaders can post
// their results back into the app loop.
func (s *GalleryState) SetDispatch(fn func(Action)) {
	s.dispatch = fn
}

// Dispatch returns the installed dispatch hook, or nil before wiring.
func (s *GalleryState) Dispatch() func(Action) {
	return s.dispatch
}

// VisibleAvatars derives the filtered view of the current page.
func (s *GalleryState) VisibleAvatars() []model.AvatarRecord {
	return DeriveVisibleAvatars(s.Avatars, s.Filters, s.NameQuery)
}

// GroupTitle resolves a group id against the loaded list; unknown ids are
// shown raw.
func (s *GalleryState) GroupTitle(id string) string {
	for _, g := range s.Groups {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}

// SelectedAvatarRecord returns the avatar under the cursor, or nil when
// the visible set is empty.
func (s *GalleryState) SelectedAvatarRecord() *model.AvatarRecord {
	visible := s.VisibleAvatars()
	if s.SelectedAvatar < 0 || s.SelectedAvatar >= len(visible) {
		return nil
	}
	return &visible[s.SelectedAvatar]
}

// SelectedGroupRecord returns the group under the cursor, or nil.
func (s *GalleryState) SelectedGroupRecord() *model.GroupRecord {
	if s.SelectedGroup < 0 || s.SelectedGroup >= len(s.Groups) {
		return nil
	}
	return &s.Groups[s.SelectedGroup]
}
