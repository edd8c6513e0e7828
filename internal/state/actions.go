package state

import (
	"github.com/payam49er/avatarhub/internal/catalog"
	"github.com/payam49er/avatarhub/internal/model"
)

// Action is the base interface for all state mutations.
type Action interface{}

// ===== LIFECYCLE ACTIONS =====

// InitAction triggers the startup fetches: the group list and page 1 of
// the unscoped avatar listing, independently.
type InitAction struct{}

// RetryAction re-issues the fetch for whatever the current view shows.
type RetryAction struct{}

type QuitAction struct{}

// ===== NAVIGATION ACTIONS =====

// MoveSelectionAction moves the cursor by grid deltas. In the groups view
// only DY is meaningful.
type MoveSelectionAction struct {
	DX int
	DY int
}

// ChangePageAction requests an absolute page; out-of-range requests and
// the current page are silently ignored.
type ChangePageAction struct {
	Page int
}

type PageForwardAction struct{}
type PageBackAction struct{}

// ===== FILTER ACTIONS =====

// SetFiltersAction replaces the whole FilterState. A group change
// triggers a page-1 refetch; gender/premium changes never do.
type SetFiltersAction struct {
	Filters FilterState
}

type CycleGenderFilterAction struct{}
type TogglePremiumFilterAction struct{}

// SelectGroupAction scopes the listing to a group and switches to the
// avatars view.
type SelectGroupAction struct {
	GroupID string
}

type ClearGroupFilterAction struct{}

// ===== NAME FILTER ACTIONS =====

type NameFilterStartAction struct{}
type NameFilterCharAction struct {
	Char rune
}
type NameFilterBackspaceAction struct{}

// NameFilterStopAction leaves typing mode but keeps the query applied.
type NameFilterStopAction struct{}

// NameFilterClearAction leaves typing mode and drops the query.
type NameFilterClearAction struct{}

// ===== VIEW ACTIONS =====

type ToggleViewAction struct{}
type SwitchViewAction struct {
	Mode ViewMode
}

type ResizeAction struct {
	Width  int
	Height int
}

// ===== DETAIL ACTIONS =====

type ShowDetailsAction struct {
	AvatarID string
}

// OpenSelectedAction activates the record under the cursor: a group gets
// selected, an avatar opens its detail view.
type OpenSelectedAction struct{}

type CloseDetailsAction struct{}

// ===== FETCH RESULTS (posted by the async loader) =====

type AvatarsLoadedAction struct {
	Seq  int
	Page catalog.AvatarPage
	Err  error
}

type GroupsLoadedAction struct {
	Seq  int
	List catalog.GroupList
	Err  error
}

type DetailLoadedAction struct {
	Seq      int
	AvatarID string
	Detail   model.AvatarDetail
	Err      error
}
