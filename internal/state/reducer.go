package state

import (
	"github.com/payam49er/avatarhub/internal/catalog"
)

// Reducer applies actions to a GalleryState. Fetch-triggering transitions
// go through the CatalogLoader; the matching *LoadedAction arrives later
// on the same loop and is fenced by its sequence number.
type Reducer struct {
	loader     CatalogLoader
	publicOnly bool
}

// NewReducer creates a reducer. publicOnly is forwarded to every group
// fetch for the session.
func NewReducer(loader CatalogLoader, publicOnly bool) *Reducer {
	return &Reducer{loader: loader, publicOnly: publicOnly}
}

// Reduce performs one state transition. The returned state is the same
// pointer mutated in place; callers treat it as the new snapshot owner.
func (r *Reducer) Reduce(s *GalleryState, action Action) (*GalleryState, error) {
	switch a := action.(type) {

	// ===== LIFECYCLE =====

	case InitAction:
		// Groups and page-1 avatars load independently; neither blocks
		// the other.
		r.fetchGroups(s)
		r.fetchAvatars(s, 1)
		return s, nil

	case RetryAction:
		if s.ViewMode == ViewGroups {
			r.fetchGroups(s)
		} else {
			r.fetchAvatars(s, s.Page.Page)
		}
		return s, nil

	// ===== NAVIGATION =====

	case MoveSelectionAction:
		if s.Detail.Open {
			return s, nil
		}
		if s.ViewMode == ViewGroups {
			moveGroupSelection(s, a.DY)
		} else {
			moveGridSelection(s, a.DX, a.DY)
		}
		return s, nil

	case ChangePageAction:
		r.changePage(s, a.Page)
		return s, nil

	case PageForwardAction:
		r.changePage(s, s.Page.Page+1)
		return s, nil

	case PageBackAction:
		r.changePage(s, s.Page.Page-1)
		return s, nil

	// ===== FILTERS =====

	case SetFiltersAction:
		r.setFilters(s, a.Filters)
		return s, nil

	case CycleGenderFilterAction:
		next := s.Filters
		switch s.Filters.Gender {
		case GenderAll, "":
			next.Gender = GenderOnlyMale
		case GenderOnlyMale:
			next.Gender = GenderOnlyFemale
		default:
			next.Gender = GenderAll
		}
		r.setFilters(s, next)
		return s, nil

	case TogglePremiumFilterAction:
		next := s.Filters
		next.PremiumOnly = !next.PremiumOnly
		r.setFilters(s, next)
		return s, nil

	case SelectGroupAction:
		next := s.Filters
		next.GroupID = a.GroupID
		s.ViewMode = ViewAvatars
		r.setFilters(s, next)
		return s, nil

	case ClearGroupFilterAction:
		next := s.Filters
		next.GroupID = ""
		r.setFilters(s, next)
		return s, nil

	// ===== NAME FILTER =====

	case NameFilterStartAction:
		if s.ViewMode != ViewAvatars || s.Detail.Open {
			return s, nil
		}
		s.NameFilterActive = true
		return s, nil

	case NameFilterCharAction:
		if !s.NameFilterActive {
			return s, nil
		}
		s.NameQuery += string(a.Char)
		resetGridCursor(s)
		return s, nil

	case NameFilterBackspaceAction:
		if !s.NameFilterActive || s.NameQuery == "" {
			return s, nil
		}
		runes := []rune(s.NameQuery)
		s.NameQuery = string(runes[:len(runes)-1])
		resetGridCursor(s)
		return s, nil

	case NameFilterStopAction:
		s.NameFilterActive = false
		return s, nil

	case NameFilterClearAction:
		s.NameFilterActive = false
		s.NameQuery = ""
		resetGridCursor(s)
		return s, nil

	// ===== VIEW =====

	case ToggleViewAction:
		if s.ViewMode == ViewAvatars {
			s.ViewMode = ViewGroups
		} else {
			s.ViewMode = ViewAvatars
		}
		return s, nil

	case SwitchViewAction:
		if a.Mode == ViewAvatars || a.Mode == ViewGroups {
			s.ViewMode = a.Mode
		}
		return s, nil

	case ResizeAction:
		s.ScreenWidth = a.Width
		s.ScreenHeight = a.Height
		ensureGridVisible(s)
		ensureGroupVisible(s)
		return s, nil

	// ===== DETAIL =====

	case ShowDetailsAction:
		if a.AvatarID == "" {
			return s, nil
		}
		s.detailSeq++
		s.Detail = DetailState{Open: true, AvatarID: a.AvatarID, Loading: true}
		r.loader.LoadDetail(s.detailSeq, a.AvatarID)
		return s, nil

	case OpenSelectedAction:
		if s.Detail.Open {
			return s, nil
		}
		if s.ViewMode == ViewGroups {
			if g := s.SelectedGroupRecord(); g != nil {
				return r.Reduce(s, SelectGroupAction{GroupID: g.ID})
			}
			return s, nil
		}
		if av := s.SelectedAvatarRecord(); av != nil {
			return r.Reduce(s, ShowDetailsAction{AvatarID: av.ID})
		}
		return s, nil

	case CloseDetailsAction:
		// Bump the sequence so an in-flight detail result is discarded.
		s.detailSeq++
		s.Detail = DetailState{}
		return s, nil

	// ===== FETCH RESULTS =====

	case AvatarsLoadedAction:
		if a.Seq != s.avatarSeq {
			return s, nil // superseded request, discard
		}
		s.LoadingAvatars = false
		if a.Err != nil {
			// Stale-while-erroring: prior avatars stay visible.
			s.LastError = a.Err.Error()
			return s, nil
		}
		s.Avatars = a.Page.Avatars
		s.Page = a.Page.Info
		s.LastError = ""
		resetGridCursor(s)
		return s, nil

	case GroupsLoadedAction:
		if a.Seq != s.groupSeq {
			return s, nil
		}
		s.LoadingGroups = false
		if a.Err != nil {
			// Browsing avatars does not require groups; an empty list is
			// not a visible error unless the user is in the groups view.
			if s.ViewMode == ViewGroups {
				s.LastError = a.Err.Error()
			}
			return s, nil
		}
		s.Groups = a.List.Groups
		if s.SelectedGroup >= len(s.Groups) {
			s.SelectedGroup = 0
		}
		return s, nil

	case DetailLoadedAction:
		if a.Seq != s.detailSeq || !s.Detail.Open || a.AvatarID != s.Detail.AvatarID {
			return s, nil // closed or superseded, discard
		}
		s.Detail.Loading = false
		if a.Err != nil {
			s.LastError = a.Err.Error()
			return s, nil
		}
		detail := a.Detail
		s.Detail.Detail = &detail
		return s, nil
	}

	return s, nil
}

// ===== FETCH TRIGGERS =====

func (r *Reducer) fetchAvatars(s *GalleryState, page int) {
	s.avatarSeq++
	s.LoadingAvatars = true
	r.loader.LoadAvatars(s.avatarSeq, catalog.ListAvatarsRequest{
		Page:     page,
		PageSize: s.PageSize,
		GroupID:  s.Filters.GroupID,
	})
}

func (r *Reducer) fetchGroups(s *GalleryState) {
	s.groupSeq++
	s.LoadingGroups = true
	r.loader.LoadGroups(s.groupSeq, r.publicOnly)
}

func (r *Reducer) changePage(s *GalleryState, page int) {
	if page < 1 || page > s.Page.TotalPages || page == s.Page.Page {
		return // invalid transition requests are silently ignored
	}
	r.fetchAvatars(s, page)
}

// setFilters replaces the FilterState. Only a group change is
// server-scoped and refetches; gender/premium narrowing stays client-side.
func (r *Reducer) setFilters(s *GalleryState, next FilterState) {
	if next.Gender == "" {
		next.Gender = GenderAll
	}
	groupChanged := next.GroupID != s.Filters.GroupID
	s.Filters = next
	if groupChanged {
		r.fetchAvatars(s, 1)
	}
	resetGridCursor(s)
}

// ===== SELECTION HELPERS =====

func resetGridCursor(s *GalleryState) {
	s.SelectedAvatar = 0
	s.GridScroll = 0
	clampGridSelection(s)
}

func clampGridSelection(s *GalleryState) {
	visible := len(s.VisibleAvatars())
	if visible == 0 {
		s.SelectedAvatar = 0
		s.GridScroll = 0
		return
	}
	if s.SelectedAvatar >= visible {
		s.SelectedAvatar = visible - 1
	}
	if s.SelectedAvatar < 0 {
		s.SelectedAvatar = 0
	}
}

func moveGridSelection(s *GalleryState, dx, dy int) {
	visible := len(s.VisibleAvatars())
	if visible == 0 {
		return
	}
	cols := GridColumns(s.ScreenWidth)

	next := s.SelectedAvatar + dx + dy*cols
	if next < 0 || next >= visible {
		return // stay put at the edges
	}
	s.SelectedAvatar = next
	ensureGridVisible(s)
}

func ensureGridVisible(s *GalleryState) {
	cols := GridColumns(s.ScreenWidth)
	rowsVisible := GridRowsVisible(s.ScreenHeight)
	row := s.SelectedAvatar / cols

	if row < s.GridScroll {
		s.GridScroll = row
	}
	if row >= s.GridScroll+rowsVisible {
		s.GridScroll = row - rowsVisible + 1
	}
	if s.GridScroll < 0 {
		s.GridScroll = 0
	}
}

func moveGroupSelection(s *GalleryState, dy int) {
	if len(s.Groups) == 0 {
		return
	}
	next := s.SelectedGroup + dy
	if next < 0 || next >= len(s.Groups) {
		return
	}
	s.SelectedGroup = next
	ensureGroupVisible(s)
}

func ensureGroupVisible(s *GalleryState) {
	rowsVisible := s.ScreenHeight - gridChrome
	if rowsVisible < 1 {
		rowsVisible = 1
	}
	if s.SelectedGroup < s.GroupScroll {
		s.GroupScroll = s.SelectedGroup
	}
	if s.SelectedGroup >= s.GroupScroll+rowsVisible {
		s.GroupScroll = s.SelectedGroup - rowsVisible + 1
	}
	if s.GroupScroll < 0 {
		s.GroupScroll = 0
	}
}
