package state

import (
	"testing"

	"github.com/payam49er/avatarhub/internal/model"
)

func TestGenderPremiumChangesNeverRefetch(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()

	_, _ = reducer.Reduce(s, SetFiltersAction{Filters: FilterState{Gender: GenderOnlyFemale, PremiumOnly: true}})
	_, _ = reducer.Reduce(s, CycleGenderFilterAction{})
	_, _ = reducer.Reduce(s, TogglePremiumFilterAction{})

	if len(loader.calls) != 0 {
		t.Fatalf("client-side filter changes must not fetch, got %d calls", len(loader.calls))
	}
}

func TestGroupChangeRefetchesAtPageOne(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()
	s.Page = model.NewPageInfo(3, 20, 53)

	_, _ = reducer.Reduce(s, SetFiltersAction{Filters: FilterState{Gender: GenderAll, GroupID: "g-news"}})

	calls := loader.callsOf("avatars")
	if len(calls) != 1 {
		t.Fatalf("group change must issue exactly one fetch, got %d", len(calls))
	}
	if calls[0].req.Page != 1 {
		t.Errorf("group change resets to page 1, got %d", calls[0].req.Page)
	}
	if calls[0].req.GroupID != "g-news" {
		t.Errorf("fetch must be scoped to the new group, got %q", calls[0].req.GroupID)
	}
}

func TestSameGroupInFiltersDoesNotRefetch(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()
	s.Filters.GroupID = "g-news"

	_, _ = reducer.Reduce(s, SetFiltersAction{Filters: FilterState{Gender: GenderOnlyMale, GroupID: "g-news"}})

	if len(loader.calls) != 0 {
		t.Errorf("unchanged group must not refetch, got %d calls", len(loader.calls))
	}
}

func TestSelectGroupSwitchesViewAndRefetches(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()
	s.ViewMode = ViewGroups
	s.Groups = []model.GroupRecord{
		{ID: "g-biz", Title: "Business"},
		{ID: "g-casual", Title: "Casual"},
	}
	s.SelectedGroup = 1

	_, _ = reducer.Reduce(s, OpenSelectedAction{})

	if s.ViewMode != ViewAvatars {
		t.Errorf("selecting a group switches to the avatars view, got %q", s.ViewMode)
	}
	if s.Filters.GroupID != "g-casual" {
		t.Errorf("expected group filter g-casual, got %q", s.Filters.GroupID)
	}
	calls := loaderAvatarPages(loader)
	if len(calls) != 1 || calls[0] != 1 {
		t.Errorf("expected exactly one page-1 fetch, got %v", calls)
	}
}

func TestClearGroupFilterRefetchesUnscoped(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()
	s.Filters.GroupID = "g-biz"

	_, _ = reducer.Reduce(s, ClearGroupFilterAction{})

	calls := loader.callsOf("avatars")
	if len(calls) != 1 {
		t.Fatalf("expected one fetch, got %d", len(calls))
	}
	if calls[0].req.GroupID != "" {
		t.Errorf("expected unscoped fetch, got group %q", calls[0].req.GroupID)
	}
}

func TestCycleGenderFilter(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()

	expect := []GenderFilter{GenderOnlyMale, GenderOnlyFemale, GenderAll, GenderOnlyMale}
	for i, want := range expect {
		_, _ = reducer.Reduce(s, CycleGenderFilterAction{})
		if s.Filters.Gender != want {
			t.Fatalf("cycle %d: expected %q, got %q", i, want, s.Filters.Gender)
		}
	}
}

func loaderAvatarPages(l *recordingLoader) []int {
	var pages []int
	for _, c := range l.callsOf("avatars") {
		pages = append(pages, c.req.Page)
	}
	return pages
}
