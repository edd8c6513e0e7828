package state

import "testing"

// ===== GRID NAVIGATION =====

func TestMoveSelectionRight(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()

	if _, err := reducer.Reduce(s, MoveSelectionAction{DX: 1}); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if s.SelectedAvatar != 1 {
		t.Errorf("expected selection 1, got %d", s.SelectedAvatar)
	}
}

func TestMoveSelectionDownSkipsAColumn(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState() // width 80 → 3 columns

	cols := GridColumns(s.ScreenWidth)
	_, _ = reducer.Reduce(s, MoveSelectionAction{DY: 1})
	if s.SelectedAvatar != cols {
		t.Errorf("expected selection %d, got %d", cols, s.SelectedAvatar)
	}
}

func TestMoveSelectionStopsAtEdges(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()

	_, _ = reducer.Reduce(s, MoveSelectionAction{DX: -1})
	if s.SelectedAvatar != 0 {
		t.Errorf("moving left at the start should stay, got %d", s.SelectedAvatar)
	}

	s.SelectedAvatar = len(s.VisibleAvatars()) - 1
	_, _ = reducer.Reduce(s, MoveSelectionAction{DX: 1})
	if s.SelectedAvatar != len(s.VisibleAvatars())-1 {
		t.Errorf("moving right at the end should stay, got %d", s.SelectedAvatar)
	}
}

func TestMoveSelectionEmptyGrid(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := NewGalleryState(20)
	s.ScreenWidth = 80
	s.ScreenHeight = 24

	_, _ = reducer.Reduce(s, MoveSelectionAction{DY: 1})
	if s.SelectedAvatar != 0 {
		t.Errorf("empty grid keeps selection at 0, got %d", s.SelectedAvatar)
	}
}

func TestSelectionScrollsGrid(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()
	s.ScreenHeight = 11 // 2 visible card rows

	cols := GridColumns(s.ScreenWidth)
	rows := GridRowsVisible(s.ScreenHeight)

	for i := 0; i < rows*2; i++ {
		_, _ = reducer.Reduce(s, MoveSelectionAction{DY: 1})
	}

	row := s.SelectedAvatar / cols
	if row < s.GridScroll || row >= s.GridScroll+rows {
		t.Errorf("selection row %d not within viewport [%d, %d)", row, s.GridScroll, s.GridScroll+rows)
	}
}

// ===== NAME FILTER =====

func TestNameFilterTyping(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()
	s.SelectedAvatar = 5

	_, _ = reducer.Reduce(s, NameFilterStartAction{})
	for _, ch := range "avatar 1" {
		_, _ = reducer.Reduce(s, NameFilterCharAction{Char: ch})
	}

	if s.NameQuery != "avatar 1" {
		t.Fatalf("expected query %q, got %q", "avatar 1", s.NameQuery)
	}
	if s.SelectedAvatar != 0 {
		t.Error("typing resets the cursor to the first match")
	}
	visible := s.VisibleAvatars()
	for _, a := range visible {
		if a.Name[:8] != "Avatar 1" {
			t.Errorf("unexpected match %q", a.Name)
		}
	}

	_, _ = reducer.Reduce(s, NameFilterBackspaceAction{})
	if s.NameQuery != "avatar " {
		t.Errorf("backspace should drop one rune, got %q", s.NameQuery)
	}

	_, _ = reducer.Reduce(s, NameFilterClearAction{})
	if s.NameFilterActive || s.NameQuery != "" {
		t.Error("clear should leave the name filter empty and inactive")
	}
	if len(loader.calls) != 0 {
		t.Error("name narrowing is client-side and must not fetch")
	}
}

// ===== VIEW SWITCHING =====

func TestToggleView(t *testing.T) {
	loader := &recordingLoader{}
	reducer := NewReducer(loader, false)
	s := newLoadedState()

	_, _ = reducer.Reduce(s, ToggleViewAction{})
	if s.ViewMode != ViewGroups {
		t.Errorf("expected groups view, got %q", s.ViewMode)
	}
	_, _ = reducer.Reduce(s, ToggleViewAction{})
	if s.ViewMode != ViewAvatars {
		t.Errorf("expected avatars view, got %q", s.ViewMode)
	}
	if len(loader.calls) != 0 {
		t.Error("switching views must not fetch")
	}
}
