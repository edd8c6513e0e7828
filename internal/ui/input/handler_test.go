package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/payam49er/avatarhub/internal/state"
)

func newHandler(t *testing.T, state *statepkg.GalleryState) (*InputHandler, chan statepkg.Action) {
	t.Helper()
	ch := make(chan statepkg.Action, 8)
	ih := NewInputHandler(ch)
	ih.SetState(state)
	return ih, ch
}

func drain(ch chan statepkg.Action) []statepkg.Action {
	var out []statepkg.Action
	for {
		select {
		case a := <-ch:
			out = append(out, a)
		default:
			return out
		}
	}
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestBrowseKeys(t *testing.T) {
	tests := []struct {
		name   string
		event  *tcell.EventKey
		expect statepkg.Action
	}{
		{name: "down arrow", event: tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), expect: statepkg.MoveSelectionAction{DY: 1}},
		{name: "vim left", event: key('h'), expect: statepkg.MoveSelectionAction{DX: -1}},
		{name: "page forward", event: key(']'), expect: statepkg.PageForwardAction{}},
		{name: "page back", event: tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), expect: statepkg.PageBackAction{}},
		{name: "gender cycle", event: key('f'), expect: statepkg.CycleGenderFilterAction{}},
		{name: "premium toggle", event: key('p'), expect: statepkg.TogglePremiumFilterAction{}},
		{name: "retry", event: key('r'), expect: statepkg.RetryAction{}},
		{name: "open", event: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), expect: statepkg.OpenSelectedAction{}},
		{name: "toggle view", event: tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), expect: statepkg.ToggleViewAction{}},
	}

	for _, tt := range tests {
		ih, ch := newHandler(t, statepkg.NewGalleryState(20))
		if !ih.ProcessEvent(tt.event) {
			t.Fatalf("%s: unexpected quit", tt.name)
		}
		actions := drain(ch)
		if len(actions) != 1 || actions[0] != tt.expect {
			t.Errorf("%s: expected %T, got %v", tt.name, tt.expect, actions)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		ih, ch := newHandler(t, statepkg.NewGalleryState(20))
		if ih.ProcessEvent(ev) {
			t.Error("quit keys should stop the loop")
		}
		actions := drain(ch)
		if len(actions) != 1 {
			t.Fatalf("expected a quit action, got %v", actions)
		}
		if _, ok := actions[0].(statepkg.QuitAction); !ok {
			t.Errorf("expected QuitAction, got %T", actions[0])
		}
	}
}

func TestTypingModeCapturesRunes(t *testing.T) {
	state := statepkg.NewGalleryState(20)
	state.NameFilterActive = true
	ih, ch := newHandler(t, state)

	ih.ProcessEvent(key('q')) // must not quit while typing
	ih.ProcessEvent(key('a'))

	actions := drain(ch)
	if len(actions) != 2 {
		t.Fatalf("expected 2 char actions, got %v", actions)
	}
	for _, a := range actions {
		if _, ok := a.(statepkg.NameFilterCharAction); !ok {
			t.Errorf("expected NameFilterCharAction, got %T", a)
		}
	}
}

func TestEscapePriorities(t *testing.T) {
	esc := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)

	state := statepkg.NewGalleryState(20)
	state.Detail = statepkg.DetailState{Open: true, AvatarID: "a1"}
	ih, ch := newHandler(t, state)
	ih.ProcessEvent(esc)
	actions := drain(ch)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %v", actions)
	}
	if _, ok := actions[0].(statepkg.CloseDetailsAction); !ok {
		t.Errorf("esc closes an open detail first, got %T", actions[0])
	}

	state = statepkg.NewGalleryState(20)
	state.Filters.GroupID = "g-1"
	ih, ch = newHandler(t, state)
	ih.ProcessEvent(esc)
	actions = drain(ch)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %v", actions)
	}
	if _, ok := actions[0].(statepkg.ClearGroupFilterAction); !ok {
		t.Errorf("esc clears the group scope when nothing else is open, got %T", actions[0])
	}
}

func TestResizeEvent(t *testing.T) {
	ih, ch := newHandler(t, statepkg.NewGalleryState(20))
	ih.ProcessEvent(tcell.NewEventResize(120, 40))

	actions := drain(ch)
	if len(actions) != 1 {
		t.Fatalf("expected one action, got %v", actions)
	}
	resize, ok := actions[0].(statepkg.ResizeAction)
	if !ok || resize.Width != 120 || resize.Height != 40 {
		t.Errorf("expected ResizeAction{120 40}, got %v", actions[0])
	}
}
