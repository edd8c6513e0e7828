package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/payam49er/avatarhub/internal/state"
)

// InputHandler converts tcell events to Actions.
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.GalleryState // for mode checking only
}

// NewInputHandler creates a new input handler.
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{actionChan: actionChan}
}

// SetState sets the state reference for mode checking.
func (ih *InputHandler) SetState(state *statepkg.GalleryState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false
// when the application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	detailOpen := ih.state != nil && ih.state.Detail.Open
	typingName := ih.state != nil && ih.state.NameFilterActive

	switch ev.Key() {
	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyEscape:
		switch {
		case detailOpen:
			ih.actionChan <- statepkg.CloseDetailsAction{}
		case typingName:
			ih.actionChan <- statepkg.NameFilterClearAction{}
		case ih.state != nil && ih.state.Filters.GroupID != "":
			ih.actionChan <- statepkg.ClearGroupFilterAction{}
		}
		return true

	case tcell.KeyEnter:
		if typingName {
			// Enter leaves typing mode but keeps the query applied.
			ih.actionChan <- statepkg.NameFilterStopAction{}
			return true
		}
		ih.actionChan <- statepkg.OpenSelectedAction{}
		return true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if typingName {
			ih.actionChan <- statepkg.NameFilterBackspaceAction{}
		}
		return true

	case tcell.KeyTab:
		if !typingName && !detailOpen {
			ih.actionChan <- statepkg.ToggleViewAction{}
		}
		return true

	case tcell.KeyUp:
		ih.actionChan <- statepkg.MoveSelectionAction{DY: -1}
		return true
	case tcell.KeyDown:
		ih.actionChan <- statepkg.MoveSelectionAction{DY: 1}
		return true
	case tcell.KeyLeft:
		ih.actionChan <- statepkg.MoveSelectionAction{DX: -1}
		return true
	case tcell.KeyRight:
		ih.actionChan <- statepkg.MoveSelectionAction{DX: 1}
		return true

	case tcell.KeyPgUp:
		ih.actionChan <- statepkg.PageBackAction{}
		return true
	case tcell.KeyPgDn:
		ih.actionChan <- statepkg.PageForwardAction{}
		return true

	case tcell.KeyRune:
		return ih.processRune(ev.Rune(), detailOpen, typingName)
	}

	return true
}

func (ih *InputHandler) processRune(r rune, detailOpen, typingName bool) bool {
	if typingName {
		if unicode.IsPrint(r) {
			ih.actionChan <- statepkg.NameFilterCharAction{Char: r}
		}
		return true
	}

	if detailOpen {
		if r == 'q' {
			ih.actionChan <- statepkg.CloseDetailsAction{}
		}
		return true
	}

	switch r {
	case 'q', 'Q':
		ih.actionChan <- statepkg.QuitAction{}
		return false
	case 'k':
		ih.actionChan <- statepkg.MoveSelectionAction{DY: -1}
	case 'j':
		ih.actionChan <- statepkg.MoveSelectionAction{DY: 1}
	case 'h':
		ih.actionChan <- statepkg.MoveSelectionAction{DX: -1}
	case 'l':
		ih.actionChan <- statepkg.MoveSelectionAction{DX: 1}
	case '[':
		ih.actionChan <- statepkg.PageBackAction{}
	case ']':
		ih.actionChan <- statepkg.PageForwardAction{}
	case 'f':
		ih.actionChan <- statepkg.CycleGenderFilterAction{}
	case 'p':
		ih.actionChan <- statepkg.TogglePremiumFilterAction{}
	case '/':
		ih.actionChan <- statepkg.NameFilterStartAction{}
	case 'g':
		ih.actionChan <- statepkg.SwitchViewAction{Mode: statepkg.ViewGroups}
	case 'a':
		ih.actionChan <- statepkg.SwitchViewAction{Mode: statepkg.ViewAvatars}
	case 'r':
		ih.actionChan <- statepkg.RetryAction{}
	}
	return true
}
