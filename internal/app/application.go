package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	statepkg "github.com/payam49er/avatarhub/internal/state"
	inputui "github.com/payam49er/avatarhub/internal/ui/input"
	renderui "github.com/payam49er/avatarhub/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.GalleryState
	reducer    *statepkg.Reducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	log        zerolog.Logger
	shouldQuit bool
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}
