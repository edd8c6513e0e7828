package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/payam49er/avatarhub/internal/catalog"
	statepkg "github.com/payam49er/avatarhub/internal/state"
	inputui "github.com/payam49er/avatarhub/internal/ui/input"
	renderui "github.com/payam49er/avatarhub/internal/ui/render"
)

// Options configures a new Application.
type Options struct {
	Source     catalog.Source
	PageSize   int
	PublicOnly bool
	Log        zerolog.Logger
}

// NewApplication wires screen, state, reducer, loader and renderer, and
// issues the startup fetches.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	state := statepkg.NewGalleryState(opts.PageSize)
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	actionCh := make(chan statepkg.Action, 16)
	dispatch := func(action statepkg.Action) {
		select {
		case actionCh <- action:
		default:
			go func() { actionCh <- action }()
		}
	}
	state.SetDispatch(dispatch)

	loader := statepkg.NewAsyncCatalogLoader(opts.Source, dispatch)
	reducer := statepkg.NewReducer(loader, opts.PublicOnly)
	renderer := renderui.NewRenderer(screen)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	app := &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderer,
		input:    inputHandler,
		actionCh: actionCh,
		log:      opts.Log,
	}

	// Startup fetches: groups and page-1 avatars, independently.
	if _, err := reducer.Reduce(state, statepkg.InitAction{}); err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

// Run drives the cooperative event loop until quit. All state mutation
// happens here, one action at a time.
func (app *Application) Run() {
	defer app.screen.Fini()

	app.renderer.Render(app.state.Snapshot())
	renderPending := false

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	const animationInterval = 100 * time.Millisecond
	var animationTimer *time.Timer
	var animationCh <-chan time.Time

	startAnimation := func() {
		if animationTimer == nil {
			animationTimer = time.NewTimer(animationInterval)
		} else {
			if !animationTimer.Stop() {
				select {
				case <-animationTimer.C:
				default:
				}
			}
			animationTimer.Reset(animationInterval)
		}
		animationCh = animationTimer.C
	}

	stopAnimation := func() {
		if animationTimer == nil {
			return
		}
		if !animationTimer.Stop() {
			select {
			case <-animationTimer.C:
			default:
			}
		}
		animationCh = nil
	}

	for !app.shouldQuit {
		if renderPending {
			app.renderer.Render(app.state.Snapshot())
			renderPending = false
		}

		// Spinners animate only while something is in flight.
		if app.shouldAnimate() {
			startAnimation()
		} else {
			stopAnimation()
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-animationCh:
			renderPending = true
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}

	stopAnimation()
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
		app.screen.Sync()
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// processActions drains whatever async results queued up so one render
// covers them all.
func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

func (app *Application) shouldAnimate() bool {
	return app.state.LoadingAvatars || app.state.LoadingGroups || app.state.Detail.Loading
}

func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	if _, ok := action.(statepkg.QuitAction); ok {
		app.shouldQuit = true
		return false
	}

	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.log.Error().Err(err).Msgf("reduce %T", action)
		app.state.LastError = err.Error()
	}
	return true
}
