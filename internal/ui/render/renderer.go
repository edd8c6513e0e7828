package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	statepkg "github.com/payam49er/avatarhub/internal/state"
)

var spinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

const spinnerInterval = 100 * time.Millisecond

// Renderer draws the gallery from a state snapshot. It owns nothing but
// the screen and the theme; all data arrives through the snapshot.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI from the snapshot.
func (r *Renderer) Render(snap statepkg.Snapshot) {
	r.screen.Clear()

	w, h := r.screen.Size()
	r.drawHeader(snap, w)

	switch {
	case snap.ViewMode == statepkg.ViewGroups:
		r.drawGroupList(snap, w, h)
	case len(snap.VisibleAvatars) == 0 && snap.LoadingAvatars:
		r.drawCenteredSpinner(w, h, "loading avatars")
	case len(snap.VisibleAvatars) == 0 && snap.Error != "":
		r.drawErrorPanel(snap, w, h)
	default:
		r.drawGrid(snap, w, h)
	}

	if snap.Detail.Open {
		r.drawDetailOverlay(snap, w, h)
	}

	r.drawStatusLine(snap, w, h)
	r.screen.Show()
}

// ===== HEADER =====

func (r *Renderer) drawHeader(snap statepkg.Snapshot, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)

	title := "avatarhub"
	endX := r.drawTextLine(0, 0, w, title, style.Bold(true))

	view := " › avatars"
	if snap.ViewMode == statepkg.ViewGroups {
		view = " › groups"
	}
	endX = r.drawTextLine(endX, 0, w-endX, view, style)

	if summary := formatFilterSummary(snap); summary != "" {
		endX = r.drawTextLine(endX, 0, w-endX, "  ["+summary+"]", style.Foreground(r.theme.CardMetaFg))
	}

	if snap.LoadingAvatars || snap.LoadingGroups || snap.Detail.Loading {
		frame := string(spinnerFrames[int(time.Now().UnixMilli()/spinnerInterval.Milliseconds())%len(spinnerFrames)])
		endX = r.drawTextLine(endX, 0, w-endX, " "+frame, style.Foreground(r.theme.SpinnerFg))
	}

	for x := endX; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}

	// Name-filter prompt occupies the second header row while active.
	if snap.NameFilterActive {
		prompt := "/" + snap.NameQuery + "▏"
		px := r.drawTextLine(0, 1, w, prompt, style)
		for x := px; x < w; x++ {
			r.screen.SetContent(x, 1, ' ', nil, style)
		}
	}
}

// ===== AVATAR GRID =====

func (r *Renderer) drawGrid(snap statepkg.Snapshot, w, h int) {
	cols := statepkg.GridColumns(w)
	rowsVisible := statepkg.GridRowsVisible(h)
	topY := 2

	if len(snap.VisibleAvatars) == 0 {
		msg := "no avatars match the current filters"
		r.drawTextLine((w-runewidth.StringWidth(msg))/2, h/2, w, msg, tcell.StyleDefault.Foreground(r.theme.CardMetaFg))
		return
	}

	for i, av := range snap.VisibleAvatars {
		row := i/cols - snap.GridScroll
		if row < 0 || row >= rowsVisible {
			continue
		}
		col := i % cols
		x := col * statepkg.CardWidth
		y := topY + row*statepkg.CardHeight
		r.drawCard(x, y, av.Name, string(av.Gender), av.Type, av.Tags, av.Premium, i == snap.SelectedAvatar)
	}
}

// drawCard paints one avatar card: name row, meta row, tag row.
func (r *Renderer) drawCard(x, y int, name, gender, typ string, tags []string, premium, selected bool) {
	inner := statepkg.CardWidth - 2

	nameStyle := tcell.StyleDefault.Foreground(r.theme.CardNameFg).Bold(true)
	metaStyle := tcell.StyleDefault.Foreground(r.theme.CardMetaFg)
	if selected {
		nameStyle = nameStyle.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		metaStyle = metaStyle.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	}

	marker := " "
	if premium {
		marker = "★"
	}
	nameLine := fmt.Sprintf("%s %s %s", marker, genderGlyph(gender), truncate(sanitizeText(name), inner-4))
	metaLine := " " + truncate(typ, inner-1)
	tagLine := ""
	if len(tags) > 0 {
		tagLine = " " + truncate(joinTags(tags), inner-1)
	}

	r.drawPadded(x, y, inner, nameLine, nameStyle)
	r.drawPadded(x, y+1, inner, metaLine, metaStyle)
	r.drawPadded(x, y+2, inner, tagLine, metaStyle)
}

func joinTags(tags []string) string {
	out := ""
	for i, tag := range tags {
		if i > 0 {
			out += " "
		}
		out += "#" + tag
	}
	return out
}

// ===== GROUP LIST =====

func (r *Renderer) drawGroupList(snap statepkg.Snapshot, w, h int) {
	topY := 2
	rowsVisible := h - 3
	if rowsVisible < 1 {
		rowsVisible = 1
	}

	if len(snap.Groups) == 0 {
		msg := "no groups available"
		if snap.LoadingGroups {
			msg = "loading groups"
		}
		r.drawTextLine((w-runewidth.StringWidth(msg))/2, h/2, w, msg, tcell.StyleDefault.Foreground(r.theme.CardMetaFg))
		return
	}

	for i, g := range snap.Groups {
		row := i - snap.GroupScroll
		if row < 0 || row >= rowsVisible {
			continue
		}
		y := topY + row

		titleStyle := tcell.StyleDefault.Foreground(r.theme.GroupTitleFg)
		metaStyle := tcell.StyleDefault.Foreground(r.theme.CardMetaFg)
		if i == snap.SelectedGroup {
			titleStyle = titleStyle.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
			metaStyle = metaStyle.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		}

		visibility := "public"
		if !g.Public {
			visibility = "private"
		}
		title := fmt.Sprintf(" %s", truncate(sanitizeText(g.Title), w/2))
		meta := fmt.Sprintf("  %d avatars · %s", g.NumAvatars, visibility)
		if g.Description != "" {
			meta += " · " + truncate(sanitizeText(g.Description), w/3)
		}

		endX := r.drawTextLine(0, y, w, title, titleStyle)
		endX = r.drawTextLine(endX, y, w-endX, meta, metaStyle)
		if i == snap.SelectedGroup {
			for x := endX; x < w; x++ {
				r.screen.SetContent(x, y, ' ', nil, metaStyle)
			}
		}
	}
}

// ===== DETAIL OVERLAY =====

func (r *Renderer) drawDetailOverlay(snap statepkg.Snapshot, w, h int) {
	boxW := w * 2 / 3
	if boxW < 40 {
		boxW = min(w-2, 40)
	}
	boxH := h * 2 / 3
	if boxH < 10 {
		boxH = min(h-2, 10)
	}
	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2

	bg := tcell.StyleDefault.Background(r.theme.DetailBg).Foreground(r.theme.DetailFg)
	label := bg.Foreground(r.theme.DetailLabelFg)

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	if snap.Detail.Loading || snap.Detail.Detail == nil {
		frame := string(spinnerFrames[int(time.Now().UnixMilli()/spinnerInterval.Milliseconds())%len(spinnerFrames)])
		msg := frame + " loading details"
		r.drawTextLine(x0+(boxW-runewidth.StringWidth(msg))/2, y0+boxH/2, boxW, msg, bg)
		return
	}

	d := snap.Detail.Detail
	inner := boxW - 4
	y := y0 + 1

	line := func(key, value string) {
		if value == "" || y >= y0+boxH-1 {
			return
		}
		endX := r.drawTextLine(x0+2, y, inner, key, label)
		r.drawTextLine(endX, y, inner-(endX-x0-2), " "+truncate(sanitizeText(value), inner), bg)
		y++
	}

	name := sanitizeText(d.Name)
	r.drawTextLine(x0+2, y, inner, fmt.Sprintf("%s %s", genderGlyph(string(d.Gender)), name), bg.Bold(true))
	y += 2

	line("status:", d.Status)
	line("type:", d.Type)
	line("description:", d.Description)
	line("languages:", joinComma(d.Languages))
	if len(d.Voices) > 0 {
		names := make([]string, 0, len(d.Voices))
		for _, v := range d.Voices {
			names = append(names, fmt.Sprintf("%s (%s)", v.Name, v.Language))
		}
		line("voices:", joinComma(names))
	}
	line("usage:", fmt.Sprintf("%d videos · %s", d.VideoCount, formatDuration(d.TotalDurationSeconds)))
	line("preview:", d.PreviewVideoURL)
	if !d.CreatedAt.IsZero() {
		line("created:", d.CreatedAt.Format("2006-01-02"))
	}

	hint := "esc to close"
	r.drawTextLine(x0+boxW-runewidth.StringWidth(hint)-2, y0+boxH-1, boxW, hint, bg.Foreground(r.theme.CardMetaFg))
}

func joinComma(items []string) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += ", "
		}
		out += it
	}
	return out
}

// ===== ERROR & SPINNER PANELS =====

func (r *Renderer) drawErrorPanel(snap statepkg.Snapshot, w, h int) {
	style := tcell.StyleDefault.Foreground(r.theme.ErrorFg)
	msg := truncate(sanitizeText(snap.Error), w-4)
	hint := "press r to retry"
	r.drawTextLine((w-runewidth.StringWidth(msg))/2, h/2-1, w, msg, style)
	r.drawTextLine((w-runewidth.StringWidth(hint))/2, h/2+1, w, hint, tcell.StyleDefault.Foreground(r.theme.CardMetaFg))
}

func (r *Renderer) drawCenteredSpinner(w, h int, label string) {
	frame := string(spinnerFrames[int(time.Now().UnixMilli()/spinnerInterval.Milliseconds())%len(spinnerFrames)])
	msg := frame + " " + label
	r.drawTextLine((w-runewidth.StringWidth(msg))/2, h/2, w, msg, tcell.StyleDefault.Foreground(r.theme.SpinnerFg))
}

// ===== STATUS LINE =====

func (r *Renderer) drawStatusLine(snap statepkg.Snapshot, w, h int) {
	y := h - 1
	style := tcell.StyleDefault.Background(r.theme.StatusBg).Foreground(r.theme.StatusFg)

	var left string
	if snap.ViewMode == statepkg.ViewGroups {
		left = fmt.Sprintf("%d groups", len(snap.Groups))
	} else {
		left = formatPageStatus(snap)
	}

	endX := r.drawTextLine(0, y, w, left, style)

	// Non-blocking error note while stale data stays visible.
	if snap.Error != "" && (len(snap.VisibleAvatars) > 0 || snap.ViewMode == statepkg.ViewGroups) {
		note := "  ⚠ " + truncate(sanitizeText(snap.Error), w/3) + " (r to retry)"
		endX = r.drawTextLine(endX, y, w-endX, note, style.Foreground(r.theme.ErrorFg))
	}

	help := "tab views · / name · f gender · p premium · [ ] page · enter open · q quit"
	helpW := runewidth.StringWidth(help)
	if w-endX-1 > helpW {
		r.drawTextLine(w-helpW, y, helpW, help, style.Foreground(r.theme.CardMetaFg))
	}
}

// ===== PRIMITIVES =====

// drawTextLine draws text clipped to width, returning the x after the
// last cell written.
func (r *Renderer) drawTextLine(x, y, width int, text string, style tcell.Style) int {
	if width <= 0 {
		return x
	}
	cx := x
	for _, ru := range text {
		rw := runewidth.RuneWidth(ru)
		if rw == 0 {
			continue
		}
		if cx+rw > x+width {
			break
		}
		r.screen.SetContent(cx, y, ru, nil, style)
		cx += rw
	}
	return cx
}

// drawPadded draws text left-aligned in a fixed-width cell, padding with
// the style's background.
func (r *Renderer) drawPadded(x, y, width int, text string, style tcell.Style) {
	endX := r.drawTextLine(x, y, width, text, style)
	for cx := endX; cx < x+width; cx++ {
		r.screen.SetContent(cx, y, ' ', nil, style)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
