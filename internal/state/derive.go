package state

import (
	"strings"

	"github.com/payam49er/avatarhub/internal/model"
)

// DeriveVisibleAvatars narrows the loaded page to the avatars passing the
// gender/premium filters and the name query. It is pure and never
// triggers I/O; callers recompute it on every state change.
//
// This narrows only the page that is currently loaded, not the whole
// collection. Filtering stays client-side because the list endpoint has
// no gender or premium parameters.
func DeriveVisibleAvatars(avatars []model.AvatarRecord, filters FilterState, nameQuery string) []model.AvatarRecord {
	query := strings.ToLower(strings.TrimSpace(nameQuery))

	visible := make([]model.AvatarRecord, 0, len(avatars))
	for _, a := range avatars {
		if !filters.Gender.Matches(a.Gender) {
			continue
		}
		if filters.PremiumOnly && !a.Premium {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(a.Name), query) {
			continue
		}
		visible = append(visible, a)
	}
	return visible
}

// Grid geometry shared by the reducer (cursor math) and the renderer.
const (
	CardWidth  = 26
	CardHeight = 4
	gridChrome = 3 // header + filter line + status line
)

// GridColumns is how many cards fit across the screen, never below 1.
func GridColumns(screenWidth int) int {
	cols := screenWidth / CardWidth
	if cols < 1 {
		return 1
	}
	return cols
}

// GridRowsVisible is how many card rows fit between header and status
// line, never below 1.
func GridRowsVisible(screenHeight int) int {
	rows := (screenHeight - gridChrome) / CardHeight
	if rows < 1 {
		return 1
	}
	return rows
}
