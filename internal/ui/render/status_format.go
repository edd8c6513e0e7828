package render

import (
	"fmt"
	"strings"

	statepkg "github.com/payam49er/avatarhub/internal/state"
)

// formatPageStatus builds the left half of the status line for the
// avatars view, e.g. "page 2/3 · 53 avatars · 18 shown".
func formatPageStatus(snap statepkg.Snapshot) string {
	parts := []string{
		fmt.Sprintf("page %d/%d", snap.Page.Page, snap.Page.TotalPages),
		fmt.Sprintf("%d avatars", snap.Page.Total),
	}
	if shown := len(snap.VisibleAvatars); shown != snap.Page.Total {
		parts = append(parts, fmt.Sprintf("%d shown", shown))
	}
	return strings.Join(parts, " · ")
}

// formatFilterSummary renders the active filters for the header, empty
// when nothing narrows the listing.
func formatFilterSummary(snap statepkg.Snapshot) string {
	var parts []string
	if g := snap.Filters.Gender; g != statepkg.GenderAll && g != "" {
		parts = append(parts, string(g))
	}
	if snap.Filters.PremiumOnly {
		parts = append(parts, "premium")
	}
	if snap.Filters.GroupID != "" {
		parts = append(parts, "group: "+snap.GroupTitleFor(snap.Filters.GroupID))
	}
	if snap.NameQuery != "" {
		parts = append(parts, fmt.Sprintf("name: %q", snap.NameQuery))
	}
	return strings.Join(parts, " · ")
}

// formatDuration renders cumulative usage seconds compactly.
func formatDuration(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

func genderGlyph(gender string) string {
	switch gender {
	case "male":
		return "♂"
	case "female":
		return "♀"
	default:
		return "·"
	}
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// sanitizeText strips control runes so remote display text cannot inject
// terminal escape sequences.
func sanitizeText(text string) string {
	if !strings.ContainsFunc(text, isControlRune) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isControlRune(r) {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isControlRune(r rune) bool {
	return r < 0x20 || r == 0x7f
}
