package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background    tcell.Color
	Foreground    tcell.Color
	HeaderBg      tcell.Color
	HeaderFg      tcell.Color
	CardBorderFg  tcell.Color
	CardNameFg    tcell.Color
	CardMetaFg    tcell.Color
	SelectionBg   tcell.Color
	SelectionFg   tcell.Color
	PremiumFg     tcell.Color
	GroupTitleFg  tcell.Color
	PrivateFg     tcell.Color
	StatusBg      tcell.Color
	StatusFg      tcell.Color
	ErrorFg       tcell.Color
	DetailBg      tcell.Color
	DetailFg      tcell.Color
	DetailLabelFg tcell.Color
	SpinnerFg     tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:    tcell.ColorDefault,
		Foreground:    tcell.ColorDefault,
		HeaderBg:      tcell.ColorDefault,
		HeaderFg:      tcell.ColorDefault,
		CardBorderFg:  tcell.Color240,
		CardNameFg:    tcell.ColorDefault,
		CardMetaFg:    tcell.Color245,
		SelectionBg:   tcell.Color33,
		SelectionFg:   tcell.ColorWhite,
		PremiumFg:     tcell.Color220,
		GroupTitleFg:  tcell.Color33,
		PrivateFg:     tcell.ColorLightSlateGray,
		StatusBg:      tcell.ColorDefault,
		StatusFg:      tcell.ColorDefault,
		ErrorFg:       tcell.Color196,
		DetailBg:      tcell.Color234,
		DetailFg:      tcell.Color252,
		DetailLabelFg: tcell.Color44,
		SpinnerFg:     tcell.Color33,
	}
}
