package components

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Palette is the active color table converted to terminal colors.
type Palette struct {
	Bg            lipgloss.TerminalColor
	BgAlt         lipgloss.TerminalColor
	Surface       lipgloss.TerminalColor
	Border        lipgloss.TerminalColor
	Text          lipgloss.TerminalColor
	TextSecondary lipgloss.TerminalColor
	Accent        lipgloss.TerminalColor
	AccentHover   lipgloss.TerminalColor
	AccentLight   lipgloss.TerminalColor
	Success       lipgloss.TerminalColor
	Warning       lipgloss.TerminalColor
	Error         lipgloss.TerminalColor
	ButtonBg      lipgloss.TerminalColor
	ButtonText    lipgloss.TerminalColor
	LinkColor     lipgloss.TerminalColor
	CodeBg        lipgloss.TerminalColor
	CodeText      lipgloss.TerminalColor

	source theme.ColorConfig
}

// NewPalette converts a color table.
func NewPalette(colors theme.ColorConfig) Palette {
	return Palette{
		Bg:            TerminalColor(colors.Bg),
		BgAlt:         TerminalColor(colors.BgAlt),
		Surface:       TerminalColor(colors.Surface),
		Border:        TerminalColor(colors.Border),
		Text:          TerminalColor(colors.Text),
		TextSecondary: TerminalColor(colors.TextSecondary),
		Accent:        TerminalColor(colors.Accent),
		AccentHover:   TerminalColor(colors.AccentHover),
		AccentLight:   TerminalColor(colors.AccentLight),
		Success:       TerminalColor(colors.Success),
		Warning:       TerminalColor(colors.Warning),
		Error:         TerminalColor(colors.Error),
		ButtonBg:      TerminalColor(colors.ButtonBg),
		ButtonText:    TerminalColor(colors.ButtonText),
		LinkColor:     TerminalColor(colors.LinkColor),
		CodeBg:        TerminalColor(colors.CodeBg),
		CodeText:      TerminalColor(colors.CodeText),
		source:        colors,
	}
}

// Colors returns the color table the palette was built from.
func (p Palette) Colors() theme.ColorConfig {
	return p.source
}

var rgbFuncRegex = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})[\s,]+(\d{1,3})[\s,]+(\d{1,3})`)

// TerminalColor converts a CSS color string to a terminal color. Hex and
// rgb()/rgba() values are supported (alpha is dropped); anything else maps
// to no color.
func TerminalColor(value string) lipgloss.TerminalColor {
	v := strings.TrimSpace(value)
	if strings.HasPrefix(v, "#") {
		switch len(v) {
		case 4, 7:
			return lipgloss.Color(v)
		case 5:
			return lipgloss.Color(v[:4])
		case 9:
			return lipgloss.Color(v[:7])
		}
		return lipgloss.NoColor{}
	}

	m := rgbFuncRegex.FindStringSubmatch(strings.ToLower(v))
	if m == nil {
		return lipgloss.NoColor{}
	}
	var rgb [3]int
	for i := range rgb {
		n, err := strconv.Atoi(m[i+1])
		if err != nil || n > 255 {
			return lipgloss.NoColor{}
		}
		rgb[i] = n
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", rgb[0], rgb[1], rgb[2]))
}
