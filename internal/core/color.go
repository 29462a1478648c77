package core

// Color is a terminal color understood by lipgloss: a hex string ("#30c0df")
// or an ANSI 256-color index ("208"). The empty Color means "terminal default".
type Color string

// Palette used by the flappy sprite sheet and HUD.
const (
	ColorDefault   Color = ""
	ColorSky       Color = "#30c0df"
	ColorCloud     Color = "#e9fcd9"
	ColorSkyline   Color = "#7fd8b0"
	ColorWindow    Color = "#5ebf9a"
	ColorPipe      Color = "#73bf2e"
	ColorPipeDark  Color = "#558022"
	ColorPipeLight Color = "#9ce659"
	ColorGrass     Color = "#5ee270"
	ColorDirt      Color = "#ded895"
	ColorDirtDark  Color = "#c8b670"
	ColorBird      Color = "#f8e03a"
	ColorBeak      Color = "#f87b16"
	ColorEye       Color = "#ffffff"
	ColorWing      Color = "#f9f3c0"
	ColorWhite     Color = "#ffffff"
	ColorGray      Color = "245"
)
