package config

const (
	ThemeGruvbox = "gruvbox"
	ThemeNord    = "nord"
)

func Themes() []string {
	return []string{ThemeGruvbox, ThemeNord}
}
