package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for the ishikawa CLI.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Ember gradient, dark red to amber
	lines := []struct {
		text  string
		color string
	}{
		{`  _     _     _ _`, "#b91c1c"},
		{` (_)___| |__ (_) | ____ ___      ____ _`, "#dc2626"},
		{` | / __| '_ \| | |/ / _' \ \ /\ / / _' |`, "#ea580c"},
		{` | \__ \ | | | |   < (_| |\ V  V / (_| |`, "#f59e0b"},
		{` |_|___/_| |_|_|_|\_\__,_| \_/\_/ \__,_|`, "#fbbf24"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Println()
}
