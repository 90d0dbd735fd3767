package palette

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Built-in demo themes. A real host supplies its own lookup; the demo
// command flips between these two maps on a key press.
var themes = map[string]map[string]string{
	"dark": {
		TokenBackground: "#141A1F",
		TokenForeground: "#E8E2D8",
		TokenMuted:      "#7D858A",
		TokenAccent:     "#D46A1E",
		TokenBorder:     "#2E3A40",
		TokenSurface:    "#1C2329",
	},
	"light": {
		TokenBackground: "#F5F2EC",
		TokenForeground: "#22272B",
		TokenMuted:      "#8A8F94",
		TokenAccent:     "#C05B1A",
		TokenBorder:     "#D8D2C8",
		TokenSurface:    "#E8E4DC",
	},
}

// ThemeNames lists the built-in theme names.
func ThemeNames() []string {
	return []string{"dark", "light"}
}

// ThemeLookup returns a Lookup over a built-in theme. The name is fuzzily
// matched ("drak" selects "dark"); an unknown name selects "dark".
func ThemeLookup(name string) (Lookup, string) {
	resolved := resolveTheme(name)
	m := themes[resolved]
	return func(token string) string {
		return m[token]
	}, resolved
}

func resolveTheme(name string) string {
	in := strings.ToLower(strings.TrimSpace(name))
	if _, ok := themes[in]; ok {
		return in
	}
	for _, candidate := range ThemeNames() {
		if in != "" && levenshtein.ComputeDistance(in, candidate) <= distanceLimit(len(candidate)) {
			return candidate
		}
	}
	return "dark"
}
