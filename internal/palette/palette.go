// Package palette caches the named colors the scene engine draws with.
// Colors come from a host-supplied lookup callback keyed by token name;
// the cache only ever replaces a color when the lookup yields a value
// that parses, so a missing or malformed result degrades to the previous
// color instead of an invalid style.
package palette

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/explorer/internal/canvas"
)

// Lookup resolves a token name to a color string such as "#141A1F".
// An empty result means the host has no value for the token.
type Lookup func(token string) string

// Token names the engine draws with.
const (
	TokenBackground = "background"
	TokenForeground = "foreground"
	TokenMuted      = "muted"
	TokenAccent     = "accent"
	TokenBorder     = "border"
	TokenSurface    = "surface"
)

var tokens = []string{
	TokenBackground,
	TokenForeground,
	TokenMuted,
	TokenAccent,
	TokenBorder,
	TokenSurface,
}

// Night-sky defaults used until the first successful Refresh.
var defaults = map[string]canvas.Color{
	TokenBackground: canvas.RGB(0x14, 0x1A, 0x1F),
	TokenForeground: canvas.RGB(0xE8, 0xE2, 0xD8),
	TokenMuted:      canvas.RGB(0x7D, 0x85, 0x8A),
	TokenAccent:     canvas.RGB(0xD4, 0x6A, 0x1E),
	TokenBorder:     canvas.RGB(0x2E, 0x3A, 0x40),
	TokenSurface:    canvas.RGB(0x1C, 0x23, 0x29),
}

// Palette is the cached token-to-color map for one engine instance.
type Palette struct {
	lookup Lookup
	colors map[string]canvas.Color
}

// New builds a palette seeded with the default colors and immediately
// refreshed from the lookup when one is provided.
func New(lookup Lookup) *Palette {
	p := &Palette{
		lookup: lookup,
		colors: make(map[string]canvas.Color, len(defaults)),
	}
	for token, c := range defaults {
		p.colors[token] = c
	}
	p.Refresh()
	return p
}

// Refresh re-reads every token from the lookup. Tokens the lookup cannot
// supply, or supplies malformed, keep their previous cached color.
func (p *Palette) Refresh() {
	if p.lookup == nil {
		return
	}
	for _, token := range tokens {
		raw := p.lookup(token)
		if raw == "" {
			continue
		}
		c, err := ParseHex(raw)
		if err != nil {
			continue
		}
		p.colors[token] = c
	}
}

// Color returns the cached color for a token. An unrecognized token name
// is fuzzily matched against the known tokens first, so a host asking for
// "forground" still gets the foreground color; a name too far from any
// token falls back to the foreground color.
func (p *Palette) Color(token string) canvas.Color {
	if c, ok := p.colors[token]; ok {
		return c
	}
	if resolved, ok := ResolveToken(token); ok {
		return p.colors[resolved]
	}
	return p.colors[TokenForeground]
}

// ResolveToken maps a near-miss token name onto a known token using
// Levenshtein distance, with a tolerance that scales with token length.
func ResolveToken(name string) (string, bool) {
	in := strings.ToLower(strings.TrimSpace(name))
	if in == "" {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, token := range tokens {
		if in == token {
			return token, true
		}
		dist := levenshtein.ComputeDistance(in, token)
		if dist > distanceLimit(len(token)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best = token
			bestDist = dist
		}
	}
	return best, best != ""
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA" color strings.
func ParseHex(s string) (canvas.Color, error) {
	raw := strings.TrimSpace(s)
	if !strings.HasPrefix(raw, "#") {
		return canvas.Color{}, fmt.Errorf("color %q: missing # prefix", s)
	}
	raw = raw[1:]

	hex := func(hi, lo byte) (uint8, bool) {
		h, okH := hexVal(hi)
		l, okL := hexVal(lo)
		return h<<4 | l, okH && okL
	}

	var r, g, b, a uint8 = 0, 0, 0, 255
	var ok1, ok2, ok3, ok4 bool
	switch len(raw) {
	case 3:
		r, ok1 = hex(raw[0], raw[0])
		g, ok2 = hex(raw[1], raw[1])
		b, ok3 = hex(raw[2], raw[2])
		ok4 = true
	case 6:
		r, ok1 = hex(raw[0], raw[1])
		g, ok2 = hex(raw[2], raw[3])
		b, ok3 = hex(raw[4], raw[5])
		ok4 = true
	case 8:
		r, ok1 = hex(raw[0], raw[1])
		g, ok2 = hex(raw[2], raw[3])
		b, ok3 = hex(raw[4], raw[5])
		a, ok4 = hex(raw[6], raw[7])
	default:
		return canvas.Color{}, fmt.Errorf("color %q: unsupported length", s)
	}
	if !(ok1 && ok2 && ok3 && ok4) {
		return canvas.Color{}, fmt.Errorf("color %q: invalid hex digit", s)
	}
	return canvas.Color{R: r, G: g, B: b, A: a}, nil
}

func hexVal(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
