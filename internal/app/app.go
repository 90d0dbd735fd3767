//go:build cgo
// +build cgo

// Package app hosts the scene engine in a raylib window: it drives the
// frame loop, forwards resizes, and maps the theme and reduced-motion
// toggles onto the engine's external signals. The engine itself consumes
// no input.
package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/explorer/internal/engine"
	"github.com/appengine-ltd/explorer/internal/palette"
)

type Config struct {
	Width, Height int
	Mobile        bool
	ReducedMotion bool
	Theme         string
	Seed          int64
}

type App struct {
	cfg     Config
	theme   string
	reduced bool
}

func New(cfg Config) *App {
	_, theme := palette.ThemeLookup(cfg.Theme)
	return &App{cfg: cfg, theme: theme, reduced: cfg.ReducedMotion}
}

// lookup resolves tokens against whichever built-in theme is active, so
// the engine's OnThemeChange sees fresh colors after a toggle.
func (a *App) lookup(token string) string {
	l, _ := palette.ThemeLookup(a.theme)
	return l(token)
}

func (a *App) toggleTheme() {
	if a.theme == "dark" {
		a.theme = "light"
	} else {
		a.theme = "dark"
	}
}

func (a *App) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(a.cfg.Width), int32(a.cfg.Height), "explorer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	surface := &raylibCanvas{}
	eng, err := engine.New(engine.Config{
		Canvas:        surface,
		Lookup:        a.lookup,
		Width:         float64(rl.GetScreenWidth()),
		Height:        float64(rl.GetScreenHeight()),
		Mobile:        a.cfg.Mobile,
		ReducedMotion: a.cfg.ReducedMotion,
		Seed:          a.cfg.Seed,
	})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	width, height := rl.GetScreenWidth(), rl.GetScreenHeight()
	lastTick := time.Now()

	for !rl.WindowShouldClose() {
		// Suspend the simulation entirely while minimized and resume
		// with a fresh delta baseline, so no simulated time jump.
		if rl.IsWindowMinimized() {
			rl.BeginDrawing()
			rl.EndDrawing()
			lastTick = time.Now()
			continue
		}

		now := time.Now()
		delta := now.Sub(lastTick)
		if delta < 0 {
			delta = 0
		}
		lastTick = now

		if w, h := rl.GetScreenWidth(), rl.GetScreenHeight(); w != width || h != height {
			width, height = w, h
			eng.Resize(float64(w), float64(h))
		}

		if rl.IsKeyPressed(rl.KeyT) {
			a.toggleTheme()
			eng.OnThemeChange()
		}
		if rl.IsKeyPressed(rl.KeyM) {
			a.reduced = !a.reduced
			eng.SetReducedMotion(a.reduced)
		}

		eng.Update(delta.Seconds())

		rl.BeginDrawing()
		eng.Draw()
		rl.EndDrawing()
	}

	return nil
}
