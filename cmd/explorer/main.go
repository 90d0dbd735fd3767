//go:build cgo
// +build cgo

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/profile"

	"github.com/appengine-ltd/explorer/internal/app"
	"github.com/appengine-ltd/explorer/internal/palette"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		width       int
		height      int
		mobile      bool
		reduced     bool
		theme       string
		seed        int64
		profileMode string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.IntVar(&width, "width", 1200, "initial window width")
	flag.IntVar(&height, "height", 260, "initial window height")
	flag.BoolVar(&mobile, "mobile", false, "use mobile entity caps and spawn intervals")
	flag.BoolVar(&reduced, "reduced-motion", false, "start with the static reduced-motion pose")
	flag.StringVar(&theme, "theme", "dark", "color theme: "+strings.Join(palette.ThemeNames(), ", "))
	flag.Int64Var(&seed, "seed", 0, "scene seed (0 = time-based)")
	flag.StringVar(&profileMode, "profile", "", "write a cpu or mem profile to the working directory")
	flag.Parse()

	if showVersion {
		fmt.Printf("Explorer %s (%s) %s\n", version, commit, date)
		return
	}

	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath(".")).Stop()
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q (want cpu or mem)\n", profileMode)
		os.Exit(2)
	}

	a := app.New(app.Config{
		Width:         width,
		Height:        height,
		Mobile:        mobile,
		ReducedMotion: reduced,
		Theme:         theme,
		Seed:          seed,
	})

	if err := a.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
