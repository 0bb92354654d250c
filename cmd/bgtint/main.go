// Bgtint - per-mode wallpaper sets with derived accent palettes
//
// Bgtint keeps separate wallpaper sets for dark and light theme modes and
// derives an accent-colour palette from the active wallpapers.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/bgtint/internal/cli"
)

func main() {
	cli.Execute()
}
