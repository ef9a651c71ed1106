package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/grapple/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes and log grapple transitions")
	levelName := flag.String("level", "", "level prefab in prefabs/ (default level.yaml)")
	prefabDir := flag.String("prefabs", prefabs.Dir, "directory of on-disk prefab overrides")
	watch := flag.Bool("watch", true, "hot reload prefabs when they change on disk")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	prefabs.Dir = *prefabDir

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("grapple")

	game, err := NewGame(*levelName, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}

	// the reticle replaces the OS cursor
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	err = ebiten.RunGame(game)
	if cerr := game.Close(); cerr != nil {
		log.Printf("prefabs: close watcher: %v", cerr)
	}
	if err != nil {
		log.Fatal(err)
	}
}
