package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/grapple/camera"
	"github.com/milk9111/grapple/grapple"
	"github.com/milk9111/grapple/input"
	"github.com/milk9111/grapple/physics"
	"github.com/milk9111/grapple/physics/debugdraw"
	"github.com/milk9111/grapple/prefabs"
	"github.com/milk9111/grapple/reticle"
	"github.com/milk9111/grapple/session"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 960
	baseHeight = 540
)

type Game struct {
	frames    int
	debug     bool
	paused    bool
	levelName string

	sess    *session.Session
	aim     *input.CursorAim
	reticle *reticle.Reticle
	camera  *camera.Camera
	mouse   *input.Mouse

	pause   *PauseUI
	hud     *HUD
	watcher *prefabs.Watcher
	pending map[string]bool
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	g := &Game{
		debug:     debug,
		levelName: levelName,
		mouse:     input.NewMouse(),
		camera:    camera.New(baseWidth, baseHeight, 1),
		pending:   make(map[string]bool),
	}

	rs, err := prefabs.LoadReticleSpec()
	if err != nil {
		log.Printf("reticle: %v, using defaults", err)
	}
	g.reticle = rs.Reticle()

	tool, err := prefabs.LoadGrappleToolSpec()
	if err != nil {
		return nil, err
	}
	lvl, err := prefabs.LoadLevelSpec(levelName)
	if err != nil {
		return nil, err
	}
	sess, aim, err := g.build(tool, lvl)
	if err != nil {
		return nil, err
	}
	g.commit(sess, aim)

	g.pause = NewPauseUI(g)
	g.hud = NewHUD()

	if watch {
		if _, err := os.Stat(prefabs.Dir); err == nil {
			w, err := prefabs.NewWatcher(prefabs.Dir)
			if err != nil {
				log.Printf("prefabs: hot reload disabled: %v", err)
			} else {
				g.watcher = w
			}
		}
	}
	return g, nil
}

// build assembles a session without touching g. The aim it returns is the
// one the new controller reads.
func (g *Game) build(tool *prefabs.GrappleToolSpec, lvl *prefabs.LevelSpec) (*session.Session, *input.CursorAim, error) {
	var aim *input.CursorAim
	opts := session.Options{
		Frame: 1.0 / float64(ebiten.TPS()),
		Input: g.mouse,
		Aim: func(b *physics.Body) grapple.Viewport {
			aim = &input.CursorAim{From: b, Zoom: g.camera.Zoom()}
			return aim
		},
		Reticle: g.reticle,
	}
	if g.debug {
		opts.Logger = log.Default()
	}
	sess, err := session.New(tool, lvl, opts)
	if err != nil {
		return nil, nil, err
	}
	return sess, aim, nil
}

// commit swaps in a built session and points the camera at its level.
func (g *Game) commit(sess *session.Session, aim *input.CursorAim) {
	g.sess = sess
	g.aim = aim
	g.camera.SetWorldBounds(sess.Bounds.Width, sess.Bounds.Height)
	spawn := sess.Level().Spawn
	g.camera.SnapTo(spawn.X, spawn.Y)
}

// setPaused shows the OS cursor over the pause menu; in play the reticle
// replaces it.
func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		g.pause.Refresh(g)
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
}

func (g *Game) respawn() {
	g.sess.Respawn()
	spawn := g.sess.Level().Spawn
	g.camera.SnapTo(spawn.X, spawn.Y)
}

func (g *Game) Update() error {
	g.frames++

	g.drainWatcher()
	g.applyReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pause.UI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.respawn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.sess.RemoveSurfaceAt(g.aim.CursorWorld())
	}

	g.aim.CamX, g.aim.CamY = g.camera.ViewTopLeft()
	g.aim.Zoom = g.camera.Zoom()
	g.sess.Step()

	pos := g.sess.Body().Position()
	g.camera.Update(pos.X, pos.Y)
	g.sess.LateStep()

	g.hud.Refresh(g)
	g.hud.UI.Update()
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.pending[name] = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("prefabs: watch: %v", err)
			}
		default:
			return
		}
	}
}

// applyReloads applies changed prefabs. Tool and level changes wait until
// the grapple is idle; a prefab that fails to load or build leaves the
// running session as it was.
func (g *Game) applyReloads() {
	if g.pending[prefabs.ReticleFile] {
		delete(g.pending, prefabs.ReticleFile)
		rs, err := prefabs.LoadReticleSpec()
		if err != nil {
			log.Printf("prefabs: reload %s: %v", prefabs.ReticleFile, err)
		} else {
			g.reticle.Restyle(rs.Reticle())
			log.Printf("prefabs: reloaded %s", prefabs.ReticleFile)
		}
	}

	if g.sess.Controller().IsGrappling() {
		return
	}

	levelFile := g.levelName
	if levelFile == "" {
		levelFile = prefabs.LevelFile
	}
	if g.pending[levelFile] {
		delete(g.pending, levelFile)
		delete(g.pending, prefabs.GrappleToolFile)
		if err := g.reloadLevel(); err != nil {
			log.Printf("prefabs: reload %s: %v", levelFile, err)
			return
		}
		log.Printf("prefabs: reloaded %s", levelFile)
		return
	}

	if g.pending[prefabs.GrappleToolFile] {
		delete(g.pending, prefabs.GrappleToolFile)
		tool, err := prefabs.LoadGrappleToolSpec()
		if err == nil {
			err = g.sess.SetTool(tool)
		}
		if err != nil {
			log.Printf("prefabs: reload %s: %v", prefabs.GrappleToolFile, err)
			return
		}
		log.Printf("prefabs: reloaded %s", prefabs.GrappleToolFile)
	}
}

// reloadLevel rebuilds the whole session from disk. A tool that fails to
// load keeps the current one.
func (g *Game) reloadLevel() error {
	lvl, err := prefabs.LoadLevelSpec(g.levelName)
	if err != nil {
		return err
	}
	tool, err := prefabs.LoadGrappleToolSpec()
	if err != nil {
		log.Printf("prefabs: reload %s: %v, keeping current tool", prefabs.GrappleToolFile, err)
		tool = g.sess.Tool()
	}
	sess, aim, err := g.build(tool, lvl)
	if err != nil {
		return err
	}
	g.commit(sess, aim)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	drawSurfaces(screen, g.sess.World, g.camera)
	body := g.sess.Body()
	drawBody(screen, body, g.camera)
	drawRope(screen, g.sess.Rope(), body, g.camera)
	if g.debug {
		left, top := g.camera.ViewTopLeft()
		debugdraw.Draw(screen, g.sess.Physics(), left, top, g.camera.Zoom())
	}

	g.hud.UI.Draw(screen)
	if g.paused {
		g.pause.UI.Draw(screen)
		return
	}
	cx, cy := ebiten.CursorPosition()
	drawReticle(screen, g.reticle, float64(cx), float64(cy))
}

// Close stops prefab hot reload.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
