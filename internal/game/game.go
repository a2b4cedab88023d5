// Package game wires the particle engine, session state, camera and
// audio into the ebiten update/draw loop. All mutable state is owned by
// the Game instance; nothing here is package-global.
package game

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/mvelarde/corazon/internal/config"
	"github.com/mvelarde/corazon/internal/message"
	"github.com/mvelarde/corazon/internal/particle"
	"github.com/mvelarde/corazon/internal/scene"
	"github.com/mvelarde/corazon/internal/session"
)

// Formation button dimensions
const (
	buttonWidth  = 200
	buttonHeight = 44
)

type Game struct {
	log *zap.Logger
	doc message.Document

	pool   *particle.Pool
	engine *particle.Engine
	sess   *session.State
	cam    *scene.Camera

	elapsed float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	// pointer state written by input handling, consumed by the tick
	pointer      mgl32.Vec2
	pendingClick bool

	// camera drag
	dragging bool
	lastX    int
	lastY    int

	// button state
	buttonHovered bool
	buttonPressed bool

	audio   audioState
	lastErr error
}

func New(doc message.Document, log *zap.Logger) (*Game, error) {
	pool, err := particle.NewPool(doc.Messages, config.TotalParticles)
	if err != nil {
		return nil, err
	}
	return &Game{
		log:     log,
		doc:     doc,
		pool:    pool,
		engine:  particle.NewEngine(time.Now().UnixNano()),
		sess:    session.New(len(pool.Interactive), config.CompletionThreshold),
		cam:     scene.NewCamera(config.WindowWidth, config.WindowHeight),
		prevKey: map[ebiten.Key]bool{},
	}, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.pointer = g.cam.NDC(mouseX, mouseY)

	g.handleButton(mouseX, mouseY)
	g.handleDrag(mouseX, mouseY)

	// Left click outside the button becomes a selection attempt,
	// resolved after this tick's position update.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		g.sess.Formed() && !g.buttonHovered {
		g.pendingClick = true
	}

	if justPressed(ebiten.KeyEnter) {
		g.triggerFormation()
	}
	if justPressed(ebiten.KeyEscape) {
		if _, open := g.sess.OpenIndex(); open {
			g.sess.Close()
			g.log.Debug("message closed")
		} else {
			return ebiten.Termination
		}
	}
	if justPressed(ebiten.KeyRight) {
		g.reportCompletion(g.sess.Next())
	}
	if justPressed(ebiten.KeyLeft) {
		g.reportCompletion(g.sess.Previous())
	}
	if justPressed(ebiten.KeySpace) {
		g.toggleMusic()
	}
	if justPressed(ebiten.KeyM) {
		if err := g.openMusicDialog(); err != nil {
			g.lastErr = err
			g.log.Warn("music selection failed", zap.Error(err))
		}
	}

	if !g.dragging {
		g.cam.Azimuth += config.AutoOrbitSpeed
	}

	g.elapsed += 1.0 / 60.0 // Assuming 60 TPS
	g.engine.Advance(g.pool, g.sess.Formed(), g.elapsed)

	if g.pendingClick {
		g.pendingClick = false
		g.resolveClick()
	}

	return nil
}

// handleButton runs the formation button hover/press/release cycle.
// The button exists only until formation is triggered.
func (g *Game) handleButton(mouseX, mouseY int) {
	if g.sess.Formed() {
		g.buttonHovered = false
		g.buttonPressed = false
		return
	}

	bx, by := g.buttonOrigin()
	g.buttonHovered = mouseX >= bx && mouseX <= bx+buttonWidth &&
		mouseY >= by && mouseY <= by+buttonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.triggerFormation()
		}
		g.buttonPressed = false
	}
}

// handleDrag orbits the camera while the right mouse button is held.
func (g *Game) handleDrag(mouseX, mouseY int) {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if g.dragging {
			g.cam.Orbit(float64(mouseX-g.lastX), float64(mouseY-g.lastY))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX = mouseX
	g.lastY = mouseY
}

func (g *Game) buttonOrigin() (int, int) {
	w, h := g.cam.Size()
	return (w - buttonWidth) / 2, h - 110
}

func (g *Game) triggerFormation() {
	if g.sess.Formed() {
		return
	}
	g.sess.Form()
	g.log.Info("formation triggered")
}

// resolveClick maps the stored pointer position to an interactive
// particle and opens its message. A miss is a normal no-op.
func (g *Game) resolveClick() {
	hit, ok := scene.Resolve(g.pointer, g.cam, g.pool)
	if !ok {
		return
	}
	completed := g.sess.Open(hit.Message)
	msg := g.doc.Messages[hit.Message]
	g.log.Info("message opened",
		zap.Int("index", hit.Message),
		zap.String("name", msg.Name),
		zap.Any("worldPoint", hit.World),
	)
	g.reportCompletion(completed)
}

func (g *Game) reportCompletion(completed bool) {
	if completed {
		g.log.Info("all messages discovered", zap.String("finalPhrase", g.doc.FinalPhrase))
	}
}

// Layout reports the render size and keeps the camera aspect in sync
// with viewport resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.cam.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
