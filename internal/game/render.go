package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawParticles(screen)

	if !g.sess.Formed() {
		g.drawFormButton(screen)
	}
	g.drawMessagePanel(screen)
	if g.sess.Completed() {
		g.drawFinalPhrase(screen)
	}

	status := ""
	if !g.sess.Formed() {
		status = "Haz clic en el botón o pulsa Enter para formar el corazón"
	} else {
		status = fmt.Sprintf("Haz clic en una luz para leer su mensaje — %d/%d vistos",
			g.sess.ViewedCount(), len(g.pool.Interactive))
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	w, h := g.cam.Size()
	// Slow vertical gradient from near-black to deep wine.
	for y := 0; y < h; y++ {
		ratio := float64(y) / float64(h)
		r := uint8(12 + 18*ratio + 4*math.Sin(g.elapsed*0.3+ratio*math.Pi))
		gr := uint8(6 + 6*ratio)
		b := uint8(16 + 14*ratio + 4*math.Cos(g.elapsed*0.2+ratio*math.Pi))
		ebitenutil.DrawLine(screen, 0, float64(y), float64(w), float64(y), color.RGBA{R: r, G: gr, B: b, A: 255})
	}
}

// drawParticles projects both populations through the camera and draws
// them back layer first: faint background points, then the larger
// tone-colored interactive points with a glow halo, then the selection
// marker. Consumes the pool's dirty flag.
func (g *Game) drawParticles(screen *ebiten.Image) {
	vp := g.cam.ViewProjection()
	pulse := g.pulse()

	for i := range g.pool.Background {
		p := &g.pool.Background[i]
		x, y, depth, ok := g.cam.Project(vp, p.Pos)
		if !ok {
			continue
		}
		size := clamp(float64(90/depth), 0.6, 2.6)
		c := p.Color
		c.A = uint8(70 + 110*clamp01(1.6-float64(depth)/100))
		vector.DrawFilledCircle(screen, x, y, float32(size), c, false)
	}

	openIdx, open := g.sess.OpenIndex()
	for i := range g.pool.Interactive {
		p := &g.pool.Interactive[i]
		x, y, depth, ok := g.cam.Project(vp, p.Pos)
		if !ok {
			continue
		}
		size := float32(clamp(float64(320/depth), 2.5, 8))

		glow := p.Color
		glow.A = uint8(40 + 50*pulse)
		vector.DrawFilledCircle(screen, x, y, size*(2+float32(pulse)), glow, false)
		vector.DrawFilledCircle(screen, x, y, size, p.Color, false)

		if open && i == openIdx {
			vector.StrokeCircle(screen, x, y, size*2.6, 2,
				color.RGBA{R: 255, G: 255, B: 255, A: 230}, false)
		}
	}

	g.pool.Dirty = false
}

func (g *Game) drawFormButton(screen *ebiten.Image) {
	bx, by := g.buttonOrigin()

	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 90, G: 30, B: 60, A: 255}
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 130, G: 45, B: 85, A: 255}
	} else {
		bgColor = color.RGBA{R: 110, G: 36, B: 72, A: 255}
	}

	vector.DrawFilledRect(screen, float32(bx), float32(by), buttonWidth, buttonHeight, bgColor, false)
	vector.StrokeRect(screen, float32(bx), float32(by), buttonWidth, buttonHeight, 2,
		color.RGBA{R: 220, G: 140, B: 170, A: 255}, false)

	text := "Formar corazón"
	textWidth := len(text) * 6
	ebitenutil.DebugPrintAt(screen, text, bx+(buttonWidth-textWidth)/2, by+(buttonHeight-14)/2)
}

func (g *Game) drawMessagePanel(screen *ebiten.Image) {
	idx, open := g.sess.OpenIndex()
	if !open {
		return
	}
	msg := g.doc.Messages[idx]
	w, h := g.cam.Size()

	panelWidth := w - 240
	panelHeight := 130
	panelX := 120
	panelY := h - panelHeight - 30

	vector.DrawFilledRect(screen, float32(panelX), float32(panelY), float32(panelWidth), float32(panelHeight),
		color.RGBA{R: 18, G: 12, B: 22, A: 230}, false)
	accent := msg.Tone.Color()
	vector.StrokeRect(screen, float32(panelX), float32(panelY), float32(panelWidth), float32(panelHeight), 2, accent, false)
	vector.DrawFilledRect(screen, float32(panelX), float32(panelY), 6, float32(panelHeight), accent, false)

	ebitenutil.DebugPrintAt(screen, strings.ToUpper(msg.Name), panelX+22, panelY+12)
	for i, line := range wrapText(msg.Text, (panelWidth-44)/6) {
		ebitenutil.DebugPrintAt(screen, line, panelX+22, panelY+34+i*16)
	}
	footer := panelFooter(idx, len(g.pool.Interactive))
	ebitenutil.DebugPrintAt(screen, footer, panelX+22, panelY+panelHeight-22)
}

// panelFooter shows the position within the navigable range, which is
// the interactive population, not the raw message list: when the
// particle budget caps the population, Next/Previous wrap at the cap.
func panelFooter(idx, interactive int) string {
	return fmt.Sprintf("%d/%d  —  ←/→ navegar, Esc cerrar", idx+1, interactive)
}

func (g *Game) drawFinalPhrase(screen *ebiten.Image) {
	w, _ := g.cam.Size()
	phrase := g.doc.FinalPhrase

	bannerWidth := len(phrase)*6 + 60
	bannerX := (w - bannerWidth) / 2
	bannerY := 44

	vector.DrawFilledRect(screen, float32(bannerX), float32(bannerY), float32(bannerWidth), 36,
		color.RGBA{R: 40, G: 14, B: 30, A: 235}, false)
	vector.StrokeRect(screen, float32(bannerX), float32(bannerY), float32(bannerWidth), 36, 2,
		color.RGBA{R: 250, G: 190, B: 210, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, phrase, bannerX+30, bannerY+10)
}
