package playing

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/blockfall/internal/application/session"
	"github.com/younwookim/blockfall/internal/domain/entity"
)

const hudHelp = "<- ->: Move\nDown: Soft drop\nUp/X: Rotate\nZ: Rotate CCW\nSpace: Hard drop\nP/ESC: Pause"

func (p *Playing) drawBoard(screen *ebiten.Image, view session.View) {
	size := p.config.Display.CellSize
	w, h := boardSize(size)
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), colorWell)

	for y := 0; y < entity.BoardHeight; y++ {
		for x := 0; x < entity.BoardWidth; x++ {
			c := view.CellAt(x, y)
			px, py := float64(x*size), float64(y*size)
			if !c.Filled {
				ebitenutil.DrawRect(screen, px, py, float64(size), 1, colorGrid)
				continue
			}
			ebitenutil.DrawRect(screen, px+1, py+1, float64(size-2), float64(size-2), p.cellColor(c.Color))
		}
	}
}

// drawGhost outlines where the falling piece would land
func (p *Playing) drawGhost(screen *ebiten.Image, view session.View, ghostY int) {
	if view.Current == nil || ghostY == view.Current.Position.Y {
		return
	}
	size := p.config.Display.CellSize
	piece := view.Current
	for _, cell := range piece.Shape.Cells() {
		x, y := piece.Position.X+cell.X, ghostY+cell.Y
		if y < 0 {
			continue
		}
		ebitenutil.DrawRect(screen, float64(x*size+2), float64(y*size+2), float64(size-4), float64(size-4), colorGhost)
	}
}

func (p *Playing) drawPanel(screen *ebiten.Image, view session.View) {
	size := p.config.Display.CellSize
	ox, oy := previewOrigin(size)
	box := float64(PreviewCells * size)
	ebitenutil.DrawRect(screen, float64(ox), float64(oy), box, box, colorPreviewBox)

	dx, dy := previewOffset(view.Next.Shape)
	c := p.cellColor(view.Next.Color)
	for _, cell := range view.Next.Shape.Cells() {
		px := ox + (dx+cell.X)*size
		py := oy + (dy+cell.Y)*size
		ebitenutil.DrawRect(screen, float64(px+1), float64(py+1), float64(size-2), float64(size-2), c)
	}

	ebitenutil.DebugPrintAt(screen, "NEXT", ox, oy-16)

	hud := fmt.Sprintf("Score: %d\nLevel: %d\nLines: %d\n\n%s", view.Score, view.Level, view.Lines, hudHelp)
	ebitenutil.DebugPrintAt(screen, hud, ox, oy+PreviewCells*size+size/2)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	w, h := boardSize(p.config.Display.CellSize)
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), colorPause)
	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress P to resume", w/2-50, h/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image, view session.View) {
	w, h := boardSize(p.config.Display.CellSize)
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), colorGameOver)
	text := fmt.Sprintf("GAME OVER\n\nScore: %d\nLines: %d\n\nPress R to restart", view.Score, view.Lines)
	ebitenutil.DebugPrintAt(screen, text, w/2-55, h/2-30)
}
