package playing

import "github.com/younwookim/blockfall/internal/domain/entity"

// PreviewCells is the side length, in cells, of the next-piece box
const PreviewCells = 4

// panelCells is the width of the side panel: the preview box plus a cell of margin each side
const panelCells = PreviewCells + 2

// ScreenSize returns the logical screen size for a board drawn at cellSize pixels per cell
func ScreenSize(cellSize int) (int, int) {
	return (entity.BoardWidth + panelCells) * cellSize, entity.BoardHeight * cellSize
}

// boardSize returns the pixel size of the playfield surface
func boardSize(cellSize int) (int, int) {
	return entity.BoardWidth * cellSize, entity.BoardHeight * cellSize
}

// previewOrigin returns the top-left pixel of the preview box
func previewOrigin(cellSize int) (int, int) {
	return (entity.BoardWidth + 1) * cellSize, cellSize
}

// previewOffset centers a shape inside the preview box, in cells
func previewOffset(shape entity.Shape) (int, int) {
	return (PreviewCells - shape.Width()) / 2, (PreviewCells - shape.Height()) / 2
}
