package charts

import (
	"bytes"
	"errors"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Default tile size for report pages.
const (
	tileWidth  = 7 * vg.Inch
	tileHeight = 5 * vg.Inch
)

// SavePNG writes one plot to a PNG file.
func SavePNG(p *plot.Plot, path string) error {
	return p.Save(tileWidth, tileHeight, path)
}

// PNGBytes renders one plot to an in-memory PNG.
func PNGBytes(p *plot.Plot) ([]byte, error) {
	writer, err := p.WriterTo(tileWidth, tileHeight, "png")
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	if _, err := writer.WriteTo(&buffer); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// SaveGridPNG lays the plots out on one PNG page, row by row. Rows may
// be ragged; nil cells are left blank.
func SaveGridPNG(plots [][]*plot.Plot, path string) error {
	if len(plots) == 0 {
		return errors.New("no plots to lay out")
	}

	rows := len(plots)
	cols := 0
	for _, row := range plots {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return errors.New("no plots to lay out")
	}

	// plot.Align wants a rectangular grid.
	grid := make([][]*plot.Plot, rows)
	for i, row := range plots {
		grid[i] = make([]*plot.Plot, cols)
		copy(grid[i], row)
	}

	canvas := vgimg.New(vg.Length(cols)*tileWidth, vg.Length(rows)*tileHeight)
	canvases := plot.Align(grid, draw.Tiles{
		Rows: rows,
		Cols: cols,
		PadX: vg.Points(8),
		PadY: vg.Points(8),
	}, draw.New(canvas))

	for i := range grid {
		for j := range grid[i] {
			if grid[i][j] != nil {
				grid[i][j].Draw(canvases[i][j])
			}
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err := png.WriteTo(file); err != nil {
		return err
	}

	return nil
}
