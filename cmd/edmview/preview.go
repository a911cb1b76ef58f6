package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/wirecut/edmpath"
)

// Arc flattening resolution for the preview, in radians.
const previewArcStep = 2 * math.Pi / 180

var (
	previewBackground = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	rapidColor        = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	cutColor          = color.RGBA{R: 20, G: 60, B: 160, A: 255}
	gridColor         = color.RGBA{R: 225, G: 228, B: 232, A: 255}
)

// writePreview renders the parsed path into a PNG file. The same
// viewport transform the interactive UI uses drives the mapping, so
// the preview matches what the host renderer would show after a
// fit-to-bounds.
func writePreview(path string, res edmpath.Result, cfg config) error {
	w, h := cfg.Preview.Width, cfg.Preview.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(previewBackground), image.Point{}, draw.Src)

	vp := edmpath.NewViewport(float64(w), float64(h))
	vp.FitToBounds(res.Bounds, cfg.Preview.Padding)

	drawGrid(img, vp, cfg)
	drawPath(img, vp, res.Path)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}

// drawGrid paints minor grid lines at the spacing the grid selector
// picks for the fitted zoom.
func drawGrid(img *image.RGBA, vp *edmpath.Viewport, cfg config) {
	st := vp.State()
	sp := edmpath.SelectGridSpacing(st.Zoom, cfg.Grid.TargetPx, cfg.Grid.LabelTargetPx)

	minX, maxY := vp.ScreenToWorld(0, 0)
	maxX, minY := vp.ScreenToWorld(st.Width, st.Height)

	r := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	for x := math.Ceil(minX/sp.Minor) * sp.Minor; x <= maxX; x += sp.Minor {
		sx, _ := vp.WorldToScreen(x, 0)
		strokeLine(r, sx, 0, sx, st.Height, 0.5)
	}
	for y := math.Ceil(minY/sp.Minor) * sp.Minor; y <= maxY; y += sp.Minor {
		_, sy := vp.WorldToScreen(0, y)
		strokeLine(r, 0, sy, st.Width, sy, 0.5)
	}
	r.Draw(img, img.Bounds(), image.NewUniform(gridColor), image.Point{})
}

// drawPath strokes every segment, rapids in gray and cuts (linear and
// arc) in the cut color. Arcs are flattened through the same span
// normalization the engine uses for bounds, so a preview can never
// disagree with the computed extents.
func drawPath(img *image.RGBA, vp *edmpath.Viewport, path []edmpath.Segment) {
	rapids := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	cuts := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())

	pos := edmpath.Point{}
	for _, seg := range path {
		switch s := seg.(type) {
		case edmpath.Linear:
			x0, y0 := vp.WorldToScreen(pos.X, pos.Y)
			x1, y1 := vp.WorldToScreen(s.X, s.Y)
			if s.Kind == edmpath.Rapid {
				strokeLine(rapids, x0, y0, x1, y1, 0.6)
			} else {
				strokeLine(cuts, x0, y0, x1, y1, 0.9)
			}
		case edmpath.Arc:
			pts := s.Flatten(previewArcStep)
			for i := 1; i < len(pts); i++ {
				x0, y0 := vp.WorldToScreen(pts[i-1].X, pts[i-1].Y)
				x1, y1 := vp.WorldToScreen(pts[i].X, pts[i].Y)
				strokeLine(cuts, x0, y0, x1, y1, 0.9)
			}
		}
		pos = seg.EndPoint()
	}

	rapids.Draw(img, img.Bounds(), image.NewUniform(rapidColor), image.Point{})
	cuts.Draw(img, img.Bounds(), image.NewUniform(cutColor), image.Point{})
}

// strokeLine adds a filled quad of the given half-width along the
// segment to the rasterizer. x/image/vector only fills, so strokes are
// built from quads.
func strokeLine(r *vector.Rasterizer, x0, y0, x1, y1, halfWidth float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit normal scaled to the half width.
	nx := -dy / length * halfWidth
	ny := dx / length * halfWidth

	r.MoveTo(float32(x0+nx), float32(y0+ny))
	r.LineTo(float32(x1+nx), float32(y1+ny))
	r.LineTo(float32(x1-nx), float32(y1-ny))
	r.LineTo(float32(x0-nx), float32(y0-ny))
	r.ClosePath()
}
