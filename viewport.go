package edmpath

import "math"

// transformDecimals is the fixed rounding precision of the coordinate
// transform. Both directions round to it, which keeps ScreenToWorld
// and WorldToScreen exact mutual inverses and suppresses float drift
// across repeated zoom/pan cycles.
const transformDecimals = 6

// Absolute zoom limits, used only while no content is loaded. Once
// FitToBounds has run, the limits are derived from the fit scale.
const (
	absoluteMinZoom = 1e-6
	absoluteMaxZoom = 1e6
)

// Zoom limit window around the fit scale: two orders of magnitude in
// either direction.
const (
	minZoomFactor = 0.01
	maxZoomFactor = 100
)

// Step used by ZoomIn/ZoomOut.
const zoomStep = 1.25

// ViewportState is a snapshot of the viewport, including the derived
// zoom limits so callers (and tests) can assert against them.
type ViewportState struct {
	Zoom    float64
	OffsetX float64
	OffsetY float64
	MinZoom float64
	MaxZoom float64
	Width   float64
	Height  float64
}

// Viewport owns the bidirectional screen/world coordinate transform.
//
// World space is Y-up (machine convention); screen space is Y-down.
// The mapping is
//
//	screenX = worldX*zoom + offsetX
//	screenY = height - (worldY*zoom + offsetY)
//
// All state is mutated only through the viewport's own methods, from
// one logical thread of control (the host UI event loop). The
// transform methods are pure with respect to the stored state:
// repeated calls with unchanged state return identical results.
type Viewport struct {
	width, height    float64
	zoom             float64
	offsetX, offsetY float64
	minZoom, maxZoom float64
}

// NewViewport creates a viewport for a display area of the given pixel
// size, at zoom 1 with the world origin at the bottom-left corner.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{
		width:   width,
		height:  height,
		zoom:    1,
		minZoom: absoluteMinZoom,
		maxZoom: absoluteMaxZoom,
	}
}

// State returns a snapshot of the viewport.
func (v *Viewport) State() ViewportState {
	return ViewportState{
		Zoom:    v.zoom,
		OffsetX: v.offsetX,
		OffsetY: v.offsetY,
		MinZoom: v.minZoom,
		MaxZoom: v.maxZoom,
		Width:   v.width,
		Height:  v.height,
	}
}

// Resize updates the display area size. Zoom and offsets are kept;
// the host should refit if it wants the content recentred.
func (v *Viewport) Resize(width, height float64) {
	v.width = width
	v.height = height
}

// WorldToScreen maps a world point to screen pixels, flipping Y for
// the Y-down rendering surface.
func (v *Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	sx = RoundTo(wx*v.zoom+v.offsetX, transformDecimals)
	sy = RoundTo(v.height-(wy*v.zoom+v.offsetY), transformDecimals)
	return sx, sy
}

// ScreenToWorld maps screen pixels back to world coordinates. It is
// the exact inverse of WorldToScreen up to the fixed rounding
// precision, for every zoom within the clamped range.
func (v *Viewport) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	wx = RoundTo((sx-v.offsetX)/v.zoom, transformDecimals)
	wy = RoundTo((v.height-sy-v.offsetY)/v.zoom, transformDecimals)
	return wx, wy
}

// Matrix returns the world-to-screen transform as an affine matrix
// (including the Y flip) for render consumers that batch-transform
// geometry. It encodes the same mapping as WorldToScreen, without the
// rounding step.
func (v *Viewport) Matrix() Matrix {
	return Matrix{
		A: v.zoom, B: 0, C: v.offsetX,
		D: 0, E: -v.zoom, F: v.height - v.offsetY,
	}
}

// clampZoom clamps z into the current [minZoom, maxZoom] window.
func (v *Viewport) clampZoom(z float64) float64 {
	if z < v.minZoom {
		return v.minZoom
	}
	if z > v.maxZoom {
		return v.maxZoom
	}
	return z
}

// SetZoom sets the zoom level, clamped to the current limits, keeping
// the world point at the screen center fixed.
func (v *Viewport) SetZoom(z float64) {
	cur := v.zoom
	if cur == 0 {
		cur = 1
	}
	v.ZoomAtPoint(v.width/2, v.height/2, z/cur)
}

// ZoomIn zooms in one step toward the screen center.
func (v *Viewport) ZoomIn() {
	v.ZoomAtPoint(v.width/2, v.height/2, zoomStep)
}

// ZoomOut zooms out one step from the screen center.
func (v *Viewport) ZoomOut() {
	v.ZoomAtPoint(v.width/2, v.height/2, 1/zoomStep)
}

// ZoomAtPoint multiplies the zoom by factor while keeping the world
// coordinate under the given screen point fixed on screen (the "zoom
// toward cursor" contract). The world anchor is computed before the
// zoom change and the offsets are solved so it maps back to the same
// screen point afterwards.
func (v *Viewport) ZoomAtPoint(sx, sy, factor float64) {
	wx, wy := v.ScreenToWorld(sx, sy)
	newZoom := v.clampZoom(v.zoom * factor)
	if newZoom == v.zoom {
		return
	}
	v.zoom = newZoom
	v.offsetX = sx - wx*newZoom
	v.offsetY = v.height - sy - wy*newZoom
}

// Pan shifts the view by (dx, dy) screen pixels: positive dx moves
// content right, positive dy moves content down.
func (v *Viewport) Pan(dx, dy float64) {
	v.offsetX += dx
	v.offsetY -= dy
}

// FitToBounds frames the given content bounds in the display area with
// the given pixel padding on every side, recentres the content, and
// derives the zoom limits as a symmetric orders-of-magnitude window
// around the fit scale.
//
// With invalid (empty) bounds the view resets to zoom 1 with the world
// origin at the screen center and the absolute fallback limits.
func (v *Viewport) FitToBounds(b Bounds, padding float64) {
	if !b.IsValid() {
		v.zoom = 1
		v.minZoom = absoluteMinZoom
		v.maxZoom = absoluteMaxZoom
		v.offsetX = v.width / 2
		v.offsetY = v.height / 2
		Logger().Debug("fit to empty bounds; viewport reset")
		return
	}

	availW := math.Max(v.width-2*padding, 1)
	availH := math.Max(v.height-2*padding, 1)

	fitScale := 1.0
	switch {
	case b.Width() > 0 && b.Height() > 0:
		fitScale = math.Min(availW/b.Width(), availH/b.Height())
	case b.Width() > 0:
		fitScale = availW / b.Width()
	case b.Height() > 0:
		fitScale = availH / b.Height()
	}

	v.minZoom = fitScale * minZoomFactor
	v.maxZoom = fitScale * maxZoomFactor
	v.zoom = fitScale

	c := b.Center()
	v.offsetX = v.width/2 - c.X*v.zoom
	v.offsetY = v.height/2 - c.Y*v.zoom
}
