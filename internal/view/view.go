// Package view projects coordinates between the source recording's
// pixel space, the output canvas, and the camera viewport. The source
// frame is contain-fitted inside the output canvas (letterbox or
// pillarbox bars plus an optional padding margin), mirroring what
// ffmpeg's force_original_aspect_ratio=decrease + pad does for bitmaps.
package view

import (
	"math"

	"autocam/internal/geom"
)

// ProjectedBox records where and how large the source content is drawn
// inside the output canvas. Scale is source pixels per output pixel.
type ProjectedBox struct {
	Rect  geom.Rect
	Scale float64
}

// Mapper converts points and rectangles between source space, output
// space, and a caller-supplied viewport. It is immutable once built.
type Mapper struct {
	Input   geom.Size
	Output  geom.Size
	Padding float64

	box ProjectedBox
}

// New builds a Mapper for the given spaces. Padding is the fraction of
// each output dimension reserved as margin, in [0, 0.5). Degenerate
// sizes yield an identity mapper that projects everything to zero.
func New(input, output geom.Size, padding float64) *Mapper {
	m := &Mapper{Input: input, Output: output, Padding: padding}

	if input.IsZero() || output.IsZero() {
		m.box = ProjectedBox{Scale: 1}
		return m
	}

	usableW := output.Width * (1 - 2*padding)
	usableH := output.Height * (1 - 2*padding)

	// The larger ratio wins: content shrinks just enough that both
	// padded dimensions fit, preserving aspect ratio.
	scale := math.Max(input.Width/usableW, input.Height/usableH)

	projW := input.Width / scale
	projH := input.Height / scale

	m.box = ProjectedBox{
		Rect: geom.Rect{
			X:      (output.Width - projW) / 2,
			Y:      (output.Height - projH) / 2,
			Width:  projW,
			Height: projH,
		},
		Scale: scale,
	}
	return m
}

// ContentRect returns the box the source content occupies in output
// space.
func (m *Mapper) ContentRect() geom.Rect {
	return m.box.Rect
}

// Box returns the full projected-box computation.
func (m *Mapper) Box() ProjectedBox {
	return m.box
}

// InputToOutputPoint projects a source-space point into output space.
func (m *Mapper) InputToOutputPoint(p geom.Point) geom.Point {
	if m.Input.IsZero() {
		return geom.Point{}
	}
	nx := p.X / m.Input.Width
	ny := p.Y / m.Input.Height
	return geom.Point{
		X: m.box.Rect.X + nx*m.box.Rect.Width,
		Y: m.box.Rect.Y + ny*m.box.Rect.Height,
	}
}

// InputToOutputRect projects a source-space rectangle into output space.
func (m *Mapper) InputToOutputRect(r geom.Rect) geom.Rect {
	a := m.InputToOutputPoint(geom.Point{X: r.X, Y: r.Y})
	b := m.InputToOutputPoint(geom.Point{X: r.X + r.Width, Y: r.Y + r.Height})
	return geom.RectFromCorners(a, b)
}

// outputToInputPoint back-projects an output-space point into source
// space.
func (m *Mapper) outputToInputPoint(p geom.Point) geom.Point {
	return geom.Point{
		X: (p.X - m.box.Rect.X) * m.box.Scale,
		Y: (p.Y - m.box.Rect.Y) * m.box.Scale,
	}
}

// RenderRects resolves, for one frame, which portion of the source
// bitmap is visible through the viewport and where it lands on screen.
// SourceRect is in source pixels; DestRect is in screen pixels relative
// to the viewport origin. ok is false when the viewport sees only
// padding, in which case the caller draws no frame.
func (m *Mapper) RenderRects(viewport geom.Rect) (sourceRect, destRect geom.Rect, ok bool) {
	if viewport.IsEmpty() {
		return geom.Rect{}, geom.Rect{}, false
	}

	visible, ok := viewport.Intersect(m.box.Rect)
	if !ok {
		return geom.Rect{}, geom.Rect{}, false
	}

	a := m.outputToInputPoint(geom.Point{X: visible.X, Y: visible.Y})
	b := m.outputToInputPoint(geom.Point{X: visible.X + visible.Width, Y: visible.Y + visible.Height})
	sourceRect = geom.RectFromCorners(a, b)

	zoom := m.ZoomScale(viewport)
	destRect = geom.Rect{
		X:      (visible.X - viewport.X) * zoom,
		Y:      (visible.Y - viewport.Y) * zoom,
		Width:  visible.Width * zoom,
		Height: visible.Height * zoom,
	}
	return sourceRect, destRect, true
}

// ProjectToScreen maps a source-space point to screen coordinates
// relative to the viewport, for cursor and click-effect painters.
func (m *Mapper) ProjectToScreen(p geom.Point, viewport geom.Rect) geom.Point {
	out := m.InputToOutputPoint(p)
	zoom := m.ZoomScale(viewport)
	return geom.Point{
		X: (out.X - viewport.X) * zoom,
		Y: (out.Y - viewport.Y) * zoom,
	}
}

// ZoomScale returns the magnification the viewport applies.
func (m *Mapper) ZoomScale(viewport geom.Rect) float64 {
	if viewport.Width <= 0 {
		return 1
	}
	return m.Output.Width / viewport.Width
}
