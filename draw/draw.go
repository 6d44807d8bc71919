// Package draw renders algorithm inputs and outputs to PNG for debugging
// and demos. It is a consumer of the core's results and animation traces;
// nothing in here feeds back into the algorithms.
package draw

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/avhofmann/planar/dbg"
	"github.com/avhofmann/planar/geometry"
)

// Padding around the instance so hull edges don't hug the canvas border.
const padding = 40

type canvas struct {
	ctx *gg.Context
}

// newCanvas builds a context scaled and flipped so the instance's bounding
// box fills the image with the origin at the bottom left.
func newCanvas(points []geometry.Point, scale float64) *canvas {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	width := int(scale*(maxX-minX)) + padding*2
	height := int(scale*(maxY-minY)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	return &canvas{ctx: c}
}

func (c *canvas) drawPoints(points []geometry.Point, r, g, b float64) {
	c.ctx.SetRGB(r, g, b)
	for _, p := range points {
		c.ctx.DrawCircle(p.X, p.Y, 3)
		c.ctx.Fill()
	}
}

func (c *canvas) drawSegments(segments []geometry.LineSegment, r, g, b float64) {
	c.ctx.SetRGB(r, g, b)
	for _, s := range segments {
		c.ctx.MoveTo(s.Upper.X, s.Upper.Y)
		c.ctx.LineTo(s.Lower.X, s.Lower.Y)
		c.ctx.Stroke()
	}
}

func (c *canvas) drawBoundary(boundary *geometry.Polygon, r, g, b float64) {
	if boundary.Len() == 0 {
		return
	}
	c.ctx.SetRGB(r, g, b)
	first := boundary.At(0)
	c.ctx.MoveTo(first.X, first.Y)
	for i := 1; i < boundary.Len(); i++ {
		p := boundary.At(i)
		c.ctx.LineTo(p.X, p.Y)
	}
	c.ctx.ClosePath()
	c.ctx.Stroke()
}

func (c *canvas) label(p geometry.Point, name string) {
	// Text has to be drawn in native coordinates or it comes out mirrored.
	x, y := c.ctx.TransformPoint(p.X, p.Y)
	c.ctx.Push()
	c.ctx.Identity()
	c.ctx.SetRGB(1, 1, 1)
	c.ctx.DrawStringAnchored(name, x, y-8, 0.5, 0.5)
	c.ctx.Pop()
}

// Hull renders a point set and its hull boundary to a PNG file.
func Hull(points []geometry.Point, hull *geometry.Polygon, path string, scale float64) error {
	c := newCanvas(points, scale)
	c.drawPoints(points, 1, 1, 0)
	c.drawBoundary(hull, 0, 1, 0)
	return c.ctx.SavePNG(path)
}

// SegmentIntersections renders a segment set and its intersection report to
// a PNG file, labeling each segment with its debug name.
func SegmentIntersections(segments []geometry.LineSegment, result *geometry.Intersections, path string, scale float64) error {
	var endpoints []geometry.Point
	for _, s := range segments {
		endpoints = append(endpoints, s.Upper, s.Lower)
	}
	c := newCanvas(endpoints, scale)
	c.drawSegments(segments, 0.3, 0.5, 1)
	for _, s := range segments {
		mid := s.Upper.Add(s.Lower).Scale(0.5)
		// Plain names here: the colored variant is for terminals, ANSI
		// escapes don't render in a PNG. The memo keeps the names in sync
		// with the terminal output.
		c.label(mid, dbg.Name(s))
	}
	c.drawPoints(result.Points(), 1, 0, 0)
	return c.ctx.SavePNG(path)
}

// Show cats a PNG to the terminal (iTerm only).
func Show(path string) {
	imgcat.CatFile(path, os.Stdout)
}
