package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rect is an axis-aligned rectangle on the ground (XY) plane.
type Rect struct {
	Min rl.Vector2
	Max rl.Vector2
}

// NewRect creates a rect from its top-left corner and size.
func NewRect(x, y, width, height float32) Rect {
	return Rect{
		Min: rl.Vector2{X: x, Y: y},
		Max: rl.Vector2{X: x + width, Y: y + height},
	}
}

func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X <= o.Max.X && r.Max.X >= o.Min.X &&
		r.Min.Y <= o.Max.Y && r.Max.Y >= o.Min.Y
}

func (r Rect) Inflate(amount float32) Rect {
	return Rect{
		Min: rl.Vector2{X: r.Min.X - amount, Y: r.Min.Y - amount},
		Max: rl.Vector2{X: r.Max.X + amount, Y: r.Max.Y + amount},
	}
}

// Line2 is a 2D segment.
type Line2 struct {
	From rl.Vector2
	To   rl.Vector2
}

// ClosestPoint returns the point on the segment nearest p.
func (l Line2) ClosestPoint(p rl.Vector2) rl.Vector2 {
	d := rl.Vector2Subtract(l.To, l.From)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq < epsilon*epsilon {
		return l.From
	}
	rel := rl.Vector2Subtract(p, l.From)
	t := clampf((rel.X*d.X+rel.Y*d.Y)/lenSq, 0, 1)
	return rl.Vector2{X: l.From.X + d.X*t, Y: l.From.Y + d.Y*t}
}
