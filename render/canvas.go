package render

import (
	"image/color"
	"sort"

	"github.com/automoto/tuxrun/shared/gamemath"
)

type queued struct {
	layer int
	req   Request
}

// Canvas queues requests until Flush. Requests on the same layer are drawn
// in submission order.
type Canvas struct {
	queue       []queued
	translation gamemath.Vector
	stack       []gamemath.Vector
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// PushTranslation offsets every following request by -v (a camera position).
func (c *Canvas) PushTranslation(v gamemath.Vector) {
	c.stack = append(c.stack, c.translation)
	c.translation = c.translation.Sub(v)
}

// PopTranslation restores the previous offset.
func (c *Canvas) PopTranslation() {
	if len(c.stack) == 0 {
		return
	}
	c.translation = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Submit queues r on layer.
func (c *Canvas) Submit(layer int, r Request) {
	if c.translation.X != 0 || c.translation.Y != 0 {
		r = r.Translated(c.translation)
	}
	c.queue = append(c.queue, queued{layer: layer, req: r})
}

// Len returns the number of queued requests.
func (c *Canvas) Len() int { return len(c.queue) }

// Flush executes all queued requests in layer order and empties the queue.
func (c *Canvas) Flush(p Painter) {
	sort.SliceStable(c.queue, func(i, j int) bool {
		return c.queue[i].layer < c.queue[j].layer
	})
	for _, q := range c.queue {
		q.req.Execute(p)
	}
	c.queue = c.queue[:0]
}

func (c *Canvas) DrawFilledRect(r gamemath.Rect, clr color.RGBA, layer int) {
	c.Submit(layer, FilledRectRequest{Rect: r, Color: clr})
}

func (c *Canvas) DrawGradient(r gamemath.Rect, from, to color.RGBA, layer int) {
	c.Submit(layer, GradientRequest{Rect: r, From: from, To: to})
}

func (c *Canvas) DrawLine(from, to gamemath.Vector, clr color.RGBA, layer int) {
	c.Submit(layer, LineRequest{From: from, To: to, Color: clr, Width: 1})
}

func (c *Canvas) DrawTriangle(a, b, cc gamemath.Vector, clr color.RGBA, layer int) {
	c.Submit(layer, TriangleRequest{A: a, B: b, C: cc, Color: clr})
}

func (c *Canvas) DrawText(text string, pos gamemath.Vector, clr color.RGBA, layer int) {
	c.Submit(layer, TextRequest{Text: text, Pos: pos, Color: clr})
}
