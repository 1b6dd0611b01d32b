package sector

import (
	"math"

	"github.com/automoto/tuxrun/collision"
	"github.com/automoto/tuxrun/components"
	"github.com/automoto/tuxrun/config"
	"github.com/automoto/tuxrun/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// eps keeps boxes that only share an edge from counting as overlapping.
const eps = 1e-6

func overlaps(a, b gamemath.Rect) bool {
	return a.Left() < b.Right()-eps && a.Right() > b.Left()+eps &&
		a.Top() < b.Bottom()-eps && a.Bottom() > b.Top()+eps
}

func union(a, b gamemath.Rect) gamemath.Rect {
	left := math.Min(a.Left(), b.Left())
	top := math.Min(a.Top(), b.Top())
	right := math.Max(a.Right(), b.Right())
	bottom := math.Max(a.Bottom(), b.Bottom())
	return gamemath.NewRect(left, top, right-left, bottom-top)
}

// candidates returns the entries whose resolv objects share a cell with r.
func (s *Sector) candidates(r gamemath.Rect) []*donburi.Entry {
	s.probe.X, s.probe.Y, s.probe.W, s.probe.H = r.X, r.Y, r.W, r.H
	s.probe.Update()
	check := s.probe.Check(0, 0)
	if check == nil {
		return nil
	}
	out := make([]*donburi.Entry, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if e, ok := obj.Data.(*donburi.Entry); ok && e.Valid() {
			out = append(out, e)
		}
	}
	return out
}

// obstacle is a blocking box seen by one mover.
type obstacle struct {
	rect  gamemath.Rect
	attr  collision.TileAttr
	slope gamemath.SlopeKind
}

func (o obstacle) solid() bool { return o.attr.Has(collision.AttrSolid) }
func (o obstacle) platform() bool { return o.attr.Has(collision.AttrUnisolid) }
func (o obstacle) ramp() bool { return o.attr.Has(collision.AttrSlope) }

// surface is the highest ramp surface point under the horizontal extent of r.
func (o obstacle) surface(r gamemath.Rect) float64 {
	return math.Min(
		gamemath.SlopeSurfaceY(o.rect, o.slope, r.Left()),
		gamemath.SlopeSurfaceY(o.rect, o.slope, r.Right()))
}

// blocks reports whether r cuts into the obstacle. A ramp only counts
// below its surface.
func (o obstacle) blocks(r gamemath.Rect, ignoreUnisolid bool) bool {
	if !overlaps(r, o.rect) {
		return false
	}
	switch {
	case o.ramp():
		return r.Bottom() > o.surface(r)+eps
	case o.platform():
		return !ignoreUnisolid
	}
	return o.solid()
}

// obstacles collects tiles and moving statics near r. self is skipped.
func (s *Sector) obstacles(r gamemath.Rect, self *donburi.Entry) []obstacle {
	var out []obstacle
	for _, e := range s.candidates(r) {
		if e == self {
			continue
		}
		if e.HasComponent(components.Tile) {
			t := components.Tile.Get(e)
			out = append(out, obstacle{rect: t.Rect, attr: t.Attr, slope: t.Slope})
			continue
		}
		if !e.HasComponent(components.Actor) {
			continue
		}
		o := components.Actor.Get(e).Object
		if o.Removed() || o.Group() != collision.GroupMovingStatic {
			continue
		}
		out = append(out, obstacle{rect: o.BBox(), attr: collision.AttrSolid})
	}
	return out
}

// IsFreeOfStatics reports whether r overlaps no solid tile and no moving
// static object other than ignore.
func (s *Sector) IsFreeOfStatics(r gamemath.Rect, ignore collision.Object, ignoreUnisolid bool) bool {
	var self *donburi.Entry
	if ignore != nil {
		self = s.index[ignore]
	}
	for _, o := range s.obstacles(r, self) {
		if o.blocks(r, ignoreUnisolid) {
			return false
		}
	}
	return true
}

// IsFreeOfMovingStatics reports whether r overlaps no solid tile and no
// moving static object.
func (s *Sector) IsFreeOfMovingStatics(r gamemath.Rect) bool {
	return s.IsFreeOfStatics(r, nil, true)
}

// moveObject sweeps o along its movement, first horizontally and then
// vertically, and reports what it touched.
func (s *Sector) moveObject(e *donburi.Entry, o components.SectorObject) {
	box := o.BBox()
	mov := o.Movement()

	group := o.Group()
	if group == collision.GroupDisabled || group == collision.GroupTouchable {
		o.SetPos(box.Pos().Add(mov))
		s.sync(e, o)
		return
	}

	dest := box.Moved(mov)
	obs := s.obstacles(union(box, dest).Grown(config.Physics.ContactDistance), e)

	var hit collision.Hit
	dest = sweepX(box, mov.X, obs, &hit)
	dest = sweepY(box, dest, mov, obs, &hit)

	for _, ob := range obs {
		if !ob.solid() || !overlaps(dest.Grown(-1), ob.rect) {
			continue
		}
		crush := collision.Classify(dest, ob.rect)
		crush.Crush = true
		hit.Left = hit.Left || crush.Left
		hit.Right = hit.Right || crush.Right
		hit.Top = hit.Top || crush.Top
		hit.Bottom = hit.Bottom || crush.Bottom
		hit.Crush = true
	}

	o.SetPos(dest.Pos())
	s.sync(e, o)

	o.CollisionTile(tileAttrs(dest, obs))
	if hit.Any() || hit.Crush {
		o.CollisionSolid(hit)
	}
}

func sweepX(box gamemath.Rect, dx float64, obs []obstacle, hit *collision.Hit) gamemath.Rect {
	dest := box.Moved(gamemath.Vector{X: dx})
	if dx == 0 {
		return dest
	}
	for _, ob := range obs {
		if !ob.solid() || overlaps(box, ob.rect) || !overlaps(dest, ob.rect) {
			continue
		}
		if dx > 0 {
			dest = dest.WithPos(gamemath.Vector{X: ob.rect.Left() - box.Width(), Y: dest.Y})
			hit.Right = true
		} else {
			dest = dest.WithPos(gamemath.Vector{X: ob.rect.Right(), Y: dest.Y})
			hit.Left = true
		}
	}
	return dest
}

func sweepY(box, from gamemath.Rect, mov gamemath.Vector, obs []obstacle, hit *collision.Hit) gamemath.Rect {
	start := from.WithPos(gamemath.Vector{X: from.X, Y: box.Y})
	dest := from.Moved(gamemath.Vector{Y: mov.Y})

	for _, ob := range obs {
		blocking := ob.solid() || (ob.ramp() && mov.Y < 0)
		if ob.platform() && mov.Y > 0 && box.Bottom() <= ob.rect.Top()+eps {
			blocking = true
		}
		if !blocking || overlaps(start, ob.rect) || !overlaps(dest, ob.rect) {
			continue
		}
		if mov.Y > 0 {
			dest = dest.WithPos(gamemath.Vector{X: dest.X, Y: ob.rect.Top() - dest.Height()})
			hit.Bottom = true
			hit.SlopeNormal = gamemath.Vector{X: 0, Y: -1}
		} else if mov.Y < 0 {
			dest = dest.WithPos(gamemath.Vector{X: dest.X, Y: ob.rect.Bottom()})
			hit.Top = true
		}
	}

	if mov.Y < 0 {
		return dest
	}

	// ramps: stand on the highest surface point under the box
	snap := math.Abs(mov.X) + 1
	best, found := 0.0, false
	var bestRamp obstacle
	for _, ob := range obs {
		if !ob.ramp() {
			continue
		}
		if dest.Right() <= ob.rect.Left()+eps || dest.Left() >= ob.rect.Right()-eps {
			continue
		}
		surface := ob.surface(dest)
		if box.Bottom() > surface+snap || dest.Bottom() < surface-snap {
			continue
		}
		if !found || surface < best {
			best, bestRamp, found = surface, ob, true
		}
	}
	if found && (!hit.Bottom || best < dest.Bottom()) {
		dest = dest.WithPos(gamemath.Vector{X: dest.X, Y: best - dest.Height()})
		hit.Bottom = true
		hit.SlopeNormal = gamemath.Vector{X: 0, Y: -1}
		if best > bestRamp.rect.Top()+eps {
			hit.SlopeNormal = gamemath.SlopeNormal(bestRamp.slope)
		}
	}
	return dest
}

// tileAttrs gathers the attributes of tiles around r. Water only counts
// when r is inside it.
func tileAttrs(r gamemath.Rect, obs []obstacle) collision.TileAttr {
	var attrs collision.TileAttr
	touch := r.Grown(config.Physics.ContactDistance)
	for _, ob := range obs {
		if !overlaps(touch, ob.rect) {
			continue
		}
		attrs |= ob.attr & (collision.AttrIce | collision.AttrHurts)
		if ob.attr.Has(collision.AttrWater) && overlaps(r, ob.rect) {
			attrs |= collision.AttrWater
		}
	}
	return attrs
}

// sync copies an object's box into its resolv mirror.
func (s *Sector) sync(e *donburi.Entry, o collision.Object) {
	obj := components.Object.Get(e).Object
	syncObject(obj, o.BBox())
}

func syncObject(obj *resolv.Object, r gamemath.Rect) {
	obj.X, obj.Y, obj.W, obj.H = r.X, r.Y, r.W, r.H
	obj.Update()
}

// interacts reports whether objects of groups a and b collide with each
// other.
func interacts(a, b collision.Group) bool {
	switch {
	case a == collision.GroupDisabled || b == collision.GroupDisabled:
		return false
	case a == collision.GroupMovingOnlyStatic || b == collision.GroupMovingOnlyStatic:
		return false
	case a == collision.GroupTouchable && b == collision.GroupTouchable:
		return false
	case a == collision.GroupMovingStatic && b == collision.GroupMovingStatic:
		return false
	}
	return true
}

// handleObjectCollisions lets every overlapping pair of objects react to
// each other, each seeing the hit from its own side.
func (s *Sector) handleObjectCollisions() {
	for _, ea := range s.actors {
		a := components.Actor.Get(ea)
		if a.Object.Removed() {
			continue
		}
		near := s.candidates(a.Object.BBox().Grown(config.Physics.ContactDistance))
		others := near[:0]
		for _, eb := range near {
			if eb.HasComponent(components.Actor) && components.Actor.Get(eb).Order > a.Order {
				others = append(others, eb)
			}
		}
		sortByOrder(others)

		for _, eb := range others {
			if a.Object.Removed() {
				break
			}
			s.collidePair(ea, eb)
		}
	}
}

func (s *Sector) collidePair(ea, eb *donburi.Entry) {
	a := components.Actor.Get(ea).Object
	b := components.Actor.Get(eb).Object
	if b.Removed() || !interacts(a.Group(), b.Group()) {
		return
	}

	ra, rb := a.BBox(), b.BBox()
	if a.Group() == collision.GroupMovingStatic || b.Group() == collision.GroupMovingStatic {
		rb = rb.Grown(config.Physics.ContactDistance)
	}
	if !overlaps(ra, rb) {
		return
	}

	hit := collision.Classify(ra, rb)
	respA := a.Collision(b, hit)
	respB := b.Collision(a, hit.Mirrored())

	if respA == collision.AbortMove {
		s.undoMove(ea)
	}
	if respB == collision.AbortMove {
		s.undoMove(eb)
	}
	if respA == collision.Continue && respB == collision.Continue &&
		a.Group() == collision.GroupMoving && b.Group() == collision.GroupMoving {
		s.separate(ea, eb, hit)
	}
}

func (s *Sector) undoMove(e *donburi.Entry) {
	actor := components.Actor.Get(e)
	actor.Object.SetPos(actor.Prev)
	s.sync(e, actor.Object)
}

// separate pushes two moving objects apart, each by half the overlap.
func (s *Sector) separate(ea, eb *donburi.Entry, hit collision.Hit) {
	a := components.Actor.Get(ea).Object
	b := components.Actor.Get(eb).Object
	ra, rb := a.BBox(), b.BBox()

	var push gamemath.Vector
	switch {
	case hit.Left || hit.Right:
		overlap := math.Min(ra.Right(), rb.Right()) - math.Max(ra.Left(), rb.Left())
		push.X = overlap / 2
		if hit.Left {
			push.X = -push.X
		}
	case hit.Top || hit.Bottom:
		overlap := math.Min(ra.Bottom(), rb.Bottom()) - math.Max(ra.Top(), rb.Top())
		push.Y = overlap / 2
		if hit.Top {
			push.Y = -push.Y
		}
	}
	if push.X == 0 && push.Y == 0 {
		return
	}

	a.SetPos(ra.Pos().Sub(push))
	b.SetPos(rb.Pos().Add(push))
	s.sync(ea, a)
	s.sync(eb, b)
}
