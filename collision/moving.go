package collision

import "github.com/automoto/tuxrun/shared/gamemath"

// MovingObject is the shared state of every sector object. Embedders get
// no-op collision callbacks and override what they need.
type MovingObject struct {
	bbox     gamemath.Rect
	movement gamemath.Vector
	group    Group
	removed  bool
}

func NewMovingObject(bbox gamemath.Rect, group Group) MovingObject {
	return MovingObject{bbox: bbox, group: group}
}

func (m *MovingObject) BBox() gamemath.Rect { return m.bbox }
func (m *MovingObject) Pos() gamemath.Vector { return m.bbox.Pos() }
func (m *MovingObject) Movement() gamemath.Vector { return m.movement }

func (m *MovingObject) SetMovement(v gamemath.Vector) { m.movement = v }

func (m *MovingObject) SetPos(p gamemath.Vector) {
	m.bbox = m.bbox.WithPos(p)
}

func (m *MovingObject) SetSize(w, h float64) {
	m.bbox = m.bbox.WithSize(w, h)
}

func (m *MovingObject) SetWidth(w float64) {
	m.bbox = m.bbox.WithSize(w, m.bbox.Height())
}

func (m *MovingObject) SetBBox(r gamemath.Rect) { m.bbox = r }

func (m *MovingObject) Group() Group { return m.group }
func (m *MovingObject) SetGroup(g Group) { m.group = g }

func (m *MovingObject) Remove() { m.removed = true }
func (m *MovingObject) Removed() bool { return m.removed }

func (m *MovingObject) CollisionSolid(Hit) {}
func (m *MovingObject) CollisionTile(TileAttr) {}
func (m *MovingObject) Collision(Object, Hit) Response { return Continue }
