package tempo

// nodeIDCounter is a plain counter (no atomic; tempo is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a ready-made Animatable: a named transform with a dirty flag that
// a renderer can poll after Step. Any type implementing Animatable works
// with a Runner; Node exists so simple games do not have to write one.
type Node struct {
	ID   uint32
	Name string

	X, Y, Z  float64
	Rotation float64 // degrees
	ScaleX   float64
	ScaleY   float64
	Alpha    float64

	UserData any

	transformDirty bool
	disposed       bool
}

// NewNode creates a node at the origin with unit scale and full alpha.
func NewNode(name string) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		Alpha:          1,
		transformDirty: true,
	}
}

// Position returns the node's position.
func (n *Node) Position() Vec3 {
	return Vec3{n.X, n.Y, n.Z}
}

// SetPosition sets the node's position and marks it dirty.
func (n *Node) SetPosition(p Vec3) {
	n.X, n.Y, n.Z = p.X, p.Y, p.Z
	n.transformDirty = true
}

// Angle returns the node's rotation in degrees.
func (n *Node) Angle() float64 {
	return n.Rotation
}

// SetAngle sets the node's rotation in degrees and marks it dirty.
func (n *Node) SetAngle(deg float64) {
	n.Rotation = deg
	n.transformDirty = true
}

// Scale returns the node's horizontal scale. Actions treat scale as uniform.
func (n *Node) Scale() float64 {
	return n.ScaleX
}

// SetScale sets ScaleX and ScaleY and marks the node dirty.
func (n *Node) SetScale(s float64) {
	n.ScaleX = s
	n.ScaleY = s
	n.transformDirty = true
}

// MarkDirty marks the transform as changed. Useful after setting fields
// directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// Dirty reports whether the transform changed since the last ClearDirty.
func (n *Node) Dirty() bool {
	return n.transformDirty
}

// ClearDirty resets the dirty flag, typically after the node was drawn.
func (n *Node) ClearDirty() {
	n.transformDirty = false
}

// Dispose marks the node as disposed. Runners driving it drop all their
// actions on their next Step.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	n.ID = 0
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}
