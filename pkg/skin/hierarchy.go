package skin

import (
	"fmt"

	"github.com/Faultbox/skinview/pkg/math"
)

// JointHandle indexes a joint in a Hierarchy.
type JointHandle int32

// NoJoint is the parent of a root joint.
const NoJoint JointHandle = -1

// Transform is a joint's local translation, rotation and scale.
type Transform struct {
	Translation math.Vec3
	Rotation    math.Quat
	Scale       math.Vec3
}

// IdentityTransform returns a transform that changes nothing.
func IdentityTransform() Transform {
	return Transform{
		Rotation: math.QuatIdentity(),
		Scale:    math.Splat(1),
	}
}

// Matrix returns T * R * S.
func (t Transform) Matrix() math.Mat4 {
	return math.FromTRS(t.Translation, t.Rotation, t.Scale)
}

type joint struct {
	name   string
	parent JointHandle
	local  Transform
}

// Hierarchy is a flat joint table. A joint's parent is always added before
// it, so the table is in root-to-leaf order and can never contain a cycle.
type Hierarchy struct {
	joints []joint
	byName map[string]JointHandle
}

// NewHierarchy returns an empty hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{byName: make(map[string]JointHandle)}
}

// AddJoint appends a joint under parent (NoJoint for a root).
func (h *Hierarchy) AddJoint(name string, parent JointHandle, local Transform) (JointHandle, error) {
	if parent != NoJoint && !h.Valid(parent) {
		return NoJoint, fmt.Errorf("%w: %d for joint %q", ErrInvalidParent, parent, name)
	}
	if _, dup := h.byName[name]; dup && name != "" {
		return NoJoint, fmt.Errorf("skin: duplicate joint name %q", name)
	}

	handle := JointHandle(len(h.joints))
	h.joints = append(h.joints, joint{name: name, parent: parent, local: local})
	if name != "" {
		h.byName[name] = handle
	}
	return handle, nil
}

// Len returns the number of joints.
func (h *Hierarchy) Len() int {
	return len(h.joints)
}

// Valid reports whether j refers to a joint of h.
func (h *Hierarchy) Valid(j JointHandle) bool {
	return j >= 0 && int(j) < len(h.joints)
}

// Parent returns the parent of j, or NoJoint.
func (h *Hierarchy) Parent(j JointHandle) JointHandle {
	return h.joints[j].parent
}

// Name returns the name j was added with.
func (h *Hierarchy) Name(j JointHandle) string {
	return h.joints[j].name
}

// Lookup finds a joint by name.
func (h *Hierarchy) Lookup(name string) (JointHandle, bool) {
	j, ok := h.byName[name]
	return j, ok
}

// Local returns the current local transform of j.
func (h *Hierarchy) Local(j JointHandle) Transform {
	return h.joints[j].local
}

// SetLocal replaces the local transform of j.
// Only the animation phase of a tick may call it.
func (h *Hierarchy) SetLocal(j JointHandle, t Transform) {
	h.joints[j].local = t
}
