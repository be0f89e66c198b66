package scene

import (
	"github.com/Faultbox/skinview/pkg/math"
	"github.com/Faultbox/skinview/pkg/skin"
)

// Pose is the per-frame world transform buffer of a hierarchy.
// It is written by Propagate and read by skinning; the two never overlap.
type Pose struct {
	world []math.Mat4
	valid []bool
}

// NewPose returns a pose with no valid transforms.
func NewPose() *Pose {
	return &Pose{}
}

// Propagate recomputes every world transform from the local transforms in h.
// Joints are stored parents first, so one forward pass suffices.
func (p *Pose) Propagate(h *skin.Hierarchy) {
	n := h.Len()
	if cap(p.world) < n {
		p.world = make([]math.Mat4, n)
		p.valid = make([]bool, n)
	}
	p.world = p.world[:n]
	p.valid = p.valid[:n]

	for i := 0; i < n; i++ {
		j := skin.JointHandle(i)
		local := h.Local(j).Matrix()

		parent := h.Parent(j)
		if parent == skin.NoJoint {
			p.world[i] = local
			p.valid[i] = true
			continue
		}
		if !p.valid[parent] {
			p.valid[i] = false
			continue
		}
		p.world[i] = p.world[parent].Mul(local)
		p.valid[i] = true
	}
}

// Invalidate marks j as not computed for this frame. Descendants keep
// whatever Propagate produced.
func (p *Pose) Invalidate(j skin.JointHandle) {
	if int(j) >= 0 && int(j) < len(p.valid) {
		p.valid[j] = false
	}
}

// Reset marks every joint as not computed.
func (p *Pose) Reset() {
	for i := range p.valid {
		p.valid[i] = false
	}
}

// WorldTransform implements skin.TransformSource.
func (p *Pose) WorldTransform(j skin.JointHandle) (math.Mat4, bool) {
	if int(j) < 0 || int(j) >= len(p.valid) || !p.valid[j] {
		return math.Mat4{}, false
	}
	return p.world[j], true
}
