package skin

import (
	"fmt"

	"github.com/Faultbox/skinview/pkg/math"
)

// InverseBindPoses is an immutable table of per-joint inverse bind matrices.
type InverseBindPoses struct {
	mats []math.Mat4
}

// NewInverseBindPoses copies mats into a new table.
func NewInverseBindPoses(mats []math.Mat4) *InverseBindPoses {
	return &InverseBindPoses{mats: append([]math.Mat4(nil), mats...)}
}

// InverseBindPosesFromWorld inverts the bind-time world matrix of every joint.
func InverseBindPosesFromWorld(bindWorld []math.Mat4) (*InverseBindPoses, error) {
	mats := make([]math.Mat4, len(bindWorld))
	for i, m := range bindWorld {
		inv, ok := m.Inverse()
		if !ok {
			return nil, fmt.Errorf("skin: bind matrix %d is singular", i)
		}
		mats[i] = inv
	}
	return &InverseBindPoses{mats: mats}, nil
}

// Len returns the number of matrices.
func (p *InverseBindPoses) Len() int {
	return len(p.mats)
}

// At returns matrix i.
func (p *InverseBindPoses) At(i int) math.Mat4 {
	return p.mats[i]
}

// Binding ties a mesh to an ordered joint list. Slot i of the joint list
// and of the inverse bind pose table refer to the same joint.
type Binding struct {
	joints []JointHandle
	ibp    *InverseBindPoses
}

// NewBinding validates and returns a binding.
func NewBinding(joints []JointHandle, ibp *InverseBindPoses) (*Binding, error) {
	switch {
	case ibp == nil:
		return nil, fmt.Errorf("%w: nil inverse bind poses", ErrBindingMismatch)
	case len(joints) == 0:
		return nil, fmt.Errorf("%w: no joints", ErrBindingMismatch)
	case len(joints) != ibp.Len():
		return nil, fmt.Errorf("%w: %d joints, %d inverse bind poses", ErrBindingMismatch, len(joints), ibp.Len())
	}
	return &Binding{joints: append([]JointHandle(nil), joints...), ibp: ibp}, nil
}

// Len returns the number of binding slots.
func (b *Binding) Len() int {
	return len(b.joints)
}

// Joint returns the joint in slot i.
func (b *Binding) Joint(i int) JointHandle {
	return b.joints[i]
}

// InverseBindPoses returns the shared table.
func (b *Binding) InverseBindPoses() *InverseBindPoses {
	return b.ibp
}
