package skin

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingJointTransform is matched by every MissingJointTransformError.
	ErrMissingJointTransform = errors.New("skin: missing joint transform")

	// ErrMissingVertexAttribute reports an absent or mismatched vertex attribute array.
	ErrMissingVertexAttribute = errors.New("skin: missing vertex attribute")

	// ErrJointIndexOutOfRange reports a weighted joint index past the end of the binding.
	ErrJointIndexOutOfRange = errors.New("skin: joint index out of range")

	// ErrBindingMismatch reports a binding whose joint list and inverse bind poses disagree.
	ErrBindingMismatch = errors.New("skin: binding mismatch")

	// ErrInvalidParent reports a joint parent that does not exist yet.
	ErrInvalidParent = errors.New("skin: invalid parent joint")
)

// MissingJointTransformError identifies the binding slot whose joint had no
// current world transform.
type MissingJointTransformError struct {
	Slot  int
	Joint JointHandle
}

func (e *MissingJointTransformError) Error() string {
	return fmt.Sprintf("skin: joint %d (binding slot %d) has no world transform", e.Joint, e.Slot)
}

func (e *MissingJointTransformError) Unwrap() error {
	return ErrMissingJointTransform
}
