package skin

import (
	"fmt"

	"github.com/Faultbox/skinview/pkg/math"
)

// MaxInfluences is the number of joints that may affect one vertex.
const MaxInfluences = 4

// Mesh holds the per-vertex skinning attributes as parallel arrays.
// A nil array means the attribute is absent; a mesh with no vertices
// uses empty, non-nil arrays.
type Mesh struct {
	// Positions are in bind-pose space.
	Positions []math.Vec3
	// JointIndices index binding slots. Unused slots hold 0.
	JointIndices [][MaxInfluences]uint16
	// JointWeights are expected to sum to 1; they are used as given.
	JointWeights [][MaxInfluences]float32
}

// Len returns the vertex count.
func (m *Mesh) Len() int {
	return len(m.Positions)
}

// Validate checks that every attribute is present with matching length and
// that no weighted influence points past jointCount.
func (m *Mesh) Validate(jointCount int) error {
	switch {
	case m.Positions == nil:
		return fmt.Errorf("%w: positions", ErrMissingVertexAttribute)
	case m.JointIndices == nil:
		return fmt.Errorf("%w: joint indices", ErrMissingVertexAttribute)
	case m.JointWeights == nil:
		return fmt.Errorf("%w: joint weights", ErrMissingVertexAttribute)
	}

	n := len(m.Positions)
	if len(m.JointIndices) != n || len(m.JointWeights) != n {
		return fmt.Errorf("%w: length mismatch (positions %d, joint indices %d, joint weights %d)",
			ErrMissingVertexAttribute, n, len(m.JointIndices), len(m.JointWeights))
	}

	for v := range m.JointIndices {
		for k, idx := range m.JointIndices[v] {
			if m.JointWeights[v][k] != 0 && int(idx) >= jointCount {
				return fmt.Errorf("%w: vertex %d influence %d uses slot %d of %d",
					ErrJointIndexOutOfRange, v, k, idx, jointCount)
			}
		}
	}
	return nil
}
