package scene

import (
	"fmt"

	"github.com/Faultbox/skinview/pkg/math"
	"github.com/Faultbox/skinview/pkg/skin"
)

// SimpleSkin names used by NewSimpleSkin.
const (
	SimpleSkinMesh   = "simple_skin"
	SimpleSkinRoot   = "joint0"
	SimpleSkinBender = "joint1"
)

// simpleSkinRows is the number of vertex pairs along the strip.
const simpleSkinRows = 5

// NewSimpleSkin builds a two-joint scene with a 10-vertex strip. The root
// joint sits at (0.5, 1, 0) and the second joint, its child, swings about Z.
// Both inverse bind poses undo that offset, so at rest the strip is unmoved.
func NewSimpleSkin(cfg Config) (*Scene, error) {
	h := skin.NewHierarchy()

	rootLocal := skin.IdentityTransform()
	rootLocal.Translation = math.Vec3{X: 0.5, Y: 1}
	root, err := h.AddJoint(SimpleSkinRoot, skin.NoJoint, rootLocal)
	if err != nil {
		return nil, err
	}
	bender, err := h.AddJoint(SimpleSkinBender, root, skin.IdentityTransform())
	if err != nil {
		return nil, err
	}

	ibp := skin.NewInverseBindPoses([]math.Mat4{
		math.Translate(-0.5, -1, 0),
		math.Translate(-0.5, -1, 0),
	})
	binding, err := skin.NewBinding([]skin.JointHandle{root, bender}, ibp)
	if err != nil {
		return nil, fmt.Errorf("binding simple skin: %w", err)
	}

	s := New(h, cfg)
	s.AddMesh(SkinnedMesh{Name: SimpleSkinMesh, Binding: binding, Mesh: simpleSkinStrip()})
	s.AddDriver(OscillateZ{Joint: bender, Amplitude: DefaultAmplitude})
	return s, nil
}

// simpleSkinStrip returns vertex pairs at x=0 and x=1 from y=0 to y=2.
// Weights move from the root joint at the bottom to the bender at the top.
func simpleSkinStrip() *skin.Mesh {
	n := simpleSkinRows * 2
	m := &skin.Mesh{
		Positions:    make([]math.Vec3, 0, n),
		JointIndices: make([][skin.MaxInfluences]uint16, 0, n),
		JointWeights: make([][skin.MaxInfluences]float32, 0, n),
	}
	for r := 0; r < simpleSkinRows; r++ {
		t := float32(r) / float32(simpleSkinRows-1)
		idx := [skin.MaxInfluences]uint16{0, 1, 0, 0}
		if r == 0 {
			idx[1] = 0
		}
		for _, x := range []float32{0, 1} {
			m.Positions = append(m.Positions, math.Vec3{X: x, Y: 2 * t})
			m.JointIndices = append(m.JointIndices, idx)
			m.JointWeights = append(m.JointWeights, [skin.MaxInfluences]float32{1 - t, t, 0, 0})
		}
	}
	return m
}
