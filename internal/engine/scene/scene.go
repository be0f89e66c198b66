// Package scene hosts skinned meshes: it owns the joint hierarchy, animates
// and propagates it, then skins every mesh once per tick.
package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/skinview/internal/logger"
	"github.com/Faultbox/skinview/pkg/bounds"
	"github.com/Faultbox/skinview/pkg/math"
	"github.com/Faultbox/skinview/pkg/skin"
)

// Config contains scene configuration options.
type Config struct {
	Workers      int
	MinPartition int
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		Workers:      0, // GOMAXPROCS
		MinPartition: skin.DefaultMinPartition,
	}
}

// SkinnedMesh is a mesh bound to joints of the scene's hierarchy.
type SkinnedMesh struct {
	Name    string
	Binding *skin.Binding
	Mesh    *skin.Mesh
}

// MeshReport is the outcome of skinning one mesh in one frame.
// When Err is set the mesh was skipped and no positions are reported.
type MeshReport struct {
	Name      string
	Positions []math.Vec3
	Box       bounds.AABB
	HasBox    bool
	Err       error
}

// Frame collects the reports of one tick.
type Frame struct {
	Index  int
	Time   float64
	Meshes []MeshReport
}

// Scene manages a joint hierarchy and the meshes skinned to it.
type Scene struct {
	hier    *skin.Hierarchy
	pose    *Pose
	meshes  []SkinnedMesh
	drivers []Driver
	eval    *skin.Evaluator

	frame int
	time  float64
}

// New creates a scene around h.
func New(h *skin.Hierarchy, cfg Config) *Scene {
	return &Scene{
		hier: h,
		pose: NewPose(),
		eval: skin.NewEvaluator(
			skin.WithWorkers(cfg.Workers),
			skin.WithMinPartition(cfg.MinPartition),
			skin.WithLogger(logger.Log),
		),
	}
}

// Hierarchy returns the scene's joints.
func (s *Scene) Hierarchy() *skin.Hierarchy {
	return s.hier
}

// Pose returns the current world transform buffer.
func (s *Scene) Pose() *Pose {
	return s.pose
}

// AddMesh registers a skinned mesh. Its binding is not checked against the
// hierarchy; a dangling joint shows up as a missing transform when skinned.
func (s *Scene) AddMesh(m SkinnedMesh) {
	s.meshes = append(s.meshes, m)
}

// AddDriver registers an animation driver.
func (s *Scene) AddDriver(d Driver) {
	s.drivers = append(s.drivers, d)
}

// Animate is the first phase of a tick: run drivers, then propagate
// world transforms for the whole hierarchy.
func (s *Scene) Animate(t float64) {
	s.time = t
	for _, d := range s.drivers {
		d.Drive(s.hier, t)
	}
	s.pose.Propagate(s.hier)
}

// Evaluate is the second phase of a tick: skin every mesh against the
// current pose. A mesh that fails is reported and skipped.
func (s *Scene) Evaluate() Frame {
	f := Frame{Index: s.frame, Time: s.time, Meshes: make([]MeshReport, 0, len(s.meshes))}
	s.frame++

	for _, m := range s.meshes {
		report := MeshReport{Name: m.Name}
		res, err := s.eval.Skin(m.Binding, m.Mesh, s.pose)
		if err != nil {
			logger.Warn("skipping mesh this frame",
				zap.String("mesh", m.Name),
				zap.Int("frame", f.Index),
				zap.Error(err))
			report.Err = err
		} else {
			report.Positions = res.Positions
			report.Box = res.Box
			report.HasBox = res.HasBox
		}
		f.Meshes = append(f.Meshes, report)
	}
	return f
}

// Tick runs Animate then Evaluate.
func (s *Scene) Tick(t float64) Frame {
	s.Animate(t)
	return s.Evaluate()
}
