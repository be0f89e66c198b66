// Package skin implements linear blend skinning: joint bindings, inverse bind
// poses, per-vertex attributes and the evaluator that turns the current joint
// world transforms into world-space vertex positions.
package skin

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/skinview/pkg/bounds"
	"github.com/Faultbox/skinview/pkg/math"
)

// TransformSource supplies the current world transform of a joint.
// ok is false when the transform has not been computed this frame.
type TransformSource interface {
	WorldTransform(j JointHandle) (m math.Mat4, ok bool)
}

// JointMatrices computes world(joint[i]) * inverseBindPose[i] for every slot
// of b, reusing dst when it has room. If any joint has no world transform it
// returns a *MissingJointTransformError and no matrices.
func JointMatrices(b *Binding, src TransformSource, dst []math.Mat4) ([]math.Mat4, error) {
	n := b.Len()
	if cap(dst) < n {
		dst = make([]math.Mat4, n)
	}
	dst = dst[:n]

	for i := 0; i < n; i++ {
		j := b.joints[i]
		world, ok := src.WorldTransform(j)
		if !ok {
			return nil, &MissingJointTransformError{Slot: i, Joint: j}
		}
		// Inverse bind pose first, then the joint's world transform.
		dst[i] = world.Mul(b.ibp.At(i))
	}
	return dst, nil
}

// BlendMatrix returns the weighted sum of the skin matrices selected by idx.
// Influences with zero weight are skipped, so their index is never read.
func BlendMatrix(mats []math.Mat4, idx [MaxInfluences]uint16, w [MaxInfluences]float32) math.Mat4 {
	var m math.Mat4
	for k := 0; k < MaxInfluences; k++ {
		if w[k] == 0 {
			continue
		}
		m = m.AddScaled(mats[idx[k]], w[k])
	}
	return m
}

// SkinPosition moves one bind-pose position into world space.
func SkinPosition(mats []math.Mat4, pos math.Vec3, idx [MaxInfluences]uint16, w [MaxInfluences]float32) math.Vec3 {
	return BlendMatrix(mats, idx, w).TransformAffine(pos)
}

// Result is the output of skinning one mesh for one frame.
type Result struct {
	// Positions are world-space, parallel to the mesh's bind-pose positions.
	Positions []math.Vec3
	// Box bounds Positions. It is only meaningful when HasBox is true.
	Box    bounds.AABB
	HasBox bool
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithWorkers caps the number of goroutines used per mesh.
func WithWorkers(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithMinPartition sets the smallest vertex range handed to one goroutine.
func WithMinPartition(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.minPartition = n
		}
	}
}

// WithLogger sets the logger used for per-mesh debug output.
func WithLogger(l *zap.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.log = l
		}
	}
}

// Evaluator skins meshes. It holds only configuration, so one Evaluator can
// serve many meshes from many goroutines.
type Evaluator struct {
	workers      int
	minPartition int
	log          *zap.Logger
}

// DefaultMinPartition is the default smallest per-goroutine vertex range.
const DefaultMinPartition = 1024

// NewEvaluator returns an Evaluator using GOMAXPROCS workers by default.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		workers:      runtime.GOMAXPROCS(0),
		minPartition: DefaultMinPartition,
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type span struct{ lo, hi int }

// partitions splits n vertices into contiguous spans.
func (e *Evaluator) partitions(n int) []span {
	parts := (n + e.minPartition - 1) / e.minPartition
	if parts > e.workers {
		parts = e.workers
	}
	if parts < 1 {
		parts = 1
	}

	spans := make([]span, 0, parts)
	size := (n + parts - 1) / parts
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		spans = append(spans, span{lo, hi})
	}
	return spans
}

// Skin validates m against b, builds the skin matrices from src and returns
// the world-space positions of every vertex together with their bounding box.
func (e *Evaluator) Skin(b *Binding, m *Mesh, src TransformSource) (*Result, error) {
	if err := m.Validate(b.Len()); err != nil {
		return nil, err
	}
	mats, err := JointMatrices(b, src, nil)
	if err != nil {
		return nil, err
	}

	n := m.Len()
	out := make([]math.Vec3, n)
	spans := e.partitions(n)
	partial := make([]bounds.Reducer, len(spans))

	var g errgroup.Group
	g.SetLimit(e.workers)
	for i, s := range spans {
		i, s := i, s
		g.Go(func() error {
			r := bounds.NewReducer()
			for v := s.lo; v < s.hi; v++ {
				p := SkinPosition(mats, m.Positions[v], m.JointIndices[v], m.JointWeights[v])
				out[v] = p
				r.Add(p)
			}
			partial[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("skin: evaluating vertices: %w", err)
	}

	total := bounds.NewReducer()
	for _, r := range partial {
		total.Merge(r)
	}

	res := &Result{Positions: out}
	if box, err := total.Result(); err == nil {
		res.Box, res.HasBox = box, true
	}

	e.log.Debug("skinned mesh",
		zap.Int("vertices", n),
		zap.Int("joints", b.Len()),
		zap.Int("partitions", len(spans)),
		zap.Bool("has_box", res.HasBox))

	return res, nil
}
