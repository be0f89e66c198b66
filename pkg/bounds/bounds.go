// Package bounds computes axis-aligned bounding boxes from point sets.
package bounds

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/Faultbox/skinview/pkg/math"
)

// ErrEmptyInput is returned when a box is requested over zero points.
var ErrEmptyInput = errors.New("bounds: no points to bound")

// AABB is an axis-aligned bounding box given by its min and max corners.
type AABB struct {
	Min math.Vec3 `yaml:"min"`
	Max math.Vec3 `yaml:"max"`
}

// FromCenterHalfExtents builds a box from its center and half-extents.
func FromCenterHalfExtents(center, half math.Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Center returns (Min+Max)/2.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// HalfExtents returns (Max-Min)/2.
func (b AABB) HalfExtents() math.Vec3 {
	return b.Max.Sub(b.Min).Scale(0.5)
}

// Size returns Max-Min.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Union returns the smallest box enclosing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// Reducer accumulates a running min/max over a stream of points.
// The zero value is not ready; use NewReducer.
type Reducer struct {
	min   math.Vec3
	max   math.Vec3
	count int
}

// NewReducer returns a Reducer seeded with the float32 extremes.
func NewReducer() Reducer {
	return Reducer{
		min: math.Splat(math32.MaxFloat32),
		max: math.Splat(-math32.MaxFloat32),
	}
}

// Add folds p into the running box.
func (r *Reducer) Add(p math.Vec3) {
	r.min = r.min.Min(p)
	r.max = r.max.Max(p)
	r.count++
}

// AddAll folds every point of ps into the running box.
func (r *Reducer) AddAll(ps []math.Vec3) {
	for _, p := range ps {
		r.Add(p)
	}
}

// Merge folds a partial reduction into r.
func (r *Reducer) Merge(other Reducer) {
	if other.count == 0 {
		return
	}
	r.min = r.min.Min(other.min)
	r.max = r.max.Max(other.max)
	r.count += other.count
}

// Count returns the number of points seen.
func (r *Reducer) Count() int {
	return r.count
}

// Result returns the box of every point seen so far,
// or ErrEmptyInput when nothing was added.
func (r *Reducer) Result() (AABB, error) {
	if r.count == 0 {
		return AABB{}, ErrEmptyInput
	}
	return AABB{Min: r.min, Max: r.max}, nil
}

// FromPoints returns the minimal box containing ps.
func FromPoints(ps []math.Vec3) (AABB, error) {
	r := NewReducer()
	r.AddAll(ps)
	return r.Result()
}
