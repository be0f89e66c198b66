// Package debug provides debug visualization data for skinned meshes.
package debug

import (
	"github.com/Faultbox/skinview/pkg/bounds"
	"github.com/Faultbox/skinview/pkg/math"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// CubeTransform places a unit cube centred at the origin.
type CubeTransform struct {
	Translation math.Vec3 `yaml:"translation"`
	Scale       math.Vec3 `yaml:"scale"`
}

// Matrix returns the cube's model matrix.
func (c CubeTransform) Matrix() math.Mat4 {
	return math.TranslateVec3(c.Translation).Mul(math.Scale(c.Scale.X, c.Scale.Y, c.Scale.Z))
}

// AABBCube returns the transform that stretches a unit cube over box.
func AABBCube(box bounds.AABB) CubeTransform {
	return CubeTransform{
		Translation: box.Center(),
		Scale:       box.HalfExtents().Scale(2),
	}
}

// VertexCubes returns one small cube per position, each size units wide.
func VertexCubes(positions []math.Vec3, size float32) []CubeTransform {
	cubes := make([]CubeTransform, len(positions))
	for i, p := range positions {
		cubes[i] = CubeTransform{Translation: p, Scale: math.Splat(size)}
	}
	return cubes
}

// WireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints).
// padding expands the box by the given amount on all sides.
func WireframeVertices(box bounds.AABB, padding float32) []math.Vec3 {
	lo := box.Min.Sub(math.Splat(padding))
	hi := box.Max.Add(math.Splat(padding))

	corner := func(x, y, z bool) math.Vec3 {
		c := lo
		if x {
			c.X = hi.X
		}
		if y {
			c.Y = hi.Y
		}
		if z {
			c.Z = hi.Z
		}
		return c
	}

	return []math.Vec3{
		// Bottom face (4 edges)
		corner(false, false, false), corner(true, false, false),
		corner(true, false, false), corner(true, false, true),
		corner(true, false, true), corner(false, false, true),
		corner(false, false, true), corner(false, false, false),
		// Top face (4 edges)
		corner(false, true, false), corner(true, true, false),
		corner(true, true, false), corner(true, true, true),
		corner(true, true, true), corner(false, true, true),
		corner(false, true, true), corner(false, true, false),
		// Vertical edges (4 edges)
		corner(false, false, false), corner(false, true, false),
		corner(true, false, false), corner(true, true, false),
		corner(true, false, true), corner(true, true, true),
		corner(false, false, true), corner(false, true, true),
	}
}
