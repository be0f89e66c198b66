package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/skinview/internal/config"
	"github.com/Faultbox/skinview/internal/engine/debug"
	"github.com/Faultbox/skinview/internal/engine/scene"
	"github.com/Faultbox/skinview/pkg/math"
)

// wireframePadding keeps the debug box from overlapping the outermost vertices.
const wireframePadding = 0.01

// printer writes evaluated frames in the configured format.
type printer struct {
	w   io.Writer
	out config.OutputConfig
	enc *yaml.Encoder
}

func newPrinter(w io.Writer, out config.OutputConfig) *printer {
	p := &printer{w: w, out: out}
	if out.Format == config.FormatYAML {
		p.enc = yaml.NewEncoder(w)
		p.enc.SetIndent(2)
	}
	return p
}

// Print writes one frame.
func (p *printer) Print(f scene.Frame) error {
	doc := p.document(f)
	if p.enc != nil {
		return p.enc.Encode(doc)
	}
	return writeText(p.w, doc)
}

// Close flushes the YAML stream, if any.
func (p *printer) Close() error {
	if p.enc != nil {
		return p.enc.Close()
	}
	return nil
}

type vec [3]float32

func toVec(v math.Vec3) vec {
	return vec{v.X, v.Y, v.Z}
}

type cubeDoc struct {
	Translation vec `yaml:"translation,flow"`
	Scale       vec `yaml:"scale,flow"`
}

type boxDoc struct {
	Center      vec     `yaml:"center,flow"`
	HalfExtents vec     `yaml:"half_extents,flow"`
	Cube        cubeDoc `yaml:"cube"`
	Wireframe   []vec   `yaml:"wireframe,omitempty,flow"`
}

type meshDoc struct {
	Name     string    `yaml:"name"`
	Error    string    `yaml:"error,omitempty"`
	Vertices []vec     `yaml:"vertices,omitempty,flow"`
	Cubes    []cubeDoc `yaml:"vertex_cubes,omitempty"`
	Box      *boxDoc   `yaml:"aabb,omitempty"`
}

type frameDoc struct {
	Frame  int       `yaml:"frame"`
	Time   float64   `yaml:"time"`
	Meshes []meshDoc `yaml:"meshes"`
}

func toCube(c debug.CubeTransform) cubeDoc {
	return cubeDoc{Translation: toVec(c.Translation), Scale: toVec(c.Scale)}
}

func (p *printer) document(f scene.Frame) frameDoc {
	doc := frameDoc{Frame: f.Index, Time: f.Time, Meshes: make([]meshDoc, 0, len(f.Meshes))}
	for _, m := range f.Meshes {
		md := meshDoc{Name: m.Name}
		if m.Err != nil {
			md.Error = m.Err.Error()
			doc.Meshes = append(doc.Meshes, md)
			continue
		}

		if p.out.Vertices {
			md.Vertices = make([]vec, len(m.Positions))
			for i, v := range m.Positions {
				md.Vertices[i] = toVec(v)
			}
			if p.out.CubeSize > 0 {
				for _, c := range debug.VertexCubes(m.Positions, p.out.CubeSize) {
					md.Cubes = append(md.Cubes, toCube(c))
				}
			}
		}

		if m.HasBox {
			bd := &boxDoc{
				Center:      toVec(m.Box.Center()),
				HalfExtents: toVec(m.Box.HalfExtents()),
				Cube:        toCube(debug.AABBCube(m.Box)),
			}
			if p.out.Wireframe {
				for _, v := range debug.WireframeVertices(m.Box, wireframePadding) {
					bd.Wireframe = append(bd.Wireframe, toVec(v))
				}
			}
			md.Box = bd
		}
		doc.Meshes = append(doc.Meshes, md)
	}
	return doc
}

func writeText(w io.Writer, doc frameDoc) error {
	if _, err := fmt.Fprintf(w, "frame %d t=%.3f\n", doc.Frame, doc.Time); err != nil {
		return err
	}
	for _, m := range doc.Meshes {
		if m.Error != "" {
			if _, err := fmt.Fprintf(w, "  %s: skipped: %s\n", m.Name, m.Error); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "  %s:\n", m.Name); err != nil {
			return err
		}
		for i, v := range m.Vertices {
			if _, err := fmt.Fprintf(w, "    v%-3d %s\n", i, formatVec(v)); err != nil {
				return err
			}
		}
		if m.Box == nil {
			if _, err := fmt.Fprintln(w, "    aabb: none"); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "    aabb center=%s half=%s\n",
			formatVec(m.Box.Center), formatVec(m.Box.HalfExtents)); err != nil {
			return err
		}
		for i := 0; i+1 < len(m.Box.Wireframe); i += 2 {
			if _, err := fmt.Fprintf(w, "    edge %s -> %s\n",
				formatVec(m.Box.Wireframe[i]), formatVec(m.Box.Wireframe[i+1])); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatVec(v vec) string {
	return fmt.Sprintf("(%7.3f, %7.3f, %7.3f)", v[0], v[1], v[2])
}
