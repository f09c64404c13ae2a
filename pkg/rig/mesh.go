package rig

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/daexport/pkg/collada"
)

// Source names recognized inside a <mesh>. Other sources are ignored.
const (
	SourcePosition = "position"
	SourceNormal   = "normal"
	SourceUV       = "map1"
)

// Polygon-list layout. Each triangle corner is stored as three consecutive
// indices in the order position, normal, uv. This is the convention of the
// exporters this tool targets; the <input> offsets in the document are not
// consulted.
const (
	CornerStride   = 3
	FaceStride     = 3 * CornerStride
	offsetPosition = 0
	offsetNormal   = 1
	offsetUV       = 2
)

// Corner indexes the three vertex arrays for one triangle corner.
type Corner struct {
	Position int
	UV       int
	Normal   int
}

// Face is a triangle.
type Face [3]Corner

// Mesh is one geometry entry of the document.
type Mesh struct {
	Name      string // geometry id
	Positions []mgl64.Vec3
	Normals   []mgl64.Vec3
	UVs       []mgl64.Vec2
	Faces     []Face

	// Source tokens of the vertex arrays, one row per element.
	PositionText Text
	NormalText   Text
	UVText       Text
}

// ExtractMeshes extracts every geometry in library_geometries, in document order.
func ExtractMeshes(doc *collada.Document) ([]*Mesh, error) {
	geometries := doc.Library("library_geometries", "geometry")
	meshes := make([]*Mesh, 0, len(geometries))
	for _, g := range geometries {
		m, err := ExtractMesh(g)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

// ExtractMesh builds a Mesh from a <geometry> element.
func ExtractMesh(geometry *collada.Node) (*Mesh, error) {
	name := geometry.ID()
	body := geometry.Child("mesh")
	if body == nil {
		return nil, fmt.Errorf("%w: geometry %q has no <mesh>", ErrMissingMeshData, name)
	}

	m := &Mesh{Name: name}
	hasPositions := false

	for _, src := range body.Children("source") {
		switch src.Name() {
		case SourcePosition:
			rows, text, err := readRows(src.Child("float_array"), 3)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: positions: %w", name, err)
			}
			m.Positions, m.PositionText = toVec3(rows), text
			hasPositions = true
		case SourceNormal:
			rows, text, err := readRows(src.Child("float_array"), 3)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: normals: %w", name, err)
			}
			m.Normals, m.NormalText = toVec3(rows), text
		case SourceUV:
			rows, text, err := readRows(src.Child("float_array"), 2)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: uvs: %w", name, err)
			}
			m.UVs, m.UVText = toVec2(rows), text
		}
	}

	if !hasPositions {
		return nil, fmt.Errorf("%w: mesh %q has no %q source", ErrMissingMeshData, name, SourcePosition)
	}

	prims := body.Children("polylist")
	if len(prims) == 0 {
		prims = body.Children("triangles")
	}
	if len(prims) == 0 {
		return nil, fmt.Errorf("%w: mesh %q has no <polylist> or <triangles>", ErrMissingMeshData, name)
	}

	for _, p := range prims {
		faces, err := readFaces(p)
		if err != nil {
			return nil, fmt.Errorf("mesh %q: %w", name, err)
		}
		m.Faces = append(m.Faces, faces...)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks that every face index addresses its array.
func (m *Mesh) Validate() error {
	for f, face := range m.Faces {
		for c, corner := range face {
			if corner.Position < 0 || corner.Position >= len(m.Positions) {
				return fmt.Errorf("%w: mesh %q face %d corner %d: position %d of %d", ErrIndexOutOfRange, m.Name, f, c, corner.Position, len(m.Positions))
			}
			if corner.Normal < 0 || corner.Normal >= len(m.Normals) {
				return fmt.Errorf("%w: mesh %q face %d corner %d: normal %d of %d", ErrIndexOutOfRange, m.Name, f, c, corner.Normal, len(m.Normals))
			}
			if corner.UV < 0 || corner.UV >= len(m.UVs) {
				return fmt.Errorf("%w: mesh %q face %d corner %d: uv %d of %d", ErrIndexOutOfRange, m.Name, f, c, corner.UV, len(m.UVs))
			}
		}
	}
	return nil
}

func readFaces(prim *collada.Node) ([]Face, error) {
	if prim.Tag() == "polylist" {
		counts, err := prim.Child("vcount").Ints()
		if err != nil {
			return nil, fmt.Errorf("vcount: %w", err)
		}
		for i, c := range counts {
			if c != 3 {
				return nil, fmt.Errorf("%w: polygon %d has %d corners", ErrNonTriangulated, i, c)
			}
		}
	}

	indices, err := prim.Child("p").Ints()
	if err != nil {
		return nil, fmt.Errorf("connectivity: %w", err)
	}
	rows, err := collada.Reshape(indices, FaceStride)
	if err != nil {
		return nil, fmt.Errorf("connectivity: %w", err)
	}

	faces := make([]Face, len(rows))
	for i, row := range rows {
		for c := 0; c < 3; c++ {
			base := c * CornerStride
			faces[i][c] = Corner{
				Position: row[base+offsetPosition],
				Normal:   row[base+offsetNormal],
				UV:       row[base+offsetUV],
			}
		}
	}
	return faces, nil
}

func toVec3(rows [][]float64) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(rows))
	for i, r := range rows {
		out[i] = mgl64.Vec3{r[0], r[1], r[2]}
	}
	return out
}

func toVec2(rows [][]float64) []mgl64.Vec2 {
	out := make([]mgl64.Vec2, len(rows))
	for i, r := range rows {
		out[i] = mgl64.Vec2{r[0], r[1]}
	}
	return out
}
