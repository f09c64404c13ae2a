package ascii

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Faultbox/daexport/pkg/rig"
)

// writeRecord writes one OBJ line: the keyword, then the fields separated by
// single spaces.
func writeRecord(w *bufio.Writer, keyword string, fields []string) {
	w.WriteString(keyword)
	for _, f := range fields {
		w.WriteString(" ")
		w.WriteString(f)
	}
	w.WriteString("\n")
}

// WriteMesh writes m as dir/mesh.obj, creating dir if needed. Face corners
// are written position/uv/normal with 1-based indices. Vertex values are
// written as authored in the document.
func WriteMesh(dir string, m *rig.Mesh) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputPath, err)
	}

	return writeFile(filepath.Join(dir, MeshFile), func(w *bufio.Writer) {
		for i, p := range m.Positions {
			writeRecord(w, "v", tokens(m.PositionText.Row(i), p[:]...))
		}
		for i, n := range m.Normals {
			writeRecord(w, "vn", tokens(m.NormalText.Row(i), n[:]...))
		}
		for i, uv := range m.UVs {
			writeRecord(w, "vt", tokens(m.UVText.Row(i), uv[:]...))
		}
		for _, f := range m.Faces {
			w.WriteString("f")
			for _, c := range f {
				fmt.Fprintf(w, " %d/%d/%d", c.Position+1, c.UV+1, c.Normal+1)
			}
			w.WriteString("\n")
		}
	})
}
